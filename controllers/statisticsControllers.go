package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type specializationCount struct {
	Specialization string `json:"specialization"`
	Count          int64  `json:"count"`
}

// GetStatistics returns overall counts plus appointment status and doctor
// specialization breakdowns for the admin dashboard.
func (h *Handler) GetStatistics(c *gin.Context) {
	var totalPatients int64
	if err := h.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	var totalDoctors int64
	if err := h.DB.Model(&models.Doctor{}).Count(&totalDoctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	var totalAppointments int64
	if err := h.DB.Model(&models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	statusCounts := []statusCount{}
	err := h.DB.Table("appointment").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	specializationCounts := []specializationCount{}
	err = h.DB.Table("doctor").
		Select("specialization, COUNT(*) AS count").
		Group("specialization").
		Scan(&specializationCounts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_statistics": gin.H{
			"patients":     totalPatients,
			"doctors":      totalDoctors,
			"appointments": totalAppointments,
		},
		"appointment_status":     statusCounts,
		"doctor_specializations": specializationCounts,
	})
}
