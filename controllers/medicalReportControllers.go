package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

type CreateMedicalReportRequest struct {
	PatientID    uint   `json:"patientId" binding:"required"`
	DoctorID     uint   `json:"doctorId" binding:"required"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
	Date         string `json:"date" binding:"required"`
}

// MedicalReportDetail is a report row joined with the issuing doctor's name.
type MedicalReportDetail struct {
	ReportID        uint   `json:"report_id"`
	PatientID       uint   `json:"patient_id"`
	DoctorID        uint   `json:"doctor_id"`
	Diagnosis       string `json:"diagnosis"`
	Prescription    string `json:"prescription"`
	Notes           string `json:"notes"`
	Date            string `json:"date"`
	DoctorFirstName string `json:"doctor_first_name"`
	DoctorLastName  string `json:"doctor_last_name"`
}

// CreateMedicalReport inserts a report. Reports are immutable once written.
func (h *Handler) CreateMedicalReport(c *gin.Context) {
	var req CreateMedicalReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := models.MedicalReport{
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Notes:        req.Notes,
		Date:         req.Date,
	}

	if err := h.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create medical report",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Medical report created successfully",
		"reportId": report.ReportID,
	})
}

// GetPatientMedicalReports lists a patient's reports joined with the
// doctor's name.
func (h *Handler) GetPatientMedicalReports(c *gin.Context) {
	patientID := c.Param("patientId")

	reports := []MedicalReportDetail{}
	err := h.DB.Table("medical_report").
		Select("medical_report.*, doctor.first_name AS doctor_first_name, doctor.last_name AS doctor_last_name").
		Joins("JOIN doctor ON medical_report.doctor_id = doctor.doctor_id").
		Where("medical_report.patient_id = ?", patientID).
		Scan(&reports).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch medical reports",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, reports)
}
