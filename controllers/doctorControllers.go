package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

const doctorCacheTTL = 5 * time.Minute

// GetDoctors lists the whole doctor directory. The directory changes
// rarely, so results are served from redis when a cache is configured.
func (h *Handler) GetDoctors(c *gin.Context) {
	h.listDoctors(c, "doctors:all", func() ([]models.Doctor, error) {
		doctors := []models.Doctor{}
		err := h.DB.Find(&doctors).Error
		return doctors, err
	})
}

// GetDoctorsBySpecialization filters the directory by the path parameter.
// An unknown specialization yields an empty array, not an error.
func (h *Handler) GetDoctorsBySpecialization(c *gin.Context) {
	specialization := c.Param("specialization")
	h.listDoctors(c, "doctors:"+specialization, func() ([]models.Doctor, error) {
		doctors := []models.Doctor{}
		err := h.DB.Where("specialization = ?", specialization).Find(&doctors).Error
		return doctors, err
	})
}

func (h *Handler) listDoctors(c *gin.Context, cacheKey string, query func() ([]models.Doctor, error)) {
	if h.Cache != nil {
		if cached, err := h.Cache.Get(cacheKey); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	doctors, err := query()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch doctors",
			"error":   err.Error(),
		})
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(doctors); err == nil {
			if err := h.Cache.Set(cacheKey, data, doctorCacheTTL); err != nil {
				log.Println("caching doctors:", err)
			}
		}
	}

	c.JSON(http.StatusOK, doctors)
}
