package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

type SubmitFeedbackRequest struct {
	PatientID uint   `json:"patientId" binding:"required"`
	DoctorID  uint   `json:"doctorId" binding:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// SubmitFeedback stores a rating and comment for a doctor with the
// server's current date.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	feedback := models.Feedback{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now().Format("2006-01-02"),
	}

	if err := h.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to submit feedback",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Feedback submitted successfully",
		"feedbackId": feedback.FeedbackID,
	})
}
