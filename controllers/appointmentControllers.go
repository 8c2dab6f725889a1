package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

type BookAppointmentRequest struct {
	PatientID uint   `json:"patientId" binding:"required"`
	DoctorID  uint   `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Mode      string `json:"mode"`
}

// AppointmentDetail is an appointment row joined with the doctor it was
// booked with, as returned to the patient dashboard.
type AppointmentDetail struct {
	AppointmentID   uint   `json:"appointment_id"`
	PatientID       uint   `json:"patient_id"`
	DoctorID        uint   `json:"doctor_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Status          string `json:"status"`
	Mode            string `json:"mode"`
	PaymentStatus   string `json:"payment_status"`
	DoctorFirstName string `json:"doctor_first_name"`
	DoctorLastName  string `json:"doctor_last_name"`
	Specialization  string `json:"specialization"`
}

// BookAppointment inserts a new appointment. Status and payment status
// always start as "Pending" no matter what the client sends. When a mailer
// is configured a confirmation email goes out best-effort; a send failure
// never fails the booking.
func (h *Handler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment := models.Appointment{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		Time:          req.Time,
		Status:        "Pending",
		Mode:          req.Mode,
		PaymentStatus: "Pending",
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Booking failed",
			"error":   err.Error(),
		})
		return
	}

	if h.Mailer != nil {
		var patient models.Patient
		if err := h.DB.First(&patient, appointment.PatientID).Error; err == nil {
			if err := h.Mailer.SendAppointmentConfirmation(patient.Email, appointment); err != nil {
				log.Println("sending confirmation email:", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Appointment booked successfully",
		"appointmentId": appointment.AppointmentID,
	})
}

// GetPatientAppointments lists a patient's appointments joined with the
// doctor's name and specialization. A patient with no appointments gets an
// empty array.
func (h *Handler) GetPatientAppointments(c *gin.Context) {
	patientID := c.Param("patientId")

	appointments := []AppointmentDetail{}
	err := h.DB.Table("appointment").
		Select("appointment.*, doctor.first_name AS doctor_first_name, doctor.last_name AS doctor_last_name, doctor.specialization AS specialization").
		Joins("JOIN doctor ON appointment.doctor_id = doctor.doctor_id").
		Where("appointment.patient_id = ?", patientID).
		Scan(&appointments).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch appointments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, appointments)
}
