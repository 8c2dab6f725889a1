package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

type ProcessPaymentRequest struct {
	AppointmentID uint    `json:"appointmentId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

// ProcessPayment records a completed payment and marks the appointment as
// paid. Both writes run in one transaction so a failure of either leaves
// the database untouched.
func (h *Handler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := models.Payment{
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: uuid.New().String(),
		Status:        "Completed",
		Date:          time.Now().Format("2006-01-02"),
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).
			Where("appointment_id = ?", req.AppointmentID).
			Update("payment_status", "Paid").Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Payment processing failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Payment processed successfully",
		"paymentId": payment.PaymentID,
	})
}

// DownloadReceipt renders a PDF receipt for a completed payment.
func (h *Handler) DownloadReceipt(c *gin.Context) {
	paymentID := c.Param("paymentId")

	var payment models.Payment
	if err := h.DB.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch payment",
			"error":   err.Error(),
		})
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "appointment_id = ?", payment.AppointmentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch appointment",
			"error":   err.Error(),
		})
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "doctor_id = ?", appointment.DoctorID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch doctor details",
			"error":   err.Error(),
		})
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "patient_id = ?", appointment.PatientID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch patient details",
			"error":   err.Error(),
		})
		return
	}

	receipt, err := generateReceiptPDF(payment, appointment, doctor, patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate receipt",
			"error":   err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", payment.PaymentID))
	c.Data(http.StatusOK, "application/pdf", receipt)
}

func generateReceiptPDF(payment models.Payment, appointment models.Appointment, doctor models.Doctor, patient models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 80, 120)
	pdf.CellFormat(0, 10, "Online Healthcare System", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Payment Receipt", "1", 1, "C", false, 0, "")

	addReceiptLine(pdf, "Receipt No", fmt.Sprintf("%d", payment.PaymentID), true)
	addReceiptLine(pdf, "Transaction ID", payment.TransactionID, true)
	addReceiptLine(pdf, "Patient", patient.FirstName+" "+patient.LastName, true)
	addReceiptLine(pdf, "Doctor", doctor.FirstName+" "+doctor.LastName, true)
	addReceiptLine(pdf, "Specialization", doctor.Specialization, true)

	pdf.CellFormat(0, 10, "Payment Details", "1", 1, "C", false, 0, "")
	addReceiptLine(pdf, "Appointment Date", appointment.Date, false)
	addReceiptLine(pdf, "Time", appointment.Time, false)
	addReceiptLine(pdf, "Payment Method", payment.PaymentMethod, false)
	addReceiptLine(pdf, "Payment Date", payment.Date, false)
	addReceiptLine(pdf, "Status", payment.Status, false)
	pdf.SetFont("Arial", "B", 13)
	addReceiptLine(pdf, "Amount Paid", fmt.Sprintf("%.2f", payment.Amount), true)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addReceiptLine(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
