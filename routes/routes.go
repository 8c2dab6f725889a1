package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/controllers"
)

// ConfigRoutes wires every handler onto the engine.
func ConfigRoutes(router *gin.Engine, h *controllers.Handler) {
	router.Use(gzip.Gzip(gzip.BestSpeed))

	api := router.Group("/api")
	{
		api.GET("/test", h.HealthCheck)

		api.POST("/patients/register", h.RegisterPatient)
		api.POST("/patients/login", h.PatientLogin)

		api.GET("/doctors", h.GetDoctors)
		api.GET("/doctors/:specialization", h.GetDoctorsBySpecialization)

		api.POST("/appointments", h.BookAppointment)
		api.GET("/appointments/patient/:patientId", h.GetPatientAppointments)

		api.POST("/medical-reports", h.CreateMedicalReport)
		api.GET("/medical-reports/patient/:patientId", h.GetPatientMedicalReports)

		api.POST("/payments", h.ProcessPayment)
		api.GET("/payments/:paymentId/receipt", h.DownloadReceipt)

		api.POST("/feedback", h.SubmitFeedback)

		api.GET("/statistics", h.GetStatistics)
	}

	// Static front-end
	router.Static("/static", "./static")
	router.StaticFile("/", "./static/index.html")
}
