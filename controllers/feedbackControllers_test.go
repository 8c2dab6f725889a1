package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

func TestSubmitFeedback(t *testing.T) {
	h, router := newTestServer(t)
	doctor := seedDoctor(t, h, "Meera", "Nair", "Cardiology")
	patientID := registerPatient(t, router, "asha@example.com")

	w := performRequest(t, router, http.MethodPost, "/api/feedback", gin.H{
		"patientId": patientID,
		"doctorId":  doctor.DoctorID,
		"rating":    4,
		"comment":   "Very thorough",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message    string `json:"message"`
		FeedbackID uint   `json:"feedbackId"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Feedback submitted successfully" {
		t.Errorf("expected message 'Feedback submitted successfully', got %q", resp.Message)
	}
	if resp.FeedbackID == 0 {
		t.Fatal("expected a generated feedback id")
	}

	var feedback models.Feedback
	if err := h.DB.First(&feedback, resp.FeedbackID).Error; err != nil {
		t.Fatalf("loading feedback: %v", err)
	}
	if feedback.Date != time.Now().Format("2006-01-02") {
		t.Errorf("expected server-assigned current date, got %q", feedback.Date)
	}
}

func TestSubmitFeedbackRatingOutOfRange(t *testing.T) {
	h, router := newTestServer(t)
	doctor := seedDoctor(t, h, "Meera", "Nair", "Cardiology")
	patientID := registerPatient(t, router, "asha@example.com")

	for _, rating := range []int{0, 6, -1} {
		w := performRequest(t, router, http.MethodPost, "/api/feedback", gin.H{
			"patientId": patientID,
			"doctorId":  doctor.DoctorID,
			"rating":    rating,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating %d: expected 400, got %d: %s", rating, w.Code, w.Body.String())
		}
	}
}
