package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

func TestRegisterThenLoginReturnsSameIdentity(t *testing.T) {
	_, router := newTestServer(t)

	patientID := registerPatient(t, router, "asha@example.com")

	w := performRequest(t, router, http.MethodPost, "/api/patients/login", gin.H{
		"email":    "asha@example.com",
		"password": "s3cret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string         `json:"message"`
		Patient models.Patient `json:"patient"`
		Token   string         `json:"token"`
	}
	decodeBody(t, w, &resp)

	if resp.Message != "Login successful" {
		t.Errorf("expected message 'Login successful', got %q", resp.Message)
	}
	if resp.Patient.PatientID != patientID {
		t.Errorf("expected patient id %d, got %d", patientID, resp.Patient.PatientID)
	}
	if resp.Token == "" {
		t.Error("expected a signed token in the login response")
	}
}

func TestLoginDoesNotExposePasswordHash(t *testing.T) {
	_, router := newTestServer(t)
	registerPatient(t, router, "asha@example.com")

	w := performRequest(t, router, http.MethodPost, "/api/patients/login", gin.H{
		"email":    "asha@example.com",
		"password": "s3cret-pass",
	})

	var resp struct {
		Patient map[string]any `json:"patient"`
	}
	decodeBody(t, w, &resp)
	if _, ok := resp.Patient["password"]; ok {
		t.Error("login response must not include the password")
	}
	if _, ok := resp.Patient["password_hash"]; ok {
		t.Error("login response must not include the password hash")
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	_, router := newTestServer(t)
	registerPatient(t, router, "asha@example.com")

	w := performRequest(t, router, http.MethodPost, "/api/patients/login", gin.H{
		"email":    "asha@example.com",
		"password": "not-the-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	_, router := newTestServer(t)

	w := performRequest(t, router, http.MethodPost, "/api/patients/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	h, router := newTestServer(t)
	patientID := registerPatient(t, router, "asha@example.com")

	var patient models.Patient
	if err := h.DB.First(&patient, patientID).Error; err != nil {
		t.Fatalf("loading patient: %v", err)
	}
	if patient.PasswordHash == "s3cret-pass" {
		t.Error("password stored in the clear")
	}
	if patient.PasswordHash == "" {
		t.Error("expected a stored password hash")
	}
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	_, router := newTestServer(t)
	registerPatient(t, router, "asha@example.com")

	w := performRequest(t, router, http.MethodPost, "/api/patients/register", gin.H{
		"firstName": "Asha",
		"lastName":  "Verma",
		"email":     "asha@example.com",
		"password":  "another-pass",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for duplicate email, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterMissingFieldsRejected(t *testing.T) {
	_, router := newTestServer(t)

	w := performRequest(t, router, http.MethodPost, "/api/patients/register", gin.H{
		"firstName": "Asha",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
