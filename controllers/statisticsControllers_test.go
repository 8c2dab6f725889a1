package controllers_test

import (
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	_, router := newTestServer(t)

	w := performRequest(t, router, http.MethodGet, "/api/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Database connection successful" {
		t.Errorf("expected message 'Database connection successful', got %q", resp.Message)
	}
}

func TestGetStatistics(t *testing.T) {
	h, router := newTestServer(t)
	cardiologist := seedDoctor(t, h, "Meera", "Nair", "Cardiology")
	seedDoctor(t, h, "Rahul", "Shah", "Dermatology")
	patientID := registerPatient(t, router, "asha@example.com")
	bookAppointment(t, router, patientID, cardiologist.DoctorID, "2024-05-01", "10:00")
	bookAppointment(t, router, patientID, cardiologist.DoctorID, "2024-05-02", "11:00")

	w := performRequest(t, router, http.MethodGet, "/api/statistics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		TotalStatistics struct {
			Patients     int64 `json:"patients"`
			Doctors      int64 `json:"doctors"`
			Appointments int64 `json:"appointments"`
		} `json:"total_statistics"`
		AppointmentStatus []struct {
			Status string `json:"status"`
			Count  int64  `json:"count"`
		} `json:"appointment_status"`
		DoctorSpecializations []struct {
			Specialization string `json:"specialization"`
			Count          int64  `json:"count"`
		} `json:"doctor_specializations"`
	}
	decodeBody(t, w, &resp)

	if resp.TotalStatistics.Patients != 1 {
		t.Errorf("expected 1 patient, got %d", resp.TotalStatistics.Patients)
	}
	if resp.TotalStatistics.Doctors != 2 {
		t.Errorf("expected 2 doctors, got %d", resp.TotalStatistics.Doctors)
	}
	if resp.TotalStatistics.Appointments != 2 {
		t.Errorf("expected 2 appointments, got %d", resp.TotalStatistics.Appointments)
	}

	if len(resp.AppointmentStatus) != 1 || resp.AppointmentStatus[0].Status != "Pending" || resp.AppointmentStatus[0].Count != 2 {
		t.Errorf("expected a single Pending status bucket with count 2, got %+v", resp.AppointmentStatus)
	}
	if len(resp.DoctorSpecializations) != 2 {
		t.Errorf("expected 2 specialization buckets, got %+v", resp.DoctorSpecializations)
	}
}
