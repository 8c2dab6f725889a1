package models

import "time"

type MedicalReport struct {
	ReportID     uint      `gorm:"primaryKey" json:"report_id"`
	PatientID    uint      `gorm:"not null" json:"patient_id"`
	DoctorID     uint      `gorm:"not null" json:"doctor_id"`
	Diagnosis    string    `gorm:"size:255;not null" json:"diagnosis"`
	Prescription string    `gorm:"type:text" json:"prescription"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Date         string    `gorm:"size:10;not null" json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"-"`
}

func (MedicalReport) TableName() string {
	return "medical_report"
}
