package models

import "time"

type Feedback struct {
	FeedbackID uint      `gorm:"primaryKey" json:"feedback_id"`
	PatientID  uint      `gorm:"not null" json:"patient_id"`
	DoctorID   uint      `gorm:"not null" json:"doctor_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Date       string    `gorm:"size:10;not null" json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"-"`
}

func (Feedback) TableName() string {
	return "feedback"
}
