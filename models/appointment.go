package models

import "time"

type Appointment struct {
	AppointmentID uint      `gorm:"primaryKey" json:"appointment_id"`
	PatientID     uint      `gorm:"not null" json:"patient_id"`
	DoctorID      uint      `gorm:"not null" json:"doctor_id"`
	Date          string    `gorm:"size:10;not null" json:"date"`
	Time          string    `gorm:"size:5;not null" json:"time"`
	Status        string    `gorm:"size:20;default:Pending" json:"status"`
	Mode          string    `gorm:"size:20" json:"mode"`
	PaymentStatus string    `gorm:"size:20;default:Pending" json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}
