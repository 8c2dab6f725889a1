package models

import "time"

// Doctor rows are read-only from this service's perspective. They are
// seeded directly into the database.
type Doctor struct {
	DoctorID         uint      `gorm:"primaryKey" json:"doctor_id"`
	FirstName        string    `gorm:"size:50;not null" json:"first_name"`
	LastName         string    `gorm:"size:50;not null" json:"last_name"`
	Specialization   string    `gorm:"size:100;not null" json:"specialization"`
	ContactNumber    string    `gorm:"size:15" json:"contact_number"`
	Email            string    `gorm:"size:100;uniqueIndex" json:"email"`
	ConsultationFees float64   `json:"consultation_fees"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctor"
}
