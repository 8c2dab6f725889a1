package models

import "time"

type Payment struct {
	PaymentID     uint      `gorm:"primaryKey" json:"payment_id"`
	AppointmentID uint      `gorm:"not null" json:"appointment_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	TransactionID string    `gorm:"size:100;uniqueIndex" json:"transaction_id"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	Date          string    `gorm:"size:10;not null" json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID;references:AppointmentID" json:"-"`
}

func (Payment) TableName() string {
	return "payment"
}
