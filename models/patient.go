package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Patient struct {
	PatientID    uint      `gorm:"primaryKey" json:"patient_id"`
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Contact      string    `gorm:"size:15" json:"contact"`
	Address      string    `gorm:"size:255" json:"address"`
	DateOfBirth  string    `gorm:"size:10" json:"date_of_birth"`
	Gender       string    `gorm:"size:10" json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Patient) TableName() string {
	return "patient"
}

type PatientClaims struct {
	PatientID uint   `json:"patient_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
