package authentication

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

// GeneratePatientToken signs a 24h token for a logged-in patient.
func GeneratePatientToken(patientID uint, email, secret string) (string, error) {
	claims := &models.PatientClaims{
		PatientID: patientID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
