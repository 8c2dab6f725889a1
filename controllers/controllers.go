package controllers

import (
	"github.com/go-playground/validator"
	"gorm.io/gorm"

	"github.com/DM-Mulani-963/online-healthcare-system/configuration"
)

var validate = validator.New()

// Handler carries the collaborators every route needs. It is built once in
// main and injected into the router; Cache and Mailer may be nil.
type Handler struct {
	DB        *gorm.DB
	Cache     *configuration.Cache
	Mailer    *Mailer
	JWTSecret string
}

func New(db *gorm.DB, cache *configuration.Cache, mailer *Mailer, jwtSecret string) *Handler {
	return &Handler{
		DB:        db,
		Cache:     cache,
		Mailer:    mailer,
		JWTSecret: jwtSecret,
	}
}
