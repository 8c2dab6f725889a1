package controllers

import (
	"fmt"
	"strconv"

	"github.com/go-gomail/gomail"

	"github.com/DM-Mulani-963/online-healthcare-system/configuration"
	"github.com/DM-Mulani-963/online-healthcare-system/models"
)

// Mailer sends notification email through the configured SMTP server.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when no SMTP host is configured; callers treat a
// nil mailer as "notifications disabled".
func NewMailer(cfg configuration.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPUser,
	}
}

// SendAppointmentConfirmation mails the patient a booking summary.
func (m *Mailer) SendAppointmentConfirmation(email string, appointment models.Appointment) error {
	body := fmt.Sprintf(
		"Your appointment has been booked.\n\nDate: %s\nTime: %s\nMode: %s\nStatus: %s\n\nPlease complete the payment to confirm your booking.",
		appointment.Date, appointment.Time, appointment.Mode, appointment.Status,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Appointment confirmation")
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
