package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendReminderEmail simulates sending a check-in reminder.
func (s *EmailService) SendReminderEmail(user models.User) {
	s.log.Info("Sending reminder email",
		zap.String("to", user.Username),
	)
	// A real deployment would plug an SMTP client in here.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Time for your next self-assessment\nHi %s,\nIt has been a while since your last risk assessment. A few minutes now keeps your history up to date.\n\n", user.Username, user.Username)
}
