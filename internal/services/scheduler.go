package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/config"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/repository"
)

// Scheduler periodically nudges users whose latest assessment has gone
// stale.
type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
}

func NewScheduler(log *zap.Logger, emailService *EmailService) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting reminder scheduler...")
	go func() {
		interval := time.Duration(config.Conf.Reminders.IntervalHours) * time.Hour
		if interval <= 0 {
			interval = 24 * time.Hour
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	staleAfter := time.Duration(config.Conf.Reminders.StaleAfterDays) * 24 * time.Hour
	cutoff := time.Now().UTC().Add(-staleAfter)
	s.log.Debug("Running reminder check", zap.Time("cutoff", cutoff))

	users, err := repository.GetUsersWithoutRecentAssessment(cutoff)
	if err != nil {
		s.log.Error("Failed to get users for reminder", zap.Error(err))
		return
	}

	for _, user := range users {
		go s.sendReminder(user)
	}
}

func (s *Scheduler) sendReminder(user models.User) {
	s.emailService.SendReminderEmail(user)
}
