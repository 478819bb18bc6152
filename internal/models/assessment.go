package models

import "time"

// Assessment is one completed questionnaire. Rows are written once at
// wizard completion and never updated, so historical scores stay stable
// even if the scoring weights change later.
type Assessment struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	User      User `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
	RiskScore float64 `gorm:"not null"`
	RiskLevel string  `gorm:"not null"`
	// Answers holds the thirteen submitted fields as a JSON document.
	Answers string `gorm:"type:text;not null"`
}
