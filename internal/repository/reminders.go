package repository

import (
	"time"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/database"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
)

// GetUsersWithoutRecentAssessment finds users who have not completed an
// assessment since the given cutoff, including users who never
// completed one at all.
func GetUsersWithoutRecentAssessment(cutoff time.Time) ([]models.User, error) {
	var users []models.User
	recent := database.DB.Model(&models.Assessment{}).
		Select("user_id").
		Where("created_at >= ?", cutoff)
	err := database.DB.Where("id NOT IN (?)", recent).Find(&users).Error
	return users, err
}
