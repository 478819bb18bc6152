package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/database"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
)

// CreateAssessment inserts one immutable assessment row. The id and
// creation timestamp are assigned by the store.
func CreateAssessment(ctx context.Context, userID uint, riskScore float64, riskLevel string, answersJSON string) (*models.Assessment, error) {
	assessment := &models.Assessment{
		UserID:    userID,
		RiskScore: riskScore,
		RiskLevel: riskLevel,
		Answers:   answersJSON,
	}
	if err := database.DB.WithContext(ctx).Create(assessment).Error; err != nil {
		return nil, err
	}
	return assessment, nil
}

// ListAssessmentsByUser returns one user's assessments, newest first.
func ListAssessmentsByUser(ctx context.Context, userID uint) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&assessments).Error
	return assessments, err
}

// GetAssessmentByID fetches a single assessment. The store does not
// check ownership; callers must compare UserID against the requester.
func GetAssessmentByID(ctx context.Context, id uint) (*models.Assessment, error) {
	var assessment models.Assessment
	err := database.DB.WithContext(ctx).First(&assessment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}
