package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/project-interview/internal/models"
)

type ModelCallRepository interface {
	Create(call *models.ModelCall) error
	FindRecent(limit int) ([]models.ModelCall, error)
}

type modelCallRepository struct {
	db *gorm.DB
}

func NewModelCallRepository(db *gorm.DB) ModelCallRepository {
	return &modelCallRepository{db: db}
}

func (r *modelCallRepository) Create(call *models.ModelCall) error {
	if err := r.db.Create(call).Error; err != nil {
		return fmt.Errorf("failed to create model call: %w", err)
	}
	return nil
}

func (r *modelCallRepository) FindRecent(limit int) ([]models.ModelCall, error) {
	var calls []models.ModelCall
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&calls).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find model calls: %w", err)
	}

	return calls, nil
}
