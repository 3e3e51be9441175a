package repositories

import (
	"errors"
	"fmt"

	"granazap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLimitNotFound = errors.New("limit not found")

// LimitRepository handles database operations for category spending limits
type LimitRepository struct {
	db *gorm.DB
}

// NewLimitRepository creates a new limit repository
func NewLimitRepository(db *gorm.DB) LimitRepositoryInterface {
	return &LimitRepository{
		db: db,
	}
}

// GetByUserID retrieves all limits a user has configured, one row per category
func (r *LimitRepository) GetByUserID(userID uuid.UUID) ([]models.CategoryLimit, error) {
	var limits []models.CategoryLimit

	if err := r.db.Where("user_id = ?", userID).Order("category ASC").Find(&limits).Error; err != nil {
		return nil, fmt.Errorf("failed to get limits by user ID: %w", err)
	}

	return limits, nil
}

// ReplaceForUser atomically swaps the user's limit set for the given rows.
// Passing an empty slice clears every limit.
func (r *LimitRepository) ReplaceForUser(userID uuid.UUID, limits []models.CategoryLimit) error {
	if userID == uuid.Nil {
		return errors.New("user ID cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CategoryLimit{}).Error; err != nil {
			return fmt.Errorf("failed to clear existing limits: %w", err)
		}

		if len(limits) == 0 {
			return nil
		}

		for i := range limits {
			limits[i].UserID = userID
		}

		if err := tx.Create(&limits).Error; err != nil {
			return fmt.Errorf("failed to insert limits: %w", err)
		}

		return nil
	})
}

// DeleteForUser removes every limit the user has configured
func (r *LimitRepository) DeleteForUser(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CategoryLimit{}).Error; err != nil {
		return fmt.Errorf("failed to delete limits: %w", err)
	}

	return nil
}
