package repositories

import (
	"errors"
	"fmt"

	"granazap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository handles database operations for cached subscription state
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &SubscriptionRepository{
		db: db,
	}
}

// GetByUserID retrieves the cached subscription snapshot for a user
func (r *SubscriptionRepository) GetByUserID(userID uuid.UUID) (*models.Subscription, error) {
	subscription := &models.Subscription{UserID: userID}
	if err := r.db.First(subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription by user ID: %w", err)
	}

	return subscription, nil
}

// UpsertStatus records the latest raw status reported by the payment backend
func (r *SubscriptionRepository) UpsertStatus(userID uuid.UUID, status string) error {
	if userID == uuid.Nil {
		return errors.New("user ID cannot be nil")
	}

	subscription := &models.Subscription{
		UserID: userID,
		Status: status,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(subscription).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription status: %w", err)
	}

	return nil
}
