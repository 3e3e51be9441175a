package repositories

import (
	"granazap/internal/models"

	"github.com/google/uuid"
)

// ProfileRepositoryInterface defines the contract for profile repository operations
type ProfileRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Profile, error)
	Upsert(profile *models.Profile) error
	UpdatePhone(userID uuid.UUID, phone string) error
	UpdateFullName(userID uuid.UUID, fullName string) error
}

// LimitRepositoryInterface defines the contract for category limit repository operations
type LimitRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) ([]models.CategoryLimit, error)
	ReplaceForUser(userID uuid.UUID, limits []models.CategoryLimit) error
	DeleteForUser(userID uuid.UUID) error
}

// SubscriptionRepositoryInterface defines the contract for subscription repository operations
type SubscriptionRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Subscription, error)
	UpsertStatus(userID uuid.UUID, status string) error
}
