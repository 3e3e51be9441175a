package repositories

import (
	"errors"
	"fmt"
	"strings"

	"granazap/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrPhoneInUse      = errors.New("phone already in use")
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &ProfileRepository{
		db: db,
	}
}

// GetByID retrieves a profile by the identity provider user id
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{ID: id}
	if err := r.db.First(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}

	return profile, nil
}

// Upsert creates the profile row or updates it when it already exists
func (r *ProfileRepository) Upsert(profile *models.Profile) error {
	if profile == nil {
		return errors.New("profile cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "phone", "phone_2", "plan", "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrPhoneInUse
		}
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// UpdatePhone sets the profile's primary phone. A unique violation means the
// number belongs to another account.
func (r *ProfileRepository) UpdatePhone(userID uuid.UUID, phone string) error {
	if userID == uuid.Nil {
		return errors.New("user ID cannot be nil")
	}

	result := r.db.Model(&models.Profile{ID: userID}).Update("phone", phone)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrPhoneInUse
		}
		return fmt.Errorf("failed to update phone: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// UpdateFullName sets the profile's display name
func (r *ProfileRepository) UpdateFullName(userID uuid.UUID, fullName string) error {
	result := r.db.Model(&models.Profile{ID: userID}).Update("full_name", fullName)
	if result.Error != nil {
		return fmt.Errorf("failed to update full name: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	// String fallback covers the sqlite test driver
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
