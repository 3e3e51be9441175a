package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"granazap/internal/models"
	"granazap/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhone   = errors.New("phone must resolve to 12 digits with country code 55")
	ErrProfileMissing = errors.New("profile not found")
	ErrPhoneConflict  = errors.New("phone already linked to another account")
)

var nonDigits = regexp.MustCompile(`\D`)

// ProfileService manages the local profile row keyed by the identity
// provider's user id
type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves the stored profile
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SavePhone normalizes and stores the user's WhatsApp number, returning the
// normalized value
func (s *ProfileService) SavePhone(userID uuid.UUID, rawPhone string) (string, error) {
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return "", err
	}

	if err := s.profileRepo.UpdatePhone(userID, phone); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPhoneInUse):
			return "", ErrPhoneConflict
		case errors.Is(err, repositories.ErrProfileNotFound):
			// First save for this account: fall through to an insert
			profile := &models.Profile{ID: userID, Phone: phone}
			if upsertErr := s.profileRepo.Upsert(profile); upsertErr != nil {
				if errors.Is(upsertErr, repositories.ErrPhoneInUse) {
					return "", ErrPhoneConflict
				}
				return "", fmt.Errorf("save phone: %w", upsertErr)
			}
			return phone, nil
		default:
			return "", fmt.Errorf("save phone: %w", err)
		}
	}
	return phone, nil
}

// UpsertProfile stores name and phone in one write
func (s *ProfileService) UpsertProfile(userID uuid.UUID, fullName, rawPhone string) (*models.Profile, error) {
	profile := &models.Profile{
		ID:       userID,
		FullName: strings.TrimSpace(fullName),
	}

	if rawPhone != "" {
		phone, err := NormalizePhone(rawPhone)
		if err != nil {
			return nil, err
		}
		profile.Phone = phone
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		if errors.Is(err, repositories.ErrPhoneInUse) {
			return nil, ErrPhoneConflict
		}
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}

// NormalizePhone canonicalizes a Brazilian phone: strip everything but
// digits, ensure the 55 country code, and drop the extra mobile 9 that turns
// a 13-digit number into the stored 12-digit form. Anything that does not
// land on exactly 12 digits is rejected.
func NormalizePhone(rawPhone string) (string, error) {
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(rawPhone), "")
	if digits == "" {
		return "", ErrInvalidPhone
	}

	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}

	if len(digits) == 13 && digits[4] == '9' {
		digits = digits[:4] + digits[5:]
	}

	if len(digits) != 12 {
		return "", ErrInvalidPhone
	}
	return digits, nil
}
