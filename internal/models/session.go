package models

import "github.com/google/uuid"

// SessionUser is the identity provider's view of the authenticated user
type SessionUser struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// FullName returns the display name from the user metadata, empty when unset
func (u *SessionUser) FullName() string {
	if u == nil || u.UserMetadata == nil {
		return ""
	}
	name, _ := u.UserMetadata["full_name"].(string)
	return name
}

// MetadataPhone returns the phone stored in user metadata, falling back to
// the top-level phone field
func (u *SessionUser) MetadataPhone() string {
	if u == nil {
		return ""
	}
	if u.UserMetadata != nil {
		if phone, ok := u.UserMetadata["phone"].(string); ok && phone != "" {
			return phone
		}
	}
	return u.Phone
}

// Session is an authenticated session issued by the identity provider
type Session struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         *SessionUser `json:"user,omitempty"`
}
