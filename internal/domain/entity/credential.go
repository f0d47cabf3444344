package entity

import (
	"time"

	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
)

// Roles carried on a credential. Authorization is owner-scoped, not
// role-dispatched, so these are informational for now.
const (
	RoleCardOwner    = "CARD_OWNER"
	RoleNonCardOwner = "NON_CARD_OWNER"
)

// Credential represents a stored login for an owner identity
type Credential struct {
	Username     string    // Owner identity; cards reference this value
	PasswordHash string    // bcrypt hash of the password
	Role         string    // One of the Role constants
	CreatedAt    time.Time // When the credential was created
}

// NewCredential creates a credential carrying an already-hashed password
func NewCredential(username, passwordHash, role string, timeProvider coreport.TimeProvider) (*Credential, error) {
	if username == "" {
		return nil, errs.ErrInvalidOwner
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &Credential{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    timeProvider.Now(),
	}, nil
}
