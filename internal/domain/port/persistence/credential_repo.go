package persistence

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
)

// CredentialRepository defines lookups against the credential store
type CredentialRepository interface {
	// GetByUsername retrieves the stored credential for a username
	//
	// Possible errors:
	// - ErrCredentialNotFound: if no credential exists for the username
	// - ErrStorage: if the store is unreachable
	GetByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// Create persists a new credential
	//
	// Possible errors:
	// - ErrDuplicateCredential: if the username is already taken
	// - ErrStorage: if the store is unreachable or the write fails
	Create(ctx context.Context, credential *entity.Credential) error

	// ExistsByUsername reports whether a credential exists for the username
	//
	// Possible errors:
	// - ErrStorage: if the store is unreachable
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
