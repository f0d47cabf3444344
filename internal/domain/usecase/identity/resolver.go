package identity

import (
	"context"
	"errors"

	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"golang.org/x/crypto/bcrypt"
)

// Resolver maps request credentials to a stable owner identifier by
// checking the submitted password against the stored bcrypt hash
type Resolver struct {
	credentialRepo persistence.CredentialRepository
	logger         coreport.Logger
}

// NewResolver creates an identity resolver
func NewResolver(credentialRepo persistence.CredentialRepository, logger coreport.Logger) *Resolver {
	return &Resolver{
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Resolve returns the owner identity for a username/password pair. An
// unknown username and a wrong password both report ErrUnauthenticated.
func (r *Resolver) Resolve(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", errs.ErrUnauthenticated
	}

	credential, err := r.credentialRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrCredentialNotFound) {
			r.logger.Debug("Unknown username", map[string]any{
				"username": username,
			})
			return "", errs.ErrUnauthenticated
		}
		r.logger.Error("Failed to load credential", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		r.logger.Debug("Password mismatch", map[string]any{
			"username": username,
		})
		return "", errs.ErrUnauthenticated
	}

	return credential.Username, nil
}
