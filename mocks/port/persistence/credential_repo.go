package persistence

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository is a mock implementation of the CredentialRepository interface
type MockCredentialRepository struct {
	mock.Mock
}

// GetByUsername retrieves the stored credential for a username
func (m *MockCredentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Credential), args.Error(1)
}

// Create persists a new credential
func (m *MockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

// ExistsByUsername reports whether a credential exists for the username
func (m *MockCredentialRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
