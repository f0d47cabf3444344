package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIdentityResolver is a mock implementation of the IdentityResolver interface
type MockIdentityResolver struct {
	mock.Mock
}

// Resolve returns the owner identity for a username/password pair
func (m *MockIdentityResolver) Resolve(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
