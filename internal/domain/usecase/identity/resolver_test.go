package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/logger"
	mockpersistence "github.com/cardworks/cashcard-service/mocks/port/persistence"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve a valid username and password to the owner", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockpersistence.MockCredentialRepository)
		credential := &entity.Credential{
			Username:     "owner1",
			PasswordHash: hashPassword(t, "12345"),
			Role:         entity.RoleCardOwner,
		}
		mockRepo.On("GetByUsername", ctx, "owner1").Return(credential, nil)
		resolver := NewResolver(mockRepo, logger.NewNoopLogger())

		// Act
		owner, err := resolver.Resolve(ctx, "owner1", "12345")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "owner1", owner)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCredentialRepository)
		credential := &entity.Credential{
			Username:     "owner1",
			PasswordHash: hashPassword(t, "12345"),
			Role:         entity.RoleCardOwner,
		}
		mockRepo.On("GetByUsername", ctx, "owner1").Return(credential, nil)
		resolver := NewResolver(mockRepo, logger.NewNoopLogger())

		owner, err := resolver.Resolve(ctx, "owner1", "wrong")

		assert.Empty(t, owner)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject an unknown username the same way as a wrong password", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCredentialRepository)
		mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, errs.ErrCredentialNotFound)
		resolver := NewResolver(mockRepo, logger.NewNoopLogger())

		owner, err := resolver.Resolve(ctx, "nobody", "12345")

		assert.Empty(t, owner)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject empty credentials without a lookup", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCredentialRepository)
		resolver := NewResolver(mockRepo, logger.NewNoopLogger())

		_, err := resolver.Resolve(ctx, "", "12345")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		_, err = resolver.Resolve(ctx, "owner1", "")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		mockRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("should pass through storage errors instead of masking them as auth failures", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCredentialRepository)
		mockRepo.On("GetByUsername", ctx, "owner1").Return(nil, errs.ErrStorage)
		resolver := NewResolver(mockRepo, logger.NewNoopLogger())

		owner, err := resolver.Resolve(ctx, "owner1", "12345")

		assert.Empty(t, owner)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
