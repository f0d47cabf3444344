package card

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/logger"
	mockcore "github.com/cardworks/cashcard-service/mocks/port/core"
	mockpersistence "github.com/cardworks/cashcard-service/mocks/port/persistence"
)

func newTestService(cardRepo *mockpersistence.MockCardRepository, timeProvider *mockcore.MockTimeProvider) *Service {
	return NewService(cardRepo, timeProvider, logger.NewNoopLogger(), DefaultPagePolicy)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create card and surface the generated ID", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Card).ID = 42
			}).
			Return(nil)
		service := newTestService(mockRepo, mockTimeProvider)

		// Act
		card, err := service.Create(ctx, "owner1")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(42), card.ID)
		assert.Equal(t, 0.0, card.Amount)
		assert.Equal(t, "owner1", card.Owner)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject empty owner without touching the store", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		service := newTestService(mockRepo, mockTimeProvider)

		card, err := service.Create(ctx, "")

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should draw the next ID when the generated one is taken", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).
			Return(errs.ErrDuplicateCard).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Card).ID = 101
			}).
			Return(nil).Once()
		service := newTestService(mockRepo, mockTimeProvider)

		// Act
		card, err := service.Create(ctx, "owner1")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(101), card.ID)
		mockRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("should report a storage error when every candidate ID is taken", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).Return(errs.ErrDuplicateCard)
		service := newTestService(mockRepo, mockTimeProvider)

		card, err := service.Create(ctx, "owner1")

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrStorage)
		assert.NotErrorIs(t, err, errs.ErrDuplicateCard)
		mockRepo.AssertNumberOfCalls(t, "Create", maxCreateAttempts)
	})

	t.Run("should pass through storage errors", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).Return(errs.ErrStorage)
		service := newTestService(mockRepo, mockTimeProvider)

		card, err := service.Create(ctx, "owner1")

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
