package card

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	mockcore "github.com/cardworks/cashcard-service/mocks/port/core"
	mockpersistence "github.com/cardworks/cashcard-service/mocks/port/persistence"
)

func TestService_Insert(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should insert a card under its supplied ID", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Card")).Return(nil)
		service := newTestService(mockRepo, mockTimeProvider)
		card := &entity.Card{ID: 44, Amount: 1.0, Owner: "sarah1"}

		// Act
		inserted, err := service.Insert(ctx, card)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(44), inserted.ID)
		assert.Equal(t, fixedTime, inserted.CreatedAt)
		assert.Equal(t, fixedTime, inserted.UpdatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should report a conflict when the ID is taken", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Card")).Return(errs.ErrDuplicateCard)
		service := newTestService(mockRepo, mockTimeProvider)

		inserted, err := service.Insert(ctx, &entity.Card{ID: 44, Amount: 1.0, Owner: "sarah1"})

		assert.Nil(t, inserted)
		assert.ErrorIs(t, err, errs.ErrDuplicateCard)
	})

	t.Run("should reject a nil card", func(t *testing.T) {
		service := newTestService(new(mockpersistence.MockCardRepository), new(mockcore.MockTimeProvider))

		inserted, err := service.Insert(ctx, nil)

		assert.Nil(t, inserted)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should reject a card without an ID", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

		inserted, err := service.Insert(ctx, &entity.Card{Amount: 1.0, Owner: "sarah1"})

		assert.Nil(t, inserted)
		assert.ErrorIs(t, err, errs.ErrInvalidCardID)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("should reject a card without an owner", func(t *testing.T) {
		service := newTestService(new(mockpersistence.MockCardRepository), new(mockcore.MockTimeProvider))

		inserted, err := service.Insert(ctx, &entity.Card{ID: 44, Amount: 1.0})

		assert.Nil(t, inserted)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})

	t.Run("should keep an existing CreatedAt timestamp", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Card")).Return(nil)
		service := newTestService(mockRepo, mockTimeProvider)
		created := fixedTime.Add(-24 * time.Hour)

		inserted, err := service.Insert(ctx, &entity.Card{ID: 44, Amount: 1.0, Owner: "sarah1", CreatedAt: created})

		assert.NoError(t, err)
		assert.Equal(t, created, inserted.CreatedAt)
		assert.Equal(t, fixedTime, inserted.UpdatedAt)
	})
}
