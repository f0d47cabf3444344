package card

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	mockcore "github.com/cardworks/cashcard-service/mocks/port/core"
	mockpersistence "github.com/cardworks/cashcard-service/mocks/port/persistence"
)

func TestService_ApplyBalanceDelta(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply a positive delta and return the updated card", func(t *testing.T) {
		// Arrange
		mockRepo := new(mockpersistence.MockCardRepository)
		updated := &entity.Card{ID: 99, Amount: 153.44, Owner: "owner1"}
		mockRepo.On("AddToBalance", ctx, uint64(99), "owner1", 30.0).Return(updated, nil)
		service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

		// Act
		card, err := service.ApplyBalanceDelta(ctx, 99, "owner1", 30.0)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, updated, card)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should apply a negative delta past zero", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		updated := &entity.Card{ID: 99, Amount: -26.56, Owner: "owner1"}
		mockRepo.On("AddToBalance", ctx, uint64(99), "owner1", -150.0).Return(updated, nil)
		service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

		card, err := service.ApplyBalanceDelta(ctx, 99, "owner1", -150.0)

		assert.NoError(t, err)
		assert.Equal(t, -26.56, card.Amount)
	})

	t.Run("should reject non-finite deltas without touching the store", func(t *testing.T) {
		for _, delta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			mockRepo := new(mockpersistence.MockCardRepository)
			service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

			card, err := service.ApplyBalanceDelta(ctx, 99, "owner1", delta)

			assert.Nil(t, card)
			assert.ErrorIs(t, err, errs.ErrNonFiniteAmount)
			mockRepo.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("should report ID zero as not found before validating the delta", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

		card, err := service.ApplyBalanceDelta(ctx, 0, "owner1", 30.0)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrCardNotFound)
		mockRepo.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report not found for someone else's card", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockRepo.On("AddToBalance", ctx, uint64(99), "owner2", 30.0).Return(nil, errs.ErrCardNotFound)
		service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

		card, err := service.ApplyBalanceDelta(ctx, 99, "owner2", 30.0)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrCardNotFound)
	})

	t.Run("should pass through lock contention errors", func(t *testing.T) {
		mockRepo := new(mockpersistence.MockCardRepository)
		mockRepo.On("AddToBalance", ctx, uint64(99), "owner1", 30.0).Return(nil, errs.ErrCardLocked)
		service := newTestService(mockRepo, new(mockcore.MockTimeProvider))

		card, err := service.ApplyBalanceDelta(ctx, 99, "owner1", 30.0)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrCardLocked)
	})
}
