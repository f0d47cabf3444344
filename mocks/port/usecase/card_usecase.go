package usecase

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	usecaseport "github.com/cardworks/cashcard-service/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockCardUseCase is a mock implementation of the CardUseCase interface
type MockCardUseCase struct {
	mock.Mock
}

// Create persists a fresh card owned by the caller
func (m *MockCardUseCase) Create(ctx context.Context, owner string) (*entity.Card, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

// FindByID returns the card when it exists and belongs to the caller
func (m *MockCardUseCase) FindByID(ctx context.Context, id uint64, owner string) (*entity.Card, error) {
	args := m.Called(ctx, id, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

// List returns a bounded, ordered page of the caller's cards
func (m *MockCardUseCase) List(ctx context.Context, owner string, query usecaseport.ListQuery) ([]*entity.Card, error) {
	args := m.Called(ctx, owner, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Card), args.Error(1)
}

// ApplyBalanceDelta adds a signed delta to the card's balance
func (m *MockCardUseCase) ApplyBalanceDelta(ctx context.Context, id uint64, owner string, delta float64) (*entity.Card, error) {
	args := m.Called(ctx, id, owner, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

// Insert persists a caller-supplied card verbatim
func (m *MockCardUseCase) Insert(ctx context.Context, card *entity.Card) (*entity.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}
