package persistence

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	persistenceport "github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockCardRepository is a mock implementation of the CardRepository interface
type MockCardRepository struct {
	mock.Mock
}

// Create persists a new card
func (m *MockCardRepository) Create(ctx context.Context, card *entity.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// Insert persists a caller-supplied card under its own ID
func (m *MockCardRepository) Insert(ctx context.Context, card *entity.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// FindByIDAndOwner retrieves a card only when ID and owner match
func (m *MockCardRepository) FindByIDAndOwner(ctx context.Context, id uint64, owner string) (*entity.Card, error) {
	args := m.Called(ctx, id, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

// FindPage returns an ordered slice of the owner's cards
func (m *MockCardRepository) FindPage(ctx context.Context, owner, sortColumn string, direction persistenceport.SortDirection, offset, limit int) ([]*entity.Card, error) {
	args := m.Called(ctx, owner, sortColumn, direction, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Card), args.Error(1)
}

// ExistsByID reports whether any card has the given ID
func (m *MockCardRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// AddToBalance atomically applies a delta to the card's amount
func (m *MockCardRepository) AddToBalance(ctx context.Context, id uint64, owner string, delta float64) (*entity.Card, error) {
	args := m.Called(ctx, id, owner, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}
