package usecase

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
)

// ListQuery carries pagination and sorting parameters for a card listing.
// Zero values mean "use the service defaults": page 0, the configured
// default size, and ascending amount order.
type ListQuery struct {
	Page      int
	Size      int
	SortKey   string
	Direction persistence.SortDirection
}

// CardUseCase defines the owner-scoped card operations
type CardUseCase interface {
	// Create persists a fresh card owned by the caller with a zero balance
	Create(ctx context.Context, owner string) (*entity.Card, error)

	// FindByID returns the card only when it exists and belongs to the
	// caller; a missing card and someone else's card are indistinguishable
	FindByID(ctx context.Context, id uint64, owner string) (*entity.Card, error)

	// List returns a bounded, ordered page of the caller's cards
	List(ctx context.Context, owner string, query ListQuery) ([]*entity.Card, error)

	// ApplyBalanceDelta atomically adds a signed finite delta to the card's
	// balance, under the same ownership rule as FindByID
	ApplyBalanceDelta(ctx context.Context, id uint64, owner string, delta float64) (*entity.Card, error)

	// Insert persists a caller-supplied card verbatim, failing on a
	// duplicate ID. This administrative path trusts the card's owner field.
	Insert(ctx context.Context, card *entity.Card) (*entity.Card, error)
}
