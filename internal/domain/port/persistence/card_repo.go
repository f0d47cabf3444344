package persistence

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
)

// SortDirection is the order applied to a page query
type SortDirection string

const (
	// SortAsc sorts the page in ascending order
	SortAsc SortDirection = "asc"
	// SortDesc sorts the page in descending order
	SortDesc SortDirection = "desc"
)

// CardRepository defines the persistence operations the card service needs.
// Sort keys arriving here are already validated column names; the repository
// never sees caller-supplied sort input.
type CardRepository interface {
	// Create persists a new card and writes the generated ID back into it.
	// ID generation is the store's sequence, so concurrent creates never
	// hand out the same ID.
	//
	// Possible errors:
	// - ErrStorage: if the store is unreachable or the write fails
	Create(ctx context.Context, card *entity.Card) error

	// Insert persists a caller-supplied card under its own ID.
	//
	// Possible errors:
	// - ErrDuplicateCard: if a card with that ID already exists
	// - ErrStorage: if the store is unreachable or the write fails
	Insert(ctx context.Context, card *entity.Card) error

	// FindByIDAndOwner retrieves a card only when both the ID exists and the
	// owner matches. A missing card and an ownership mismatch return the
	// same ErrCardNotFound so callers cannot probe other owners' cards.
	//
	// Possible errors:
	// - ErrCardNotFound: missing ID or owner mismatch, indistinguishable
	// - ErrStorage: if the store is unreachable
	FindByIDAndOwner(ctx context.Context, id uint64, owner string) (*entity.Card, error)

	// FindPage returns the owner's cards ordered by sortColumn/direction,
	// sliced to [offset, offset+limit). Past the last row it returns an
	// empty slice, not an error.
	//
	// Possible errors:
	// - ErrStorage: if the store is unreachable
	FindPage(ctx context.Context, owner, sortColumn string, direction SortDirection, offset, limit int) ([]*entity.Card, error)

	// ExistsByID reports whether any card has the given ID, regardless of owner
	//
	// Possible errors:
	// - ErrStorage: if the store is unreachable
	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// AddToBalance atomically applies a signed delta to the card's amount
	// under a row lock and returns the updated card. Two concurrent deltas
	// against the same card are both reflected in the final amount.
	//
	// Possible errors:
	// - ErrCardNotFound: missing ID or owner mismatch, indistinguishable
	// - ErrCardLocked: if the row lock cannot be obtained in time
	// - ErrStorage: if the store is unreachable or the write fails
	AddToBalance(ctx context.Context, id uint64, owner string, delta float64) (*entity.Card, error)
}
