package entity

import (
	"math"
	"time"

	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
)

// Card represents a balance-bearing record scoped to a single owner
type Card struct {
	ID        uint64    // Unique identifier, assigned by the store on creation
	Amount    float64   // Current balance; starts at 0 and changes only via deltas
	Owner     string    // Identity of the principal who created the card
	CreatedAt time.Time // When the card was created
	UpdatedAt time.Time // When the card was last updated
}

// NewCard creates a fresh card for the given owner with a zero balance.
// The ID stays unset until the repository persists the card.
func NewCard(owner string, timeProvider coreport.TimeProvider) (*Card, error) {
	if owner == "" {
		return nil, errs.ErrInvalidOwner
	}

	now := timeProvider.Now()
	return &Card{
		Amount:    0,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateDelta rejects NaN and infinite balance deltas
func ValidateDelta(delta float64) error {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return errs.ErrNonFiniteAmount
	}
	return nil
}

// ApplyDelta adds a signed delta to the card's balance
func (c *Card) ApplyDelta(delta float64, timeProvider coreport.TimeProvider) error {
	if err := ValidateDelta(delta); err != nil {
		return err
	}

	c.Amount += delta
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// Validate checks the persisted-card invariants: a non-zero ID, an owner
// and a finite amount
func (c *Card) Validate() error {
	if c.ID == 0 {
		return errs.ErrInvalidCardID
	}
	if c.Owner == "" {
		return errs.ErrInvalidOwner
	}
	return ValidateDelta(c.Amount)
}
