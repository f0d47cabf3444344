package card

import (
	"context"
	"errors"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
)

// ApplyBalanceDelta adds a signed finite delta to the card's balance. The
// increment runs store-side under a row lock, so two concurrent deltas on
// the same card are both reflected in the final amount. Ownership follows
// the same indistinguishability rule as FindByID.
func (s *Service) ApplyBalanceDelta(ctx context.Context, id uint64, owner string, delta float64) (*entity.Card, error) {
	if id == 0 {
		// the store never issues ID zero, so it reads as any other miss
		return nil, errs.ErrCardNotFound
	}
	if err := entity.ValidateDelta(delta); err != nil {
		s.logger.Warn("Rejected non-finite balance delta", map[string]any{
			"card_id": id,
			"owner":   owner,
		})
		return nil, err
	}

	card, err := s.cardRepo.AddToBalance(ctx, id, owner, delta)
	if err != nil {
		if errors.Is(err, errs.ErrCardNotFound) {
			s.logger.Debug("Balance delta missed card", map[string]any{
				"card_id": id,
				"owner":   owner,
			})
			return nil, err
		}
		deltaErr := &errs.DeltaError{CardID: id, Owner: owner, Delta: delta, Err: err}
		s.logger.Error("Failed to apply balance delta", deltaErr.LogFields())
		return nil, err
	}

	s.logger.Info("Balance delta applied", map[string]any{
		"card_id":    card.ID,
		"owner":      owner,
		"delta":      delta,
		"new_amount": card.Amount,
	})
	return card, nil
}
