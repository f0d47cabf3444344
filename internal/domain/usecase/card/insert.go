package card

import (
	"context"
	"errors"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
)

// Insert persists a caller-supplied card verbatim under its own ID,
// failing when that ID is already taken. Unlike Create, this trusts the
// owner field on the card: it is an administrative import path, not an
// owner-scoped operation.
func (s *Service) Insert(ctx context.Context, card *entity.Card) (*entity.Card, error) {
	if card == nil {
		return nil, errs.ErrInvalidRequest
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
	}
	card.UpdatedAt = now

	if err := s.cardRepo.Insert(ctx, card); err != nil {
		if errors.Is(err, errs.ErrDuplicateCard) {
			s.logger.Warn("Insert rejected: duplicate card ID", map[string]any{
				"card_id": card.ID,
			})
		} else {
			s.logger.Error("Failed to insert card", map[string]any{
				"card_id": card.ID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Card inserted", map[string]any{
		"card_id": card.ID,
		"owner":   card.Owner,
	})
	return card, nil
}
