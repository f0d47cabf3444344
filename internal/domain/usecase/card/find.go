package card

import (
	"context"
	"errors"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
)

// FindByID returns the card only when it exists and belongs to the caller.
// Existence and ownership are checked as one lookup so "not yours" and
// "not there" produce the same ErrCardNotFound.
func (s *Service) FindByID(ctx context.Context, id uint64, owner string) (*entity.Card, error) {
	if id == 0 {
		// the store never issues ID zero, so it reads as any other miss
		return nil, errs.ErrCardNotFound
	}

	card, err := s.cardRepo.FindByIDAndOwner(ctx, id, owner)
	if err != nil {
		if errors.Is(err, errs.ErrCardNotFound) {
			s.logger.Debug("Card lookup missed", map[string]any{
				"card_id": id,
				"owner":   owner,
			})
		} else {
			s.logger.Error("Failed to look up card", map[string]any{
				"card_id": id,
				"owner":   owner,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	return card, nil
}
