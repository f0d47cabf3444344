package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
)

// maxCreateAttempts bounds how many generated IDs Create will try when a
// drawn ID collides with an administratively imported card.
const maxCreateAttempts = 3

// Create persists a fresh card owned by the caller. The balance starts at
// zero and the ID comes from the store's sequence, never from the caller.
// An imported card may already sit on the next sequence value; a collision
// just draws the next candidate.
func (s *Service) Create(ctx context.Context, owner string) (*entity.Card, error) {
	card, err := entity.NewCard(owner, s.timeProvider)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = s.cardRepo.Create(ctx, card)
		if err == nil {
			break
		}

		if errors.Is(err, errs.ErrDuplicateCard) {
			if attempt < maxCreateAttempts {
				s.logger.Warn("Generated card ID already taken, drawing the next one", map[string]any{
					"owner":   owner,
					"attempt": attempt,
				})
				continue
			}
			err = fmt.Errorf("%w: no free card ID after %d attempts", errs.ErrStorage, maxCreateAttempts)
		}

		s.logger.Error("Failed to create card", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Card created", map[string]any{
		"card_id": card.ID,
		"owner":   owner,
	})
	return card, nil
}
