package card

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
)

// List returns a bounded, ordered page of the caller's cards. Pages past
// the last card come back empty, not as an error.
func (s *Service) List(ctx context.Context, owner string, query usecase.ListQuery) ([]*entity.Card, error) {
	page, err := s.resolvePageRequest(query)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.FindPage(ctx, owner, page.sortColumn, page.direction, page.offset, page.limit)
	if err != nil {
		s.logger.Error("Failed to list cards", map[string]any{
			"owner":  owner,
			"offset": page.offset,
			"limit":  page.limit,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Cards listed", map[string]any{
		"owner": owner,
		"count": len(cards),
		"sort":  page.sortColumn,
	})
	return cards, nil
}
