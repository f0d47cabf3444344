package card

import (
	"fmt"

	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
)

// Default ordering when the caller does not ask for one
const (
	DefaultSortKey       = "amount"
	DefaultSortDirection = persistence.SortAsc
)

// sortColumns whitelists the sort keys the API accepts and maps them to
// store column names. Anything else is an invalid argument.
var sortColumns = map[string]string{
	"id":     "id",
	"amount": "amount",
	"owner":  "owner",
}

// pageRequest is a validated, defaulted slice of an owner's cards
type pageRequest struct {
	offset     int
	limit      int
	sortColumn string
	direction  persistence.SortDirection
}

// resolvePageRequest validates a ListQuery against the page policy and fills
// in defaults. A negative page or explicit non-positive size is rejected;
// an omitted size (zero value) falls back to the default.
func (s *Service) resolvePageRequest(query usecase.ListQuery) (pageRequest, error) {
	if query.Page < 0 {
		return pageRequest{}, fmt.Errorf("%w: page must be non-negative, got %d", errs.ErrInvalidPageRequest, query.Page)
	}

	size := query.Size
	if size == 0 {
		size = s.pagePolicy.DefaultSize
	}
	if size < 0 {
		return pageRequest{}, fmt.Errorf("%w: size must be positive, got %d", errs.ErrInvalidPageRequest, size)
	}
	if size > s.pagePolicy.MaxSize {
		size = s.pagePolicy.MaxSize
	}

	sortKey := query.SortKey
	if sortKey == "" {
		sortKey = DefaultSortKey
	}
	column, ok := sortColumns[sortKey]
	if !ok {
		return pageRequest{}, fmt.Errorf("%w: %s", errs.ErrInvalidSortKey, sortKey)
	}

	direction := query.Direction
	switch direction {
	case "":
		direction = DefaultSortDirection
	case persistence.SortAsc, persistence.SortDesc:
	default:
		return pageRequest{}, fmt.Errorf("%w: direction %s", errs.ErrInvalidSortKey, direction)
	}

	return pageRequest{
		offset:     query.Page * size,
		limit:      size,
		sortColumn: column,
		direction:  direction,
	}, nil
}
