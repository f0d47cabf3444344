package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/logger"
	mockcore "github.com/cardworks/cashcard-service/mocks/port/core"
	mockpersistence "github.com/cardworks/cashcard-service/mocks/port/persistence"
)

func TestResolvePageRequest(t *testing.T) {
	service := NewService(
		new(mockpersistence.MockCardRepository),
		new(mockcore.MockTimeProvider),
		logger.NewNoopLogger(),
		PagePolicy{DefaultSize: 20, MaxSize: 100},
	)

	tests := []struct {
		name    string
		query   usecase.ListQuery
		want    pageRequest
		wantErr error
	}{
		{
			name:  "zero value query gets full defaults",
			query: usecase.ListQuery{},
			want:  pageRequest{offset: 0, limit: 20, sortColumn: "amount", direction: persistence.SortAsc},
		},
		{
			name:  "offset is page times size",
			query: usecase.ListQuery{Page: 3, Size: 7},
			want:  pageRequest{offset: 21, limit: 7, sortColumn: "amount", direction: persistence.SortAsc},
		},
		{
			name:  "oversized size is capped",
			query: usecase.ListQuery{Size: 101},
			want:  pageRequest{offset: 0, limit: 100, sortColumn: "amount", direction: persistence.SortAsc},
		},
		{
			name:  "explicit sort key and direction",
			query: usecase.ListQuery{SortKey: "owner", Direction: persistence.SortDesc},
			want:  pageRequest{offset: 0, limit: 20, sortColumn: "owner", direction: persistence.SortDesc},
		},
		{
			name:    "negative page is rejected",
			query:   usecase.ListQuery{Page: -2},
			wantErr: errs.ErrInvalidPageRequest,
		},
		{
			name:    "negative size is rejected",
			query:   usecase.ListQuery{Size: -1},
			wantErr: errs.ErrInvalidPageRequest,
		},
		{
			name:    "unknown sort key is rejected",
			query:   usecase.ListQuery{SortKey: "created_at"},
			wantErr: errs.ErrInvalidSortKey,
		},
		{
			name:    "unknown direction is rejected",
			query:   usecase.ListQuery{Direction: persistence.SortDirection("sideways")},
			wantErr: errs.ErrInvalidSortKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.resolvePageRequest(tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
