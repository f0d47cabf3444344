package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "non-finite amount", err: ErrNonFiniteAmount, code: CodeNonFiniteAmount},
		{name: "invalid card ID", err: ErrInvalidCardID, code: CodeInvalidCardID},
		{name: "invalid sort key", err: ErrInvalidSortKey, code: CodeInvalidSortKey},
		{name: "invalid page request", err: ErrInvalidPageRequest, code: CodeInvalidPageRequest},
		{name: "unauthenticated", err: ErrUnauthenticated, code: CodeUnauthenticated},
		{name: "card not found", err: ErrCardNotFound, code: CodeCardNotFound},
		{name: "duplicate card", err: ErrDuplicateCard, code: CodeDuplicateCard},
		{name: "card locked", err: ErrCardLocked, code: CodeCardLocked},
		{name: "storage", err: ErrStorage, code: CodeStorage},
		{name: "unknown error", err: errors.New("boom"), code: CodeInternalServer},
		{name: "wrapped error keeps its code", err: fmt.Errorf("%w: page -1", ErrInvalidPageRequest), code: CodeInvalidPageRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestClassificationHelpers(t *testing.T) {
	t.Run("not found covers cards and credentials", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrCardNotFound))
		assert.True(t, IsNotFoundError(ErrCredentialNotFound))
		assert.False(t, IsNotFoundError(ErrStorage))
	})

	t.Run("invalid argument covers request validation failures", func(t *testing.T) {
		assert.True(t, IsInvalidArgumentError(ErrNonFiniteAmount))
		assert.True(t, IsInvalidArgumentError(ErrInvalidSortKey))
		assert.True(t, IsInvalidArgumentError(fmt.Errorf("%w: size 0", ErrInvalidPageRequest)))
		assert.False(t, IsInvalidArgumentError(ErrCardNotFound))
	})

	t.Run("conflict covers duplicates and contention", func(t *testing.T) {
		assert.True(t, IsConflictError(ErrDuplicateCard))
		assert.True(t, IsConflictError(ErrCardLocked))
		assert.False(t, IsConflictError(ErrCardNotFound))
	})

	t.Run("storage errors survive wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: connection refused", ErrStorage)
		assert.True(t, IsStorageError(wrapped))
	})
}

func TestDeltaError(t *testing.T) {
	inner := ErrCardLocked
	err := NewDeltaError(7, "owner1", 30.0, inner)

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrCardLocked)
	})

	t.Run("carries structured log fields", func(t *testing.T) {
		var deltaErr *DeltaError
		assert.True(t, errors.As(err, &deltaErr))

		fields := deltaErr.LogFields()
		assert.Equal(t, uint64(7), fields["card_id"])
		assert.Equal(t, "owner1", fields["owner"])
		assert.Equal(t, CodeCardLocked, fields["error_code"])
	})
}
