package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeNonFiniteAmount    = 4001
	CodeInvalidCardID      = 4002
	CodeInvalidSortKey     = 4003
	CodeInvalidPageRequest = 4004
	CodeInvalidOwner       = 4005
	CodeInvalidRequest     = 4006
	CodeUnauthenticated    = 4010
	CodeCardNotFound       = 4040
	CodeDuplicateCard      = 4090
	CodeCardLocked         = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorage        = 5001
)

// Base error types
var (
	// ErrNonFiniteAmount is returned when a balance delta is NaN or infinite
	ErrNonFiniteAmount = errors.New("amount must be a finite number")

	// ErrInvalidCardID is returned when the card ID is not a positive integer
	ErrInvalidCardID = errors.New("card ID must be positive")

	// ErrInvalidSortKey is returned when an unsupported sort key is requested
	ErrInvalidSortKey = errors.New("unsupported sort key")

	// ErrInvalidPageRequest is returned for a negative page or non-positive size
	ErrInvalidPageRequest = errors.New("invalid page request")

	// ErrInvalidOwner is returned when a card has no owner identity
	ErrInvalidOwner = errors.New("owner cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthenticated is returned when request credentials are missing or wrong
	ErrUnauthenticated = errors.New("authentication required")

	// ErrCardNotFound is returned when a card does not exist for the caller.
	// A card owned by someone else reports the same error so existence
	// never leaks across owners.
	ErrCardNotFound = errors.New("card not found")

	// ErrDuplicateCard is returned when inserting a card whose ID already exists
	ErrDuplicateCard = errors.New("card with this ID already exists")

	// ErrCardLocked is returned when a card row is held by another operation
	ErrCardLocked = errors.New("card is locked by another operation")

	// ErrCredentialNotFound is returned when no credential exists for a username
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrDuplicateCredential is returned when creating a credential that already exists
	ErrDuplicateCredential = errors.New("credential already exists")

	// ErrStorage is returned when the underlying store fails or is unreachable
	ErrStorage = errors.New("storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrNonFiniteAmount):
		return CodeNonFiniteAmount
	case errors.Is(err, ErrInvalidCardID):
		return CodeInvalidCardID
	case errors.Is(err, ErrInvalidSortKey):
		return CodeInvalidSortKey
	case errors.Is(err, ErrInvalidPageRequest):
		return CodeInvalidPageRequest
	case errors.Is(err, ErrInvalidOwner):
		return CodeInvalidOwner
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrCardNotFound):
		return CodeCardNotFound
	case errors.Is(err, ErrDuplicateCard):
		return CodeDuplicateCard
	case errors.Is(err, ErrCardLocked):
		return CodeCardLocked
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// DeltaError carries context about a failed balance mutation
type DeltaError struct {
	CardID uint64
	Owner  string
	Delta  float64
	Err    error
}

// Error implements the error interface for DeltaError
func (e *DeltaError) Error() string {
	return fmt.Sprintf("balance delta failed for card %d (owner: %s, delta: %f): %v",
		e.CardID, e.Owner, e.Delta, e.Err)
}

// Unwrap returns the underlying error
func (e *DeltaError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DeltaError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "delta_error",
		"card_id":    e.CardID,
		"owner":      e.Owner,
		"delta":      e.Delta,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDeltaError creates a detailed balance mutation error
func NewDeltaError(cardID uint64, owner string, delta float64, err error) error {
	return &DeltaError{
		CardID: cardID,
		Owner:  owner,
		Delta:  delta,
		Err:    err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCardNotFound) || errors.Is(err, ErrCredentialNotFound)
}

// IsInvalidArgumentError checks if the error rejects the request before any mutation
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrNonFiniteAmount) ||
		errors.Is(err, ErrInvalidCardID) ||
		errors.Is(err, ErrInvalidSortKey) ||
		errors.Is(err, ErrInvalidPageRequest) ||
		errors.Is(err, ErrInvalidOwner) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError checks if the error is a duplicate-ID or contention failure
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateCard) ||
		errors.Is(err, ErrDuplicateCredential) ||
		errors.Is(err, ErrCardLocked)
}

// IsStorageError checks if the error comes from the persistence layer itself
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
