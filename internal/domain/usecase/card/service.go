package card

import (
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
)

// PagePolicy bounds what a single List call may return
type PagePolicy struct {
	DefaultSize int // applied when the caller omits size
	MaxSize     int // larger requests are capped, not rejected
}

// DefaultPagePolicy mirrors the configured defaults used in production
var DefaultPagePolicy = PagePolicy{DefaultSize: 20, MaxSize: 100}

// Service implements the owner-scoped card operations
type Service struct {
	cardRepo     persistence.CardRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	pagePolicy   PagePolicy
}

// NewService creates a card service
func NewService(
	cardRepo persistence.CardRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	pagePolicy PagePolicy,
) *Service {
	if pagePolicy.DefaultSize <= 0 {
		pagePolicy.DefaultSize = DefaultPagePolicy.DefaultSize
	}
	if pagePolicy.MaxSize <= 0 {
		pagePolicy.MaxSize = DefaultPagePolicy.MaxSize
	}

	return &Service{
		cardRepo:     cardRepo,
		timeProvider: timeProvider,
		logger:       logger,
		pagePolicy:   pagePolicy,
	}
}
