package dto

import "github.com/cardworks/cashcard-service/internal/domain/entity"

// CardResponse represents a card in API responses
type CardResponse struct {
	ID     uint64  `json:"id"`
	Amount float64 `json:"amount"`
	Owner  string  `json:"owner"`
}

// NewCardResponse converts a card entity to its API shape
func NewCardResponse(card *entity.Card) CardResponse {
	return CardResponse{
		ID:     card.ID,
		Amount: card.Amount,
		Owner:  card.Owner,
	}
}

// NewCardListResponse converts a page of cards to its API shape
func NewCardListResponse(cards []*entity.Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, NewCardResponse(card))
	}
	return responses
}

// BalanceDeltaRequest carries the signed delta for a balance mutation.
// The pointer keeps "amount": 0 distinguishable from a missing field.
type BalanceDeltaRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// InsertCardRequest is the administrative import shape: a full card,
// including the owner the caller vouches for
type InsertCardRequest struct {
	ID     uint64  `json:"id" binding:"required"`
	Amount float64 `json:"amount"`
	Owner  string  `json:"owner" binding:"required"`
}
