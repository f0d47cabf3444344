package handler

import (
	"fmt"
	"net/http"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	domainerr "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the administrative card import endpoint
type AdminHandler struct {
	cardUseCase usecase.CardUseCase
	logger      coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(cardUseCase usecase.CardUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// InsertCard handles the POST /admin/cards endpoint. The body is a full
// card including its owner; the caller's own identity is not applied.
func (h *AdminHandler) InsertCard(c *gin.Context) {
	var req dto.InsertCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	card := &entity.Card{
		ID:     req.ID,
		Amount: req.Amount,
		Owner:  req.Owner,
	}

	inserted, err := h.cardUseCase.Insert(c.Request.Context(), card)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/cards/%d", inserted.ID))
	c.JSON(http.StatusCreated, dto.NewCardResponse(inserted))
}
