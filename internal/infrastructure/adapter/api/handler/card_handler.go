package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/dto"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CardHandler handles owner-scoped card HTTP requests
type CardHandler struct {
	cardUseCase usecase.CardUseCase
	logger      coreport.Logger
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(cardUseCase usecase.CardUseCase, logger coreport.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// FindByID handles the GET /cards/{id} endpoint
func (h *CardHandler) FindByID(c *gin.Context) {
	owner, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	id, ok := parseCardID(c)
	if !ok {
		return
	}

	card, err := h.cardUseCase.FindByID(c.Request.Context(), id, owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(card))
}

// List handles the GET /cards endpoint
func (h *CardHandler) List(c *gin.Context) {
	owner, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	query, ok := parseListQuery(c)
	if !ok {
		return
	}

	cards, err := h.cardUseCase.List(c.Request.Context(), owner, query)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardListResponse(cards))
}

// Create handles the POST /cards endpoint. The owner always comes from the
// authenticated identity, never from the request body.
func (h *CardHandler) Create(c *gin.Context) {
	owner, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	card, err := h.cardUseCase.Create(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/cards/%d", card.ID))
	c.JSON(http.StatusCreated, dto.NewCardResponse(card))
}

// ApplyBalanceDelta handles the POST /cards/balance/{id} endpoint
func (h *CardHandler) ApplyBalanceDelta(c *gin.Context) {
	owner, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	id, ok := parseCardID(c)
	if !ok {
		return
	}

	var req dto.BalanceDeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	card, err := h.cardUseCase.ApplyBalanceDelta(c.Request.Context(), id, owner, *req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(card))
}

// parseCardID extracts the {id} path parameter. Only malformed input is a
// bad request; ID zero flows through and misses like any other absent card.
func parseCardID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCardID),
			Message: "Invalid card ID format",
		})
		return 0, false
	}
	return id, true
}

// parseListQuery reads page, size and sort query parameters. The sort
// parameter is "field" or "field,asc|desc".
func parseListQuery(c *gin.Context) (usecase.ListQuery, bool) {
	var query usecase.ListQuery

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			respondInvalidQuery(c, "page must be an integer")
			return query, false
		}
		query.Page = page
	}

	if sizeStr := c.Query("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			respondInvalidQuery(c, "size must be an integer")
			return query, false
		}
		query.Size = size
	}

	if sortStr := c.Query("sort"); sortStr != "" {
		parts := strings.SplitN(sortStr, ",", 2)
		query.SortKey = parts[0]
		if len(parts) == 2 {
			query.Direction = persistence.SortDirection(strings.ToLower(parts[1]))
		}
	}

	return query, true
}

func respondInvalidQuery(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidPageRequest),
		Message: message,
	})
}

// respondError maps domain errors to HTTP responses. Not-found responses
// carry an empty body so a missing card and someone else's card look
// exactly the same on the wire.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	switch {
	case domainerr.IsNotFoundError(err):
		c.Status(http.StatusNotFound)
	case domainerr.IsInvalidArgumentError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	default:
		logger.Error("Request failed", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
	}
}
