package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardRepository implements persistence.CardRepository using GORM
type CardRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCardRepository creates a new CardRepository instance
func NewCardRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CardRepository {
	return &CardRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a card model to a domain entity
func modelToEntity(cardModel *model.Card) *entity.Card {
	return &entity.Card{
		ID:        cardModel.ID,
		Amount:    cardModel.Amount,
		Owner:     cardModel.Owner,
		CreatedAt: cardModel.CreatedAt,
		UpdatedAt: cardModel.UpdatedAt,
	}
}

// entityToModel converts a domain entity to a card model
func entityToModel(card *entity.Card) *model.Card {
	return &model.Card{
		ID:        card.ID,
		Amount:    card.Amount,
		Owner:     card.Owner,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling for card operations
func (r *CardRepository) handleDatabaseError(operation string, err error, cardID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCardNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate card ID", map[string]any{
			"card_id": cardID,
		})
		return errs.ErrDuplicateCard
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Card row is locked by another operation", map[string]any{
			"card_id": cardID,
			"error":   err.Error(),
		})
		return errs.ErrCardLocked
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"card_id": cardID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// Create persists a new card; the ID comes from the store's sequence and is
// written back into the entity
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardModel := entityToModel(card)
	cardModel.ID = 0 // never trust a caller-supplied ID on this path

	result := r.db.WithContext(ctx).Create(cardModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating card", result.Error, 0)
	}

	card.ID = cardModel.ID

	r.logger.Debug("Card row created", map[string]any{
		"card_id": card.ID,
		"owner":   card.Owner,
	})
	return nil
}

// Insert persists a caller-supplied card under its own ID
func (r *CardRepository) Insert(ctx context.Context, card *entity.Card) error {
	cardModel := entityToModel(card)

	result := r.db.WithContext(ctx).Create(cardModel)
	if result.Error != nil {
		return r.handleDatabaseError("inserting card", result.Error, card.ID)
	}

	r.logger.Debug("Card row inserted", map[string]any{
		"card_id": card.ID,
		"owner":   card.Owner,
	})
	return nil
}

// FindByIDAndOwner retrieves a card only when both ID and owner match.
// The single WHERE clause keeps "missing" and "not yours" identical.
func (r *CardRepository) FindByIDAndOwner(ctx context.Context, id uint64, owner string) (*entity.Card, error) {
	var cardModel model.Card
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		First(&cardModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("finding card", result.Error, id)
	}

	return modelToEntity(&cardModel), nil
}

// FindPage returns the owner's cards ordered and sliced to [offset, offset+limit).
// sortColumn is a whitelisted column name, never raw caller input.
func (r *CardRepository) FindPage(ctx context.Context, owner, sortColumn string, direction persistence.SortDirection, offset, limit int) ([]*entity.Card, error) {
	var cardModels []model.Card
	result := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: sortColumn},
			Desc:   direction == persistence.SortDesc,
		}).
		Offset(offset).
		Limit(limit).
		Find(&cardModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing cards", result.Error, 0)
	}

	cards := make([]*entity.Card, 0, len(cardModels))
	for i := range cardModels {
		cards = append(cards, modelToEntity(&cardModels[i]))
	}
	return cards, nil
}

// ExistsByID reports whether any card has the given ID, regardless of owner
func (r *CardRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking card existence", result.Error, id)
	}

	return count > 0, nil
}

// AddToBalance applies a signed delta to the card's amount inside a store
// transaction, locking the row so concurrent deltas never lose an update
func (r *CardRepository) AddToBalance(ctx context.Context, id uint64, owner string, delta float64) (*entity.Card, error) {
	var card *entity.Card

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cardModel model.Card
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND owner = ?", id, owner).
			First(&cardModel)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrCardNotFound
			}
			return result.Error
		}

		cardModel.Amount += delta
		cardModel.UpdatedAt = r.timeProvider.Now()

		result = tx.Model(&cardModel).Updates(map[string]interface{}{
			"amount":     cardModel.Amount,
			"updated_at": cardModel.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}

		card = modelToEntity(&cardModel)
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrCardNotFound) {
			return nil, err
		}
		return nil, r.handleDatabaseError("applying balance delta", err, id)
	}

	r.logger.Debug("Balance updated", map[string]any{
		"card_id":    id,
		"delta":      delta,
		"new_amount": card.Amount,
	})
	return card, nil
}
