package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	errs "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CredentialRepository implements persistence.CredentialRepository using GORM
type CredentialRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCredentialRepository creates a new CredentialRepository instance
func NewCredentialRepository(db *gorm.DB, logger coreport.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByUsername retrieves the stored credential for a username
func (r *CredentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credModel model.Credential
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&credModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCredentialNotFound
		}
		r.logger.Error("Database error when loading credential", map[string]any{
			"username": username,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return &entity.Credential{
		Username:     credModel.Username,
		PasswordHash: credModel.PasswordHash,
		Role:         credModel.Role,
		CreatedAt:    credModel.CreatedAt,
	}, nil
}

// Create persists a new credential
func (r *CredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credModel := model.Credential{
		Username:     credential.Username,
		PasswordHash: credential.PasswordHash,
		Role:         credential.Role,
		CreatedAt:    credential.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&credModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateCredential
		}
		r.logger.Error("Database error when creating credential", map[string]any{
			"username": credential.Username,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return nil
}

// ExistsByUsername reports whether a credential exists for the username
func (r *CredentialRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("username = ?", username).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when checking credential existence", map[string]any{
			"username": username,
			"error":    result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return count > 0, nil
}
