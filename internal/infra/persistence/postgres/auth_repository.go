package postgres

import (
	"context"
	"time"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateCredential persists the password credential of a new user.
func (repo *authRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credM := &model.CredentialModel{
		ID:           credential.ID,
		UserID:       credential.UserID,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credential already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credM.ID
	credential.CreatedAt = credM.CreatedAt
	credential.UpdatedAt = credM.UpdatedAt

	return nil
}

// FindCredentialByUserID retrieves the password credential of a user.
func (repo *authRepository) FindCredentialByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Credential{
		ID:           credM.ID,
		UserID:       credM.UserID,
		PasswordHash: credM.PasswordHash,
		CreatedAt:    credM.CreatedAt,
		UpdatedAt:    credM.UpdatedAt,
	}, nil
}

// UpdatePasswordHash replaces the stored hash for a user.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"password_hash": passwordHash, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// CreatePasswordResetToken persists a new reset token.
func (repo *authRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := &model.PasswordResetTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindPasswordResetToken retrieves a reset token by user and hash.
func (repo *authRepository) FindPasswordResetToken(ctx context.Context, userID uuid.UUID, tokenHash string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return &entity.PasswordResetToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		UsedAt:    tokenM.UsedAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// MarkPasswordResetTokenUsed stamps the token as redeemed. A token is only redeemed once.
func (repo *authRepository) MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.PasswordResetTokenModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark password reset token used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}
