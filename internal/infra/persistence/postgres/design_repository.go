package postgres

import (
	"context"
	"strings"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// designRepository implements the repository.DesignRepository interface.
type designRepository struct {
	db *gorm.DB
}

// NewDesignRepository is the constructor for designRepository.
func NewDesignRepository(db *gorm.DB) repository.DesignRepository {
	return &designRepository{db: db}
}

func (repo *designRepository) CreateDesign(ctx context.Context, design *entity.UserDesign) error {
	designM := fromDesignDomain(design)

	if err := repo.db.WithContext(ctx).Create(designM).Error; err != nil {
		if isUniqueConstraintViolation(err) && strings.Contains(pgConstraintName(err), "code") {
			return repository.ErrDuplicateIdentifier
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create design")
	}

	design.ID = designM.ID
	design.CreatedAt = designM.CreatedAt
	design.UpdatedAt = designM.UpdatedAt

	return nil
}

func (repo *designRepository) FindDesignByID(ctx context.Context, id uuid.UUID) (*entity.UserDesign, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *designRepository) FindDesignByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.UserDesign, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *designRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.UserDesign, error) {
	var designM model.UserDesignModel
	if err := db.Where("id = ?", id).First(&designM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDesignNotFound
		}

		return nil, errors.Wrap(err, "failed to find design by ID")
	}

	return toDesignDomain(&designM), nil
}

func (repo *designRepository) FindDesignsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDesign, error) {
	var designModels []*model.UserDesignModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&designModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find designs by user")
	}

	designs := make([]*entity.UserDesign, 0, len(designModels))
	for _, m := range designModels {
		designs = append(designs, toDesignDomain(m))
	}

	return designs, nil
}

func (repo *designRepository) UpdateDesign(ctx context.Context, design *entity.UserDesign) error {
	designM := fromDesignDomain(design)

	result := repo.db.WithContext(ctx).Model(&model.UserDesignModel{ID: design.ID}).
		Select("design_type", "prompt", "artwork", "font", "style", "size", "color", "quantity",
			"is_draft", "updated_at").
		Updates(designM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update design")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDesignNotFound
	}

	design.UpdatedAt = designM.UpdatedAt

	return nil
}

func (repo *designRepository) DeleteDesign(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserDesignModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDesignNotDraft.WrapMessage("design has orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete design")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDesignNotFound
	}

	return nil
}

func toDesignDomain(data *model.UserDesignModel) *entity.UserDesign {
	if data == nil {
		return nil
	}

	return &entity.UserDesign{
		ID:         data.ID,
		Code:       data.Code,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		DesignType: entity.DesignType(data.DesignType),
		Prompt:     data.Prompt,
		Artwork:    data.Artwork,
		Font:       data.Font,
		Style:      data.Style,
		Size:       entity.Size(data.Size),
		Color:      data.Color,
		Quantity:   data.Quantity,
		IsDraft:    data.IsDraft,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDesignDomain(data *entity.UserDesign) *model.UserDesignModel {
	return &model.UserDesignModel{
		ID:         data.ID,
		Code:       data.Code,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		DesignType: string(data.DesignType),
		Prompt:     data.Prompt,
		Artwork:    data.Artwork,
		Font:       data.Font,
		Style:      data.Style,
		Size:       string(data.Size),
		Color:      data.Color,
		Quantity:   data.Quantity,
		IsDraft:    data.IsDraft,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
