package postgres

import (
	"context"
	"time"

	"apparel/internal/domain/identifier"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// codeTables maps an identifier prefix to the table whose code column it fills.
var codeTables = map[string]string{
	identifier.PrefixUser:    "users",
	identifier.PrefixProduct: "apparel_products",
	identifier.PrefixAddress: "addresses",
	identifier.PrefixDesign:  "user_designs",
	identifier.PrefixOrder:   "orders",
}

// identifierRepository hands out "<prefix>-<n>" values from identifier_sequences.
// The sequence row is locked FOR UPDATE, so allocation is serialised per prefix
// and a rolled back transaction gives its value back.
type identifierRepository struct {
	db    *gorm.DB
	floor int64
}

// NewIdentifierRepository is the constructor for identifierRepository.
func NewIdentifierRepository(db *gorm.DB, floor int64) repository.IdentifierRepository {
	if floor <= 0 {
		floor = identifier.DefaultFloor
	}

	return &identifierRepository{db: db, floor: floor}
}

func (repo *identifierRepository) Allocate(ctx context.Context, prefix string) (string, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	seq, err := repo.lockSequence(db, prefix)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := repo.seedSequence(db, prefix); err != nil {
			return "", err
		}
		seq, err = repo.lockSequence(db, prefix)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to lock identifier sequence %s", prefix)
	}

	next := identifier.NextValue(prefix, identifier.Format(prefix, seq.LastValue), repo.floor)

	// A code written without going through the sequence makes next collide,
	// and the failed insert rolls the advance back with it. Skip past it.
	taken, err := repo.codeTaken(db, prefix, identifier.Format(prefix, next))
	if err != nil {
		return "", err
	}
	if taken {
		stored, err := repo.latestStored(db, prefix)
		if err != nil {
			return "", err
		}
		next = max(next, stored+1)
	}

	if err := db.Model(&model.IdentifierSequenceModel{}).
		Where("prefix = ?", prefix).
		Updates(map[string]any{"last_value": next, "updated_at": time.Now()}).Error; err != nil {
		return "", errors.Wrapf(err, "failed to advance identifier sequence %s", prefix)
	}

	return identifier.Format(prefix, next), nil
}

func (repo *identifierRepository) lockSequence(db *gorm.DB, prefix string) (*model.IdentifierSequenceModel, error) {
	var seq model.IdentifierSequenceModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ?", prefix).
		First(&seq).Error; err != nil {
		return nil, err
	}

	return &seq, nil
}

// seedSequence creates the sequence row starting after the latest code already
// stored for the prefix, so rows inserted before the sequence existed are skipped.
func (repo *identifierRepository) seedSequence(db *gorm.DB, prefix string) error {
	start, err := repo.latestStored(db, prefix)
	if err != nil {
		return err
	}

	seed := model.IdentifierSequenceModel{Prefix: prefix, LastValue: start, UpdatedAt: time.Now()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return errors.Wrapf(err, "failed to seed identifier sequence %s", prefix)
	}

	return nil
}

// latestStored returns the highest number stored under prefix, never below the floor.
func (repo *identifierRepository) latestStored(db *gorm.DB, prefix string) (int64, error) {
	table, ok := codeTables[prefix]
	if !ok {
		return repo.floor, nil
	}

	var latest []string
	if err := db.Table(table).
		Where("code LIKE ?", prefix+"-%").
		Order("length(code) DESC, code DESC").
		Limit(1).
		Pluck("code", &latest).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to read latest %s identifier", prefix)
	}
	if len(latest) == 0 {
		return repo.floor, nil
	}

	return identifier.NextValue(prefix, latest[0], repo.floor) - 1, nil
}

func (repo *identifierRepository) codeTaken(db *gorm.DB, prefix, code string) (bool, error) {
	table, ok := codeTables[prefix]
	if !ok {
		return false, nil
	}

	var count int64
	if err := db.Table(table).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check %s identifier", prefix)
	}

	return count > 0, nil
}
