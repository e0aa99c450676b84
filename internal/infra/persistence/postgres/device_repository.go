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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) SaveDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)
	deviceM.IsActive = true
	if deviceM.ID == uuid.Nil {
		deviceM.ID = uuid.New()
	}

	conflict := make([]clause.Column, 0, len(model.DeviceConflictColumns))
	for _, name := range model.DeviceConflictColumns {
		conflict = append(conflict, clause.Column{Name: name})
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   conflict,
		DoUpdates: clause.AssignmentColumns(model.DeviceRefreshColumns),
	}).Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save device")
	}

	var stored model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", deviceM.UserID, deviceM.DeviceID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload device")
	}
	*device = *toDeviceDomain(&stored)

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser lists a user's devices, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var deviceModels []*model.UserDeviceModel
	if err := query.Order("created_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{"fcm_token": fcmToken, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice stops pushes to a device.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
