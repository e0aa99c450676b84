package orderstatus

import (
	"testing"
	"time"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTracking = []entity.TrackingStatus{
	entity.TrackingPlaced,
	entity.TrackingPacked,
	entity.TrackingTransit,
	entity.TrackingDelivery,
	entity.TrackingDelivered,
}

func TestDerive(t *testing.T) {
	tests := []struct {
		status   entity.OrderStatus
		tracking entity.TrackingStatus
		want     entity.OrderStatus
	}{
		{entity.OrderStatusProcessing, entity.TrackingPlaced, entity.OrderStatusProcessing},
		{entity.OrderStatusProcessing, entity.TrackingTransit, entity.OrderStatusProcessing},
		{entity.OrderStatusProcessing, entity.TrackingDelivered, entity.OrderStatusCompleted},
		{entity.OrderStatusCompleted, entity.TrackingDelivery, entity.OrderStatusProcessing},
		{entity.OrderStatusCancelled, entity.TrackingDelivered, entity.OrderStatusCancelled},
		{entity.OrderStatusCancelled, entity.TrackingPacked, entity.OrderStatusCancelled},
		{"", entity.TrackingPlaced, entity.OrderStatusProcessing},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+string(tt.tracking), func(t *testing.T) {
			got := Derive(entity.Order{Status: tt.status, Tracking: tt.tracking})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrack_DeliveredCompletes(t *testing.T) {
	order := &entity.Order{Status: entity.OrderStatusProcessing, Tracking: entity.TrackingPlaced, IsActive: true}

	require.NoError(t, Track(order, entity.TrackingDelivered))
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestTrack_CancelledIsSticky(t *testing.T) {
	order := &entity.Order{Status: entity.OrderStatusProcessing, Tracking: entity.TrackingPlaced, IsActive: true}
	_, err := Cancel(order, time.Now())
	require.NoError(t, err)

	for _, tracking := range allTracking {
		require.NoError(t, Track(order, tracking))
		assert.Equal(t, entity.OrderStatusCancelled, order.Status, "tracking %s", tracking)
		assert.False(t, order.IsActive)
	}
}

func TestTrack_RejectsUnknownValue(t *testing.T) {
	order := &entity.Order{Tracking: entity.TrackingPacked}

	err := Track(order, "lost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, entity.TrackingPacked, order.Tracking)
}

func TestCancel_IsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order := &entity.Order{Status: entity.OrderStatusProcessing, Tracking: entity.TrackingPacked, IsActive: true}

	already, err := Cancel(order, now)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.False(t, order.IsActive)
	require.NotNil(t, order.CancelledAt)
	assert.Equal(t, now, *order.CancelledAt)

	already, err = Cancel(order, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, now, *order.CancelledAt)
}

func TestCancel_DeliveredOrderRejected(t *testing.T) {
	order := &entity.Order{Status: entity.OrderStatusCompleted, Tracking: entity.TrackingDelivered, IsActive: true}

	_, err := Cancel(order, time.Now())
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAlreadyCompleted))
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestReactivate(t *testing.T) {
	order := &entity.Order{Status: entity.OrderStatusProcessing, Tracking: entity.TrackingTransit, IsActive: true}
	_, err := Cancel(order, time.Now())
	require.NoError(t, err)

	require.NoError(t, Reactivate(order))
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.True(t, order.IsActive)
	assert.Nil(t, order.CancelledAt)

	assert.True(t, errors.Is(Reactivate(order), domainerrors.ErrOrderNotCancelled))
}
