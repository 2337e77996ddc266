package dto_test

import (
	"testing"
	"time"

	"autopark/internal/domains/booking/model"
	"autopark/internal/domains/booking/model/dto"
	"autopark/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("defaults status when omitted", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VehicleID: 1,
			UserID:    2,
			StartTime: "2026-03-10T10:00:00Z",
			EndTime:   "2026-03-10T12:00:00Z",
		}

		booking, err := req.ToModel()
		require.NoError(t, err)

		assert.Equal(t, model.StatusInWork, booking.Status)
		assert.Equal(t, int64(1), booking.VehicleID)
		assert.Equal(t, int64(2), booking.UserID)
		assert.True(t, booking.EndTime.After(booking.StartTime))
	})

	t.Run("keeps supplied status", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VehicleID: 1,
			UserID:    2,
			Status:    model.StatusService,
			StartTime: "2026-03-10T10:00:00Z",
			EndTime:   "2026-03-10T12:00:00Z",
		}

		booking, err := req.ToModel()
		require.NoError(t, err)

		assert.Equal(t, model.StatusService, booking.Status)
	})

	t.Run("rejects malformed start time", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VehicleID: 1,
			UserID:    2,
			StartTime: "2026-13-45T99:00:00Z",
			EndTime:   "2026-03-10T12:00:00Z",
		}

		_, err := req.ToModel()
		assert.Error(t, err)
	})

	t.Run("rejects malformed end time", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VehicleID: 1,
			UserID:    2,
			StartTime: "2026-03-10T10:00:00Z",
			EndTime:   "not-a-timestamp",
		}

		_, err := req.ToModel()
		assert.Error(t, err)
	})
}

func TestUpdateBookingRequest_IsEmpty(t *testing.T) {
	empty := dto.UpdateBookingRequest{}
	assert.True(t, empty.IsEmpty())

	status := model.StatusService
	withStatus := dto.UpdateBookingRequest{Status: &status}
	assert.False(t, withStatus.IsEmpty())
}

func TestUpdateBookingRequest_ApplyTo(t *testing.T) {
	stored := model.Booking{
		ID:        7,
		VehicleID: 1,
		UserID:    2,
		Status:    model.StatusInWork,
		StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	t.Run("merges only supplied fields", func(t *testing.T) {
		newEnd := "2026-03-10T14:00:00Z"
		req := dto.UpdateBookingRequest{EndTime: &newEnd}

		merged, err := req.ApplyTo(stored)
		require.NoError(t, err)

		assert.Equal(t, stored.VehicleID, merged.VehicleID)
		assert.Equal(t, stored.UserID, merged.UserID)
		assert.Equal(t, stored.StartTime, merged.StartTime)
		assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), merged.EndTime.UTC())
	})

	t.Run("moves booking to another vehicle", func(t *testing.T) {
		vehicleID := int64(9)
		req := dto.UpdateBookingRequest{VehicleID: &vehicleID}

		merged, err := req.ApplyTo(stored)
		require.NoError(t, err)

		assert.Equal(t, int64(9), merged.VehicleID)
		assert.Equal(t, stored.StartTime, merged.StartTime)
		assert.Equal(t, stored.EndTime, merged.EndTime)
	})

	t.Run("rejects malformed timestamp", func(t *testing.T) {
		badStart := "yesterday"
		req := dto.UpdateBookingRequest{StartTime: &badStart}

		_, err := req.ApplyTo(stored)
		assert.Error(t, err)
	})
}

func TestUpdateBookingRequest_ToUpdateFields(t *testing.T) {
	status := model.StatusService
	description := "scheduled maintenance"
	req := dto.UpdateBookingRequest{
		Status:      &status,
		Description: &description,
	}

	merged := model.Booking{
		ID:          7,
		VehicleID:   1,
		UserID:      2,
		Status:      status,
		Description: &description,
		StartTime:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	fields := req.ToUpdateFields(merged)

	assert.Equal(t, status, fields[model.FieldStatus])
	assert.Equal(t, &description, fields[model.FieldDescription])
	assert.NotNil(t, fields[constant.FieldUpdatedAt])

	assert.NotContains(t, fields, model.FieldVehicleID)
	assert.NotContains(t, fields, model.FieldUserID)
	assert.NotContains(t, fields, model.FieldStartTime)
	assert.NotContains(t, fields, model.FieldEndTime)
}

func TestNewBookingEvent(t *testing.T) {
	booking := model.Booking{
		ID:        7,
		VehicleID: 1,
		UserID:    2,
		Status:    model.StatusInWork,
		StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	event := dto.NewBookingEvent(dto.EventBookingCreated, booking)

	assert.Equal(t, dto.EventBookingCreated, event.Type)
	assert.Equal(t, int64(7), event.BookingID)
	assert.Equal(t, int64(1), event.VehicleID)
	assert.Equal(t, int64(2), event.UserID)
	assert.Equal(t, model.StatusInWork, event.Status)
	assert.NotEmpty(t, event.StartTime)
	assert.NotEmpty(t, event.EndTime)
}
