package dto

import (
	"time"

	"autopark/internal/domains/booking/model"
	"autopark/shared"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	gModel "autopark/shared/model"
	"autopark/shared/timezone"
)

type CreateBookingRequest struct {
	VehicleID   int64   `json:"vehicleId"   validate:"required"`
	UserID      int64   `json:"userId"      validate:"required"`
	Status      string  `json:"status"      validate:"omitempty,oneof=InWork Service"`
	StartTime   string  `json:"startTime"   validate:"required"`
	EndTime     string  `json:"endTime"     validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	startTime, err := timezone.Parse(constant.DateFormat, c.StartTime)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	endTime, err := timezone.Parse(constant.DateFormat, c.EndTime)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	status := c.Status
	if status == "" {
		status = model.StatusInWork
	}

	return model.Booking{
		VehicleID:   c.VehicleID,
		UserID:      c.UserID,
		Status:      status,
		StartTime:   startTime,
		EndTime:     endTime,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type UpdateBookingRequest struct {
	VehicleID   *int64  `json:"vehicleId"   validate:"omitempty"`
	UserID      *int64  `json:"userId"      validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=InWork Service"`
	StartTime   *string `json:"startTime"   validate:"omitempty"`
	EndTime     *string `json:"endTime"     validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// IsEmpty reports whether the request carries no fields to update.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return *u == (UpdateBookingRequest{})
}

// ApplyTo merges the supplied fields onto the stored booking and returns the
// merged result, so cross-field checks always run against the effective state.
func (u *UpdateBookingRequest) ApplyTo(booking model.Booking) (model.Booking, error) {
	if u.VehicleID != nil {
		booking.VehicleID = *u.VehicleID
	}

	if u.UserID != nil {
		booking.UserID = *u.UserID
	}

	if u.Status != nil {
		booking.Status = *u.Status
	}

	if u.Description != nil {
		booking.Description = u.Description
	}

	if u.StartTime != nil {
		startTime, err := timezone.Parse(constant.DateFormat, *u.StartTime)
		if err != nil {
			return model.Booking{}, err //nolint:wrapcheck
		}

		booking.StartTime = startTime
	}

	if u.EndTime != nil {
		endTime, err := timezone.Parse(constant.DateFormat, *u.EndTime)
		if err != nil {
			return model.Booking{}, err //nolint:wrapcheck
		}

		booking.EndTime = endTime
	}

	return booking, nil
}

// ToUpdateFields builds the column update map from the merged booking,
// touching only the columns the request supplied.
func (u *UpdateBookingRequest) ToUpdateFields(merged model.Booking) map[string]any {
	fields := map[string]any{
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if u.VehicleID != nil {
		fields[model.FieldVehicleID] = merged.VehicleID
	}

	if u.UserID != nil {
		fields[model.FieldUserID] = merged.UserID
	}

	if u.Status != nil {
		fields[model.FieldStatus] = merged.Status
	}

	if u.Description != nil {
		fields[model.FieldDescription] = merged.Description
	}

	if u.StartTime != nil {
		fields[model.FieldStartTime] = merged.StartTime
	}

	if u.EndTime != nil {
		fields[model.FieldEndTime] = merged.EndTime
	}

	return fields
}

// ConflictingBooking identifies the stored booking that blocked a write, so
// clients can resolve the collision without a second lookup.
type ConflictingBooking struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (c *ConflictingBooking) FromModel(mod model.Booking) {
	c.ID = mod.ID
	c.StartTime = timezone.Format(mod.StartTime, constant.DateFormat)
	c.EndTime = timezone.Format(mod.EndTime, constant.DateFormat)
}

type BookingVehicleSummary struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plateNumber"`
	ModelName   string `json:"modelName"`
	Type        string `json:"type"`
}

type BookingUserSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type BookingResponse struct {
	ID          int64                 `json:"id"`
	Status      string                `json:"status"`
	StartTime   string                `json:"startTime"`
	EndTime     string                `json:"endTime"`
	Description *string               `json:"description"`
	Vehicle     BookingVehicleSummary `json:"vehicle"`
	User        BookingUserSummary    `json:"user"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.BookingWithDetails) {
	r.ID = mod.ID
	r.Status = mod.Status
	r.StartTime = timezone.Format(mod.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(mod.EndTime, constant.DateFormat)
	r.Description = mod.Description
	r.Vehicle = BookingVehicleSummary{
		ID:          mod.VehicleID,
		PlateNumber: mod.VehiclePlateNumber,
		ModelName:   mod.VehicleModelName,
		Type:        mod.VehicleType,
	}
	r.User = BookingUserSummary{
		ID:      mod.UserID,
		Name:    mod.UserName,
		Surname: mod.UserSurname,
	}
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingWithDetails, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailableVehiclesResponse struct {
	VehicleIDs []int64 `json:"vehicleIds"`
}

// AvailabilityRange is the validated [start, end) window an availability
// query runs against.
type AvailabilityRange struct {
	StartTime time.Time
	EndTime   time.Time
}

// BookingEvent is the message published to the booking lifecycle topic.
type BookingEvent struct {
	Type      string `json:"type"`
	BookingID int64  `json:"bookingId"`
	VehicleID int64  `json:"vehicleId"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

func NewBookingEvent(eventType string, mod model.Booking) BookingEvent {
	return BookingEvent{
		Type:      eventType,
		BookingID: mod.ID,
		VehicleID: mod.VehicleID,
		UserID:    mod.UserID,
		Status:    mod.Status,
		StartTime: timezone.Format(mod.StartTime, constant.DateFormat),
		EndTime:   timezone.Format(mod.EndTime, constant.DateFormat),
	}
}
