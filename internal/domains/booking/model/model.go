package model

import (
	"time"

	"autopark/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldVehicleID   = "vehicle_id"
	FieldUserID      = "user_id"
	FieldStatus      = "status"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldDescription = "description"
)

const (
	StatusInWork  = "InWork"
	StatusService = "Service"
)

type Booking struct {
	ID          int64     `db:"id"`
	VehicleID   int64     `db:"vehicle_id"`
	UserID      int64     `db:"user_id"`
	Status      string    `db:"status"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Description *string   `db:"description"`
	model.Metadata
}

// Overlaps reports whether the booking collides with the half-open
// interval [start, end). Bookings that merely touch at a boundary do not
// overlap, so back-to-back bookings are always allowed. It is the in-memory
// counterpart of the predicate Repository.FindOverlapping runs in SQL.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// BookingWithDetails is a booking enriched with the vehicle and user
// summaries the listing endpoints serve.
type BookingWithDetails struct {
	Booking
	VehiclePlateNumber string `db:"vehicle_plate_number"`
	VehicleModelName   string `db:"vehicle_model_name"`
	VehicleType        string `db:"vehicle_type"`
	UserName           string `db:"user_name"`
	UserSurname        string `db:"user_surname"`
}
