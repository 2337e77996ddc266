package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"autopark/infras/otel"
	"autopark/infras/postgres"
	"autopark/internal/domains/booking/model"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/logger"
	gRepo "autopark/shared/repository"
)

const detailsSelect = `bookings.id, bookings.vehicle_id, bookings.user_id, bookings.status,
	bookings.start_time, bookings.end_time, bookings.description, bookings.created_at, bookings.updated_at,
	vehicles.plate_number AS vehicle_plate_number, vehicles.model_name AS vehicle_model_name,
	vehicles.type AS vehicle_type, users.name AS user_name, users.surname AS user_surname`

const detailsJoin = `FROM bookings
	JOIN vehicles ON vehicles.id = bookings.vehicle_id
	JOIN users ON users.id = bookings.user_id`

type Booking interface {
	InsertReturningID(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	GetAllWithDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingWithDetails, error)
	GetWithDetails(ctx context.Context, id int64) (model.BookingWithDetails, error)
	FindOverlapping(ctx context.Context, vehicleID int64, start, end time.Time, excludeID int64) (model.Booking, bool, error)
	AvailableVehicleIDs(ctx context.Context, start, end time.Time) ([]int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllWithDetails lists bookings joined to their vehicle and user summaries,
// ordered chronologically with ids breaking ties so pagination stays stable.
func (repo *repositoryImpl) GetAllWithDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingWithDetails, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAllWithDetails")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	pagination := ""
	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY bookings.start_time ASC, bookings.id ASC %s",
		detailsSelect,
		detailsJoin,
		where,
		pagination,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []model.BookingWithDetails

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return models, nil
}

func (repo *repositoryImpl) GetWithDetails(ctx context.Context, id int64) (model.BookingWithDetails, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetWithDetails")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s %s WHERE bookings.id = $1", detailsSelect, detailsJoin)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var booking model.BookingWithDetails

	err := repo.db.Read.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

// FindOverlapping returns the earliest stored booking of the vehicle that
// collides with [start, end). Intervals are half-open, so a booking ending
// exactly at start (or starting exactly at end) does not collide. A non-zero
// excludeID leaves that booking out of the check, letting updates overlap the
// row they replace.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, vehicleID int64, start, end time.Time, excludeID int64) (model.Booking, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlapping")
	defer scope.End()

	query := `SELECT id, vehicle_id, user_id, status, start_time, end_time, description, created_at, updated_at
		FROM bookings
		WHERE vehicle_id = :vehicle_id
		AND start_time < :end_time
		AND end_time > :start_time
		AND (:exclude_id = 0 OR id != :exclude_id)
		ORDER BY start_time ASC, id ASC
		LIMIT 1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"vehicle_id": vehicleID,
		"start_time": start,
		"end_time":   end,
		"exclude_id": excludeID,
	}

	var booking model.Booking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, false, fmt.Errorf("failed to find overlapping booking: %w", err)
	}

	return booking, true, nil
}

// AvailableVehicleIDs returns the ids of every vehicle with no booking
// colliding with [start, end), ordered ascending.
func (repo *repositoryImpl) AvailableVehicleIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.AvailableVehicleIDs")
	defer scope.End()

	query := `SELECT v.id FROM vehicles v
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.vehicle_id = v.id
			AND b.start_time < :end_time
			AND b.end_time > :start_time
		)
		ORDER BY v.id ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"start_time": start,
		"end_time":   end,
	}

	ids := []int64{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return ids, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &ids, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return ids, fmt.Errorf("failed to get available vehicles: %w", err)
	}

	return ids, nil
}
