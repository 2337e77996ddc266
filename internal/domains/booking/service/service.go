package service

import (
	"context"
	"fmt"
	"strconv"

	"autopark/config"
	"autopark/infras/kafka"
	"autopark/infras/otel"
	"autopark/internal/domains/booking/model"
	"autopark/internal/domains/booking/model/dto"
	"autopark/internal/domains/booking/repository"
	userModel "autopark/internal/domains/user/model"
	userRepo "autopark/internal/domains/user/repository"
	vehicleModel "autopark/internal/domains/vehicle/model"
	vehicleRepo "autopark/internal/domains/vehicle/repository"
	"autopark/shared"
	"autopark/shared/cache"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking       = "booking:get"
	cacheGetAllBooking    = "booking:gets"
	cacheCountBooking     = "booking:count"
	cacheAvailableVehicle = "booking:available"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
	AvailableVehicles(ctx context.Context, rng dto.AvailabilityRange) (dto.AvailableVehiclesResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	vehicleRepo vehicleRepo.Vehicle
	userRepo    userRepo.User
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Booking, vehicleRepo vehicleRepo.Vehicle, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !booking.EndTime.After(booking.StartTime) {
		return res, failure.BadRequestFromString("endTime must be after startTime") // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, booking.VehicleID, booking.UserID); err != nil {
		return res, err
	}

	conflicting, found, err := s.repo.FindOverlapping(ctx, booking.VehicleID, booking.StartTime, booking.EndTime, 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping bookings")

		return res, fmt.Errorf("failed to check for overlapping bookings: %w", err)
	}

	if found {
		var details dto.ConflictingBooking

		details.FromModel(conflicting)

		return res, failure.ConflictWithDetails("vehicle is already booked for this period", details) // nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningID(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id

	withDetails, err := s.repo.GetWithDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get created booking")

		return res, fmt.Errorf("failed to get created booking: %w", err)
	}

	res.FromModel(withDetails)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, dto.EventBookingCreated, booking)
		s.invalidateListingCaches(c)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAllWithDetails(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.GetWithDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	existing, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if existing.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	merged, err := req.ApplyTo(existing)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking update request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !merged.EndTime.After(merged.StartTime) {
		return res, failure.BadRequestFromString("endTime must be after startTime") // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, merged.VehicleID, merged.UserID); err != nil {
		return res, err
	}

	conflicting, found, err := s.repo.FindOverlapping(ctx, merged.VehicleID, merged.StartTime, merged.EndTime, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping bookings")

		return res, fmt.Errorf("failed to check for overlapping bookings: %w", err)
	}

	if found {
		var details dto.ConflictingBooking

		details.FromModel(conflicting)

		return res, failure.ConflictWithDetails("vehicle is already booked for this period", details) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, req.ToUpdateFields(merged), filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	withDetails, err := s.repo.GetWithDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	if withDetails.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(withDetails)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, dto.EventBookingUpdated, merged)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateListingCaches(c)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if existing.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if _, err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, dto.EventBookingDeleted, existing)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateListingCaches(c)
	}()

	return nil
}

func (s *serviceImpl) AvailableVehicles(ctx context.Context, rng dto.AvailabilityRange) (res dto.AvailableVehiclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableVehicles")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(
		cacheAvailableVehicle,
		rng.StartTime.UTC().Format(constant.DateFormat),
		rng.EndTime.UTC().Format(constant.DateFormat),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available vehicles")

		return res, nil
	}

	ids, err := s.repo.AvailableVehicleIDs(ctx, rng.StartTime, rng.EndTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available vehicles")

		return res, fmt.Errorf("failed to get available vehicles: %w", err)
	}

	res.VehicleIDs = ids

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available vehicles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) checkReferences(ctx context.Context, vehicleID, userID int64) error {
	vehicleExists, err := s.vehicleRepo.Exist(ctx, shared.FilterByID(vehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vehicle exists")

		return fmt.Errorf("failed to check if vehicle exists: %w", err)
	}

	if !vehicleExists {
		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   strconv.FormatInt(booking.ID, 10),
		Value: dto.NewBookingEvent(eventType, booking),
	}

	if err := s.kafka.SendMessages(ctx, constant.KafkaTopicBookings, message); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidateListingCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheAvailableVehicle)
}
