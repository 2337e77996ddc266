package booking

import (
	"net/http"
	"strconv"

	"autopark/infras/otel"
	"autopark/internal/domains/booking/model"
	"autopark/internal/domains/booking/model/dto"
	"autopark/internal/domains/booking/service"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/failure"
	"autopark/shared/timezone"
	"autopark/shared/validator"
	"autopark/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/available-vehicles", handler.GetAvailableVehicles)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new vehicle booking, rejecting intervals that overlap an existing booking of the same vehicle.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Overlapping booking, includes the conflicting booking"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination. The startDate/endDate pair matches every booking whose interval intersects the range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param vehicleId query string false "Filter by vehicle ID"
// @Param userId query string false "Filter by user ID"
// @Param status query string false "Filter by status (InWork, Service)"
// @Param startDate query string false "Range start (RFC3339)"
// @Param endDate query string false "Range end (RFC3339)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if vehicleID := r.URL.Query().Get(constant.RequestParamVehicleID); vehicleID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVehicleID,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleID,
			Table:    model.TableName,
		})
	}

	if userID := r.URL.Query().Get(constant.RequestParamUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	// A booking intersects [startDate, endDate) when it ends after the range
	// starts and starts before the range ends.
	if startDate := r.URL.Query().Get(constant.RequestParamStartDate); startDate != "" {
		start, err := timezone.Parse(constant.DateFormat, startDate)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse startDate")

			response.WithError(w, failure.BadRequestFromString("startDate must be a valid RFC3339 timestamp"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEndTime,
			Operator: gDto.FilterOperatorGreater,
			Value:    start,
			Table:    model.TableName,
		})
	}

	if endDate := r.URL.Query().Get(constant.RequestParamEndDate); endDate != "" {
		end, err := timezone.Parse(constant.DateFormat, endDate)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse endDate")

			response.WithError(w, failure.BadRequestFromString("endDate must be a valid RFC3339 timestamp"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorLess,
			Value:    end,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetAvailableVehicles lists the vehicles with no booking in the given range.
// @Summary Get available vehicles
// @Description Retrieve the ids of every vehicle that has zero bookings overlapping the [startDate, endDate) range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param startDate query string true "Range start (RFC3339)"
// @Param endDate query string true "Range end (RFC3339)"
// @Success 200 {object} response.Data[dto.AvailableVehiclesResponse] "Available vehicle ids"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/available-vehicles [get]
func (handler *Handler) GetAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableVehicles")
	defer scope.End()

	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	if startDate == "" || endDate == "" {
		response.WithError(w, failure.BadRequestFromString("startDate and endDate are required"))

		return
	}

	start, err := timezone.Parse(constant.DateFormat, startDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse startDate")

		response.WithError(w, failure.BadRequestFromString("startDate must be a valid RFC3339 timestamp"))

		return
	}

	end, err := timezone.Parse(constant.DateFormat, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse endDate")

		response.WithError(w, failure.BadRequestFromString("endDate must be a valid RFC3339 timestamp"))

		return
	}

	vehicles, err := handler.service.AvailableVehicles(ctx, dto.AvailabilityRange{StartTime: start, EndTime: end})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available vehicles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available vehicles retrieved successfully")

	response.WithJSON(w, http.StatusOK, vehicles)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking with its vehicle and user summaries.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Update the supplied fields of an existing booking. The merged time window is re-validated against the overlap invariant, excluding the booking itself.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Overlapping booking, includes the conflicting booking"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Delete a booking using its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 204 "Booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithNoContent(w)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("id must be an integer") // nolint:wrapcheck
	}

	return id, nil
}
