package vehicle

import (
	"net/http"
	"strconv"

	"autopark/infras/otel"
	"autopark/internal/domains/vehicle/model"
	"autopark/internal/domains/vehicle/model/dto"
	"autopark/internal/domains/vehicle/service"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/failure"
	"autopark/shared/validator"
	"autopark/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehicles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVehicle)
		routerGroup.Get("/", handler.GetVehicles)
		routerGroup.Get("/{id}", handler.GetVehicleByID)
		routerGroup.Put("/{id}", handler.UpdateVehicle)
		routerGroup.Delete("/{id}", handler.DeleteVehicle)
		routerGroup.Post("/{id}/images", handler.UploadImage)
		routerGroup.Delete("/{id}/images/{imageId}", handler.DeleteImage)
	})
}

// CreateVehicle handles the creation of a new vehicle.
// @Summary Create a new vehicle
// @Description Create a new vehicle with the provided details.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} response.Data[dto.VehicleResponse] "Created vehicle"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles [post]
func (handler *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicle")
	defer scope.End()

	req := dto.CreateVehicleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	vehicle, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle created successfully")

	response.WithJSON(w, http.StatusCreated, vehicle)
}

// GetVehicles retrieves all vehicles based on query parameters.
// @Summary Get all vehicles
// @Description Retrieve all vehicles with optional substring search and pagination.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Substring search over plate number, model name and type"
// @Param type query string false "Filter by vehicle type"
// @Success 200 {object} response.Data[dto.GetVehiclesResponse] "List of vehicles"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles [get]
func (handler *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldPlateNumber, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName, ArgName: "search_plate_number"},
				gDto.Filter{Field: model.FieldModelName, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName, ArgName: "search_model_name"},
				gDto.Filter{Field: model.FieldType, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName, ArgName: "search_type"},
			},
		})
	}

	if vehicleType := r.URL.Query().Get(model.FieldType); vehicleType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleType,
			Table:    model.TableName,
		})
	}

	vehicles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicles retrieved successfully")

	response.WithJSON(w, http.StatusOK, vehicles)
}

// GetVehicleByID retrieves a vehicle by its ID.
// @Summary Get a vehicle by ID
// @Description Retrieve a vehicle and its images by its unique identifier.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Data[dto.VehicleResponse] "Vehicle details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id} [get]
func (handler *Handler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleByID")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	vehicle, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle retrieved successfully")

	response.WithJSON(w, http.StatusOK, vehicle)
}

// UpdateVehicle updates an existing vehicle by its ID.
// @Summary Update a vehicle by ID
// @Description Update the supplied fields of an existing vehicle.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Update Vehicle Request"
// @Success 200 {object} response.Message "Vehicle updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id} [put]
func (handler *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicle")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateVehicleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle updated successfully")

	response.WithMessage(w, http.StatusOK, "Vehicle updated successfully")
}

// DeleteVehicle deletes a vehicle by its ID.
// @Summary Delete a vehicle by ID
// @Description Delete a vehicle, its bookings and its stored images.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 204 "Vehicle deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id} [delete]
func (handler *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVehicle")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle deleted successfully")

	response.WithNoContent(w)
}

// UploadImage handles a vehicle image upload to S3.
// @Summary Upload a vehicle image
// @Description Upload an image file for the vehicle and append it to the display order.
// @Tags Vehicle
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param file formData file true "Image file to upload"
// @Success 201 {object} response.Data[dto.UploadVehicleImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id}/images [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadVehicleImageRequest{
		VehicleID: id,
		ImageFile: file,
		Image:     fileHeader,
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload vehicle image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle image uploaded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteImage deletes a vehicle image.
// @Summary Delete a vehicle image
// @Description Delete a vehicle image from storage and remove its metadata.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param imageId path int true "Image ID"
// @Success 204 "Image deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id}/images/{imageId} [delete]
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	imageID, err := parseID(r, constant.RequestParamImageID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImage(ctx, id, imageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete vehicle image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle image deleted successfully")

	response.WithNoContent(w)
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString(param + " must be an integer") // nolint:wrapcheck
	}

	return id, nil
}
