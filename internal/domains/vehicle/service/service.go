package service

import (
	"context"
	"fmt"
	"path"
	"strconv"

	"autopark/config"
	"autopark/infras/otel"
	"autopark/infras/s3"
	"autopark/internal/domains/vehicle/model"
	"autopark/internal/domains/vehicle/model/dto"
	"autopark/internal/domains/vehicle/repository"
	"autopark/shared"
	"autopark/shared/cache"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/failure"
	"autopark/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetVehicle    = "vehicle:get"
	cacheGetAllVehicle = "vehicle:gets"
	cacheCountVehicle  = "vehicle:count"
)

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (dto.VehicleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVehiclesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.VehicleResponse, error)
	Update(ctx context.Context, req dto.UpdateVehicleRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, req dto.UploadVehicleImageRequest) (dto.UploadVehicleImageResponse, error)
	DeleteImage(ctx context.Context, vehicleID, imageID int64) error
}

type serviceImpl struct {
	repo      repository.Vehicle
	imageRepo repository.VehicleImage
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(repo repository.Vehicle, imageRepo repository.VehicleImage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Vehicle {
	return &serviceImpl{
		repo:      repo,
		imageRepo: imageRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	vehicle, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse vehicle request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningID(ctx, vehicle)
	if err != nil {
		log.Error().Err(err).Msg("failed to create vehicle")

		return res, fmt.Errorf("failed to create vehicle: %w", err)
	}

	vehicle.ID = id
	res.FromModel(vehicle)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
		shared.InvalidateCaches(c, s.cache, cacheCountVehicle)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVehiclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVehicle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicles")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return res, fmt.Errorf("failed to count vehicles: %w", err)
	}

	vehicles, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicles")

		return res, fmt.Errorf("failed to get vehicles: %w", err)
	}

	res.FromModels(vehicles, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVehicle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return total, fmt.Errorf("failed to count vehicles: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVehicle, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle")

		return res, nil
	}

	vehicle, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == 0 {
		return res, failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	res.FromModel(vehicle)

	images, err := s.imageRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc},
		shared.FilterByID(id, model.FieldImageVehicle, model.ImageTableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle images")

		return res, fmt.Errorf("failed to get vehicle images: %w", err)
	}

	res.SetImages(images, s.cfg.External.S3.PublicURL)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVehicleRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vehicle exists")

		return fmt.Errorf("failed to check if vehicle exists: %w", err)
	}

	if !exist {
		log.Error().Msg("vehicle not found")

		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	updatedFields, err := req.ToUpdateFields()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse vehicle update request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update vehicle")

		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
		shared.InvalidateCaches(c, s.cache, cacheCountVehicle)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	images, err := s.imageRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldImageVehicle, model.ImageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle images for deletion")

		return fmt.Errorf("failed to get vehicle images: %w", err)
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle")

		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if affected == 0 {
		log.Error().Msg("vehicle not found")

		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
		shared.InvalidateCaches(c, s.cache, cacheCountVehicle)

		bucketName := s.cfg.External.S3.BucketName
		for _, img := range images {
			objectName := path.Base(img.RelativePath)
			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete vehicle image from S3")
			}
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadVehicleImageRequest) (res dto.UploadVehicleImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.VehicleID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vehicle exists")

		return res, fmt.Errorf("failed to check if vehicle exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	displayOrder, err := s.imageRepo.NextDisplayOrder(ctx, req.VehicleID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get next display order")

		return res, fmt.Errorf("failed to get next display order: %w", err)
	}

	image := model.VehicleImage{
		VehicleID:    req.VehicleID,
		RelativePath: path.Join(model.EntityName, fileName),
		DisplayOrder: displayOrder,
	}
	image.CreatedAt = timezone.Now()
	image.UpdatedAt = image.CreatedAt

	id, err := s.imageRepo.InsertReturningID(ctx, image)
	if err != nil {
		log.Error().Err(err).Msg("failed to save vehicle image")

		return res, fmt.Errorf("failed to save vehicle image: %w", err)
	}

	res.ID = id
	res.URL = url
	res.DisplayOrder = displayOrder

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, strconv.FormatInt(req.VehicleID, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle from cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, vehicleID, imageID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldImageID, Value: imageID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
			gDto.Filter{Field: model.FieldImageVehicle, Value: vehicleID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
		},
	}

	image, err := s.imageRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle image")

		return fmt.Errorf("failed to get vehicle image: %w", err)
	}

	if image.ID == 0 {
		return failure.NotFound("vehicle image not found") // nolint:wrapcheck
	}

	if _, err = s.imageRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle image")

		return fmt.Errorf("failed to delete vehicle image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, strconv.FormatInt(vehicleID, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle from cache")
		}

		objectName := path.Base(image.RelativePath)
		if err := s.s3.DeleteFile(c, s.cfg.External.S3.BucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete vehicle image from S3")
		}
	}()

	return nil
}
