package repository

//go:generate go run go.uber.org/mock/mockgen -source=./image.go -destination=../mocks/image_repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"autopark/infras/otel"
	"autopark/infras/postgres"
	"autopark/internal/domains/vehicle/model"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/logger"
	gRepo "autopark/shared/repository"
)

type VehicleImage interface {
	InsertReturningID(ctx context.Context, model model.VehicleImage) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VehicleImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VehicleImage, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	NextDisplayOrder(ctx context.Context, vehicleID int64) (int, error)
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.VehicleImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) VehicleImage {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.VehicleImage](model.ImageEntityName, model.ImageTableName, model.FieldImageID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextDisplayOrder returns the display order the next image of the vehicle
// should take, one past the current maximum.
func (repo *imageRepositoryImpl) NextDisplayOrder(ctx context.Context, vehicleID int64) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehicle_image.NextDisplayOrder")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(%s), -1) + 1 FROM %s WHERE %s = $1",
		model.FieldDisplayOrder,
		model.ImageTableName,
		model.FieldImageVehicle,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var next int

	err := repo.db.Read.GetContext(ctx, &next, query, vehicleID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get next display order (%s): %w", model.ImageEntityName, err)
	}

	return next, nil
}
