package repository

//go:generate go run go.uber.org/mock/mockgen -source=./image.go -destination=../mocks/image_repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"autopark/infras/otel"
	"autopark/infras/postgres"
	"autopark/internal/domains/user/model"
	"autopark/shared/constant"
	gDto "autopark/shared/dto"
	"autopark/shared/logger"
	gRepo "autopark/shared/repository"
)

type UserImage interface {
	InsertReturningID(ctx context.Context, model model.UserImage) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UserImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.UserImage, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	NextDisplayOrder(ctx context.Context, userID int64) (int, error)
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.UserImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) UserImage {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.UserImage](model.ImageEntityName, model.ImageTableName, model.FieldImageID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextDisplayOrder returns the display order the next image of the user
// should take, one past the current maximum.
func (repo *imageRepositoryImpl) NextDisplayOrder(ctx context.Context, userID int64) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user_image.NextDisplayOrder")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(%s), -1) + 1 FROM %s WHERE %s = $1",
		model.FieldDisplayOrder,
		model.ImageTableName,
		model.FieldImageUser,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var next int

	err := repo.db.Read.GetContext(ctx, &next, query, userID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get next display order (%s): %w", model.ImageEntityName, err)
	}

	return next, nil
}
