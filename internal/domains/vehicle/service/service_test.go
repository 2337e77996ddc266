package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"autopark/config"
	"autopark/infras/otel/mocks"
	s3Mocks "autopark/infras/s3/mocks"
	vehicleMocks "autopark/internal/domains/vehicle/mocks"
	"autopark/internal/domains/vehicle/model"
	"autopark/internal/domains/vehicle/model/dto"
	"autopark/internal/domains/vehicle/service"
	cacheMocks "autopark/shared/cache/mocks"
	"autopark/shared/failure"
)

type vehicleMockSet struct {
	repo      *vehicleMocks.MockVehicle
	imageRepo *vehicleMocks.MockVehicleImage
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
}

func newVehicleService(t *testing.T) (service.Vehicle, vehicleMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := vehicleMockSet{
		repo:      vehicleMocks.NewMockVehicle(ctrl),
		imageRepo: vehicleMocks.NewMockVehicleImage(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "autopark"
	cfg.External.S3.PublicURL = "https://cdn.example.com"

	svc := service.New(set.repo, set.imageRepo, cfg, set.cache, mocks.NewOtel(), set.s3)

	return svc, set
}

func TestVehicleService_Create(t *testing.T) {
	validReq := dto.CreateVehicleRequest{
		PlateNumber:      "AB 1234 CD",
		ModelName:        "Sprinter 316",
		Type:             model.TypeVan,
		YearOfProduction: 2019,
		Vin:              "WDB9066331S123456",
		CurrentMileage:   154000,
	}

	badDate := "2019-13-45"

	tests := []struct {
		name      string
		req       dto.CreateVehicleRequest
		setupMock func(set vehicleMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "malformed date rejected",
			req: dto.CreateVehicleRequest{
				PlateNumber:      "AB 1234 CD",
				ModelName:        "Sprinter 316",
				Type:             model.TypeVan,
				YearOfProduction: 2019,
				Vin:              "WDB9066331S123456",
				InsuranceExpiry:  &badDate,
			},
			setupMock: func(set vehicleMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newVehicleService(t)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(3), res.ID)
			assert.Equal(t, "AB 1234 CD", res.PlateNumber)
		})
	}
}

func TestVehicleService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set vehicleMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(set vehicleMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful get with images",
			setupMock: func(set vehicleMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Vehicle{ID: 3, PlateNumber: "AB 1234 CD"}, nil)
				set.imageRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.VehicleImage{
					{ID: 1, VehicleID: 3, RelativePath: "vehicle/a.jpg", DisplayOrder: 0},
				}, nil)
				set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			setupMock: func(set vehicleMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Vehicle{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newVehicleService(t)
			tt.setupMock(set)

			_, err := svc.Get(context.Background(), 3)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVehicleService_Update(t *testing.T) {
	mileage := 160000

	tests := []struct {
		name      string
		req       dto.UpdateVehicleRequest
		setupMock func(set vehicleMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateVehicleRequest{CurrentMileage: &mileage},
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty patch rejected",
			req:       dto.UpdateVehicleRequest{},
			setupMock: func(set vehicleMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "vehicle not found",
			req:  dto.UpdateVehicleRequest{CurrentMileage: &mileage},
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newVehicleService(t)
			tt.setupMock(set)

			err := svc.Update(context.Background(), tt.req, 3)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVehicleService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set vehicleMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete removes stored images",
			setupMock: func(set vehicleMockSet) {
				set.imageRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.VehicleImage{
					{ID: 1, VehicleID: 3, RelativePath: "vehicle/a.jpg"},
				}, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.s3.EXPECT().DeleteFile(gomock.Any(), "autopark", model.EntityName, "a.jpg").Return(nil)
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			setupMock: func(set vehicleMockSet) {
				set.imageRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.VehicleImage{}, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newVehicleService(t)
			tt.setupMock(set)

			err := svc.Delete(context.Background(), 3)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVehicleService_UploadImage(t *testing.T) {
	req := dto.UploadVehicleImageRequest{
		VehicleID: 3,
		Image:     &multipart.FileHeader{Filename: "photo.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func(set vehicleMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful upload",
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.s3.EXPECT().
					UploadFile(gomock.Any(), "autopark", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/vehicle/photo.jpg", nil)
				set.imageRepo.EXPECT().NextDisplayOrder(gomock.Any(), int64(3)).Return(2, nil)
				set.imageRepo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(7), nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "upload failure",
			setupMock: func(set vehicleMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.s3.EXPECT().
					UploadFile(gomock.Any(), "autopark", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("storage unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newVehicleService(t)
			tt.setupMock(set)

			res, err := svc.UploadImage(context.Background(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(7), res.ID)
			assert.Equal(t, 2, res.DisplayOrder)
		})
	}
}

func TestVehicleService_DeleteImage(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set vehicleMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(set vehicleMockSet) {
				set.imageRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VehicleImage{
					ID: 7, VehicleID: 3, RelativePath: "vehicle/photo.jpg",
				}, nil)
				set.imageRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.s3.EXPECT().DeleteFile(gomock.Any(), "autopark", model.EntityName, "photo.jpg").Return(nil)
			},
			wantErr: false,
		},
		{
			name: "image not found",
			setupMock: func(set vehicleMockSet) {
				set.imageRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VehicleImage{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newVehicleService(t)
			tt.setupMock(set)

			err := svc.DeleteImage(context.Background(), 3, 7)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
