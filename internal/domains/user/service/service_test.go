package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"autopark/config"
	"autopark/infras/otel/mocks"
	s3Mocks "autopark/infras/s3/mocks"
	userMocks "autopark/internal/domains/user/mocks"
	"autopark/internal/domains/user/model"
	"autopark/internal/domains/user/model/dto"
	"autopark/internal/domains/user/service"
	cacheMocks "autopark/shared/cache/mocks"
	"autopark/shared/failure"
)

type userMockSet struct {
	repo      *userMocks.MockUser
	imageRepo *userMocks.MockUserImage
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
}

func newUserService(t *testing.T) (service.User, userMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := userMockSet{
		repo:      userMocks.NewMockUser(ctrl),
		imageRepo: userMocks.NewMockUserImage(ctrl),
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

func TestUserService_Create(t *testing.T) {
	validReq := dto.CreateUserRequest{
		Name:              "Ivan",
		Surname:           "Petrov",
		Gender:            "Male",
		Position:          "Driver",
		DrivingCategories: []string{"B", "C"},
	}

	badDate := "1990-42-99"

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(set userMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation defaults status to active",
			req:  validReq,
			setupMock: func(set userMockSet) {
				set.repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) (int64, error) {
						assert.Equal(t, model.StatusActive, user.Status)

						return 4, nil
					})
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "malformed date rejected",
			req: dto.CreateUserRequest{
				Name:        "Ivan",
				Surname:     "Petrov",
				Gender:      "Male",
				Position:    "Driver",
				DateOfBirth: &badDate,
			},
			setupMock: func(set userMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(set userMockSet) {
				set.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newUserService(t)
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
			assert.Equal(t, int64(4), res.ID)
			assert.Equal(t, "Ivan", res.Name)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set userMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			setupMock: func(set userMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: 4, Name: "Ivan", Surname: "Petrov"}, nil)
				set.imageRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.UserImage{}, nil)
				set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "user not found",
			setupMock: func(set userMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newUserService(t)
			tt.setupMock(set)

			res, err := svc.Get(context.Background(), 4)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	banned := model.StatusBanned
	categories := []string{"B", "BE"}

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(set userMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful status update",
			req:  dto.UpdateUserRequest{Status: &banned},
			setupMock: func(set userMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "driving categories update",
			req:  dto.UpdateUserRequest{DrivingCategories: categories},
			setupMock: func(set userMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty patch rejected",
			req:       dto.UpdateUserRequest{},
			setupMock: func(set userMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{Status: &banned},
			setupMock: func(set userMockSet) {
				set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newUserService(t)
			tt.setupMock(set)

			err := svc.Update(context.Background(), tt.req, 4)

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

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set userMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(set userMockSet) {
				set.imageRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.UserImage{}, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "user not found",
			setupMock: func(set userMockSet) {
				set.imageRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.UserImage{}, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newUserService(t)
			tt.setupMock(set)

			err := svc.Delete(context.Background(), 4)

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
