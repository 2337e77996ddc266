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
	kafkaMocks "autopark/infras/kafka/mocks"
	"autopark/infras/otel/mocks"
	bookingMocks "autopark/internal/domains/booking/mocks"
	"autopark/internal/domains/booking/model"
	"autopark/internal/domains/booking/model/dto"
	"autopark/internal/domains/booking/service"
	userMocks "autopark/internal/domains/user/mocks"
	vehicleMocks "autopark/internal/domains/vehicle/mocks"
	cacheMocks "autopark/shared/cache/mocks"
	gDto "autopark/shared/dto"
	"autopark/shared/failure"
	gModel "autopark/shared/model"
)

type bookingMockSet struct {
	repo    *bookingMocks.MockBooking
	vehicle *vehicleMocks.MockVehicle
	user    *userMocks.MockUser
	cache   *cacheMocks.MockRedisCache
	kafka   *kafkaMocks.MockClient
}

func newBookingService(t *testing.T, kafkaEnabled bool) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := bookingMockSet{
		repo:    bookingMocks.NewMockBooking(ctrl),
		vehicle: vehicleMocks.NewMockVehicle(ctrl),
		user:    userMocks.NewMockUser(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Enable = kafkaEnabled

	svc := service.New(set.repo, set.vehicle, set.user, cfg, set.cache, mocks.NewOtel(), set.kafka)

	return svc, set
}

func TestBookingService_Create(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	validReq := dto.CreateBookingRequest{
		VehicleID: 1,
		UserID:    2,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
	}

	stored := model.Booking{
		ID:        7,
		VehicleID: 1,
		UserID:    3,
		StartTime: start,
		EndTime:   end,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), int64(1), start, end, int64(0)).
					Return(model.Booking{}, false, nil)
				set.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(10), nil)
				set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(10)).Return(model.BookingWithDetails{
					Booking:            model.Booking{ID: 10, VehicleID: 1, UserID: 2, StartTime: start, EndTime: end},
					VehiclePlateNumber: "AB 1234 CD",
				}, nil)
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "overlapping booking rejected with conflict details",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), int64(1), start, end, int64(0)).
					Return(stored, true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "end equal to start rejected",
			req: dto.CreateBookingRequest{
				VehicleID: 1,
				UserID:    2,
				StartTime: start.Format(time.RFC3339),
				EndTime:   start.Format(time.RFC3339),
			},
			setupMock: func(set bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "end before start rejected",
			req: dto.CreateBookingRequest{
				VehicleID: 1,
				UserID:    2,
				StartTime: end.Format(time.RFC3339),
				EndTime:   start.Format(time.RFC3339),
			},
			setupMock: func(set bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed timestamp rejected",
			req: dto.CreateBookingRequest{
				VehicleID: 1,
				UserID:    2,
				StartTime: "not-a-timestamp",
				EndTime:   end.Format(time.RFC3339),
			},
			setupMock: func(set bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown vehicle rejected",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown user rejected",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), int64(1), start, end, int64(0)).
					Return(model.Booking{}, false, nil)
				set.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t, false)
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
			assert.Equal(t, int64(10), res.ID)
			assert.Equal(t, "AB 1234 CD", res.Vehicle.PlateNumber)
		})
	}
}

func TestBookingService_Create_ConflictDetails(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	svc, set := newBookingService(t, false)

	stored := model.Booking{ID: 42, VehicleID: 1, UserID: 9, StartTime: start, EndTime: end}

	set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	set.repo.EXPECT().
		FindOverlapping(gomock.Any(), int64(1), start, end, int64(0)).
		Return(stored, true, nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		VehicleID: 1,
		UserID:    2,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	details, ok := failure.GetDetails(err).(dto.ConflictingBooking)
	assert.True(t, ok)
	assert.Equal(t, int64(42), details.ID)
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	svc, set := newBookingService(t, true)

	set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	set.repo.EXPECT().
		FindOverlapping(gomock.Any(), int64(1), start, end, int64(0)).
		Return(model.Booking{}, false, nil)
	set.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(10)).Return(model.BookingWithDetails{
		Booking: model.Booking{ID: 10, VehicleID: 1, UserID: 2, StartTime: start, EndTime: end},
	}, nil)
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		VehicleID: 1,
		UserID:    2,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestBookingService_Update(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	newEnd := start.Add(3 * time.Hour)

	existing := model.Booking{
		ID:        5,
		VehicleID: 1,
		UserID:    2,
		StartTime: start,
		EndTime:   end,
		Metadata:  gModel.Metadata{CreatedAt: start, UpdatedAt: start},
	}

	newEndStr := newEnd.Format(time.RFC3339)
	badEndStr := start.Format(time.RFC3339)
	newVehicle := int64(3)
	description := "handover at the north gate"

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update of end time",
			req:  dto.UpdateBookingRequest{EndTime: &newEndStr},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), int64(1), start, newEnd, int64(5)).
					Return(model.Booking{}, false, nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(5)).Return(model.BookingWithDetails{
					Booking: model.Booking{ID: 5, VehicleID: 1, UserID: 2, StartTime: start, EndTime: newEnd},
				}, nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "description only update never conflicts with itself",
			req:  dto.UpdateBookingRequest{Description: &description},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), int64(1), start, end, int64(5)).
					Return(model.Booking{}, false, nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(5)).Return(model.BookingWithDetails{
					Booking: model.Booking{ID: 5, VehicleID: 1, UserID: 2, StartTime: start, EndTime: end, Description: &description},
				}, nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty patch rejected",
			req:       dto.UpdateBookingRequest{},
			setupMock: func(set bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{EndTime: &newEndStr},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "merged interval must stay valid",
			req:  dto.UpdateBookingRequest{EndTime: &badEndStr},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "conflict on the target vehicle",
			req:  dto.UpdateBookingRequest{VehicleID: &newVehicle},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), newVehicle, start, end, int64(5)).
					Return(model.Booking{ID: 9, VehicleID: newVehicle, StartTime: start, EndTime: end}, true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "booking deleted between conflict check and write",
			req:  dto.UpdateBookingRequest{EndTime: &newEndStr},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), int64(1), start, newEnd, int64(5)).
					Return(model.Booking{}, false, nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(5)).Return(model.BookingWithDetails{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "target vehicle must exist",
			req:  dto.UpdateBookingRequest{VehicleID: &newVehicle},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.vehicle.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t, false)
			tt.setupMock(set)

			res, err := svc.Update(context.Background(), tt.req, 5)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(5), res.ID)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	existing := model.Booking{ID: 5, VehicleID: 1, UserID: 2, StartTime: start, EndTime: start.Add(time.Hour)}

	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t, false)
			tt.setupMock(set)

			err := svc.Delete(context.Background(), 5)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(5)).Return(model.BookingWithDetails{
					Booking:     model.Booking{ID: 5, VehicleID: 1, UserID: 2, StartTime: start, EndTime: start.Add(time.Hour)},
					UserName:    "Ivan",
					UserSurname: "Petrov",
				}, nil)
				set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().GetWithDetails(gomock.Any(), int64(5)).Return(model.BookingWithDetails{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t, false)
			tt.setupMock(set)

			res, err := svc.Get(context.Background(), 5)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(5), res.ID)
			assert.Equal(t, "Ivan", res.User.Name)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	svc, set := newBookingService(t, false)

	set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	set.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	set.repo.EXPECT().GetAllWithDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.BookingWithDetails{
		{Booking: model.Booking{ID: 1, VehicleID: 1, UserID: 2, StartTime: start, EndTime: start.Add(time.Hour)}},
		{Booking: model.Booking{ID: 2, VehicleID: 1, UserID: 2, StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour)}},
	}, nil)
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestBookingService_AvailableVehicles(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantIDs   []int64
	}{
		{
			name: "successful availability query",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().AvailableVehicleIDs(gomock.Any(), start, end).Return([]int64{1, 3, 5}, nil)
				set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
			wantIDs: []int64{1, 3, 5},
		},
		{
			name: "no vehicles available",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().AvailableVehicleIDs(gomock.Any(), start, end).Return([]int64{}, nil)
				set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
			wantIDs: []int64{},
		},
		{
			name: "repository error",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().AvailableVehicleIDs(gomock.Any(), start, end).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t, false)
			tt.setupMock(set)

			res, err := svc.AvailableVehicles(context.Background(), dto.AvailabilityRange{StartTime: start, EndTime: end})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantIDs, res.VehicleIDs)
		})
	}
}
