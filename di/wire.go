//go:build wireinject
// +build wireinject

package di

import (
	"autopark/config"
	"autopark/infras/kafka"
	"autopark/infras/otel"
	"autopark/infras/postgres"
	"autopark/infras/redis"
	"autopark/infras/s3"
	bookingHandler "autopark/internal/handlers/booking"
	userHandler "autopark/internal/handlers/user"
	vehicleHandler "autopark/internal/handlers/vehicle"
	"autopark/shared/cache"
	"autopark/transport/http"
	"autopark/transport/http/middleware"
	"autopark/transport/http/router"

	bookingRepository "autopark/internal/domains/booking/repository"
	bookingService "autopark/internal/domains/booking/service"
	userRepository "autopark/internal/domains/user/repository"
	userService "autopark/internal/domains/user/service"
	vehicleRepository "autopark/internal/domains/vehicle/repository"
	vehicleService "autopark/internal/domains/vehicle/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleRepository.NewImage,
	vehicleService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewImage,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	vehicleDomain,
	userDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	vehicleHandler.New,
	userHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
