package model

import (
	"time"

	"autopark/shared/model"
)

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID                       = "id"
	FieldPlateNumber              = "plate_number"
	FieldModelName                = "model_name"
	FieldType                     = "type"
	FieldYearOfProduction         = "year_of_production"
	FieldVin                      = "vin"
	FieldCurrentMileage           = "current_mileage"
	FieldColor                    = "color"
	FieldEngine                   = "engine"
	FieldFuelType                 = "fuel_type"
	FieldPayload                  = "payload"
	FieldSeats                    = "seats"
	FieldFullMass                 = "full_mass"
	FieldVehiclePassport          = "vehicle_passport"
	FieldVehiclePassportIssued    = "vehicle_passport_issued"
	FieldInsurance                = "insurance"
	FieldInsuranceExpiry          = "insurance_expiry"
	FieldNextServiceAtMileage     = "next_service_at_mileage"
	FieldNextServiceTillDate      = "next_service_till_date"
	FieldStateInspectionExpiresAt = "state_inspection_expires_at"
)

const (
	TypePassengerCar = "PC"
	TypePassengerVan = "Pass Van"
	TypeVan          = "Van"
	TypeCommercial   = "CV"
	TypeBus          = "Bus"

	FuelTypePetrol = "Petrol"
	FuelTypeGas    = "Gas"
	FuelTypeDiesel = "Diesel"
)

type Vehicle struct {
	ID                       int64      `db:"id"`
	PlateNumber              string     `db:"plate_number"`
	ModelName                string     `db:"model_name"`
	Type                     string     `db:"type"`
	YearOfProduction         int        `db:"year_of_production"`
	Vin                      string     `db:"vin"`
	CurrentMileage           int        `db:"current_mileage"`
	Color                    *string    `db:"color"`
	Engine                   *string    `db:"engine"`
	FuelType                 *string    `db:"fuel_type"`
	Payload                  *int       `db:"payload"`
	Seats                    *int       `db:"seats"`
	FullMass                 *int       `db:"full_mass"`
	VehiclePassport          *string    `db:"vehicle_passport"`
	VehiclePassportIssued    *time.Time `db:"vehicle_passport_issued"`
	Insurance                *string    `db:"insurance"`
	InsuranceExpiry          *time.Time `db:"insurance_expiry"`
	NextServiceAtMileage     *int       `db:"next_service_at_mileage"`
	NextServiceTillDate      *time.Time `db:"next_service_till_date"`
	StateInspectionExpiresAt *time.Time `db:"state_inspection_expires_at"`
	model.Metadata
}
