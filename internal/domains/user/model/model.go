package model

import (
	"time"

	"autopark/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                      = "id"
	FieldName                    = "name"
	FieldSurname                 = "surname"
	FieldStatus                  = "status"
	FieldGender                  = "gender"
	FieldPosition                = "position"
	FieldDateOfBirth             = "date_of_birth"
	FieldContractTerminationDate = "contract_termination_date"
	FieldEmail                   = "email"
	FieldPhone                   = "phone"
	FieldDrivingLicense          = "driving_license"
	FieldDrivingLicenseExpiry    = "driving_license_expiry"
	FieldDrivingCategories       = "driving_categories"
)

const (
	StatusActive = "Active"
	StatusBanned = "Banned"
)

type User struct {
	ID                      int64          `db:"id"`
	Name                    string         `db:"name"`
	Surname                 string         `db:"surname"`
	Status                  string         `db:"status"`
	Gender                  string         `db:"gender"`
	Position                string         `db:"position"`
	DateOfBirth             *time.Time     `db:"date_of_birth"`
	ContractTerminationDate *time.Time     `db:"contract_termination_date"`
	Email                   *string        `db:"email"`
	Phone                   *string        `db:"phone"`
	DrivingLicense          *string        `db:"driving_license"`
	DrivingLicenseExpiry    *time.Time     `db:"driving_license_expiry"`
	DrivingCategories       pq.StringArray `db:"driving_categories"`
	model.Metadata
}
