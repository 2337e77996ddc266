package dto

import (
	"time"

	"autopark/internal/domains/vehicle/model"
	"autopark/shared"
	gDto "autopark/shared/dto"
	gModel "autopark/shared/model"
	"autopark/shared/timezone"
)

const dateLayout = "2006-01-02"

type CreateVehicleRequest struct {
	PlateNumber              string  `json:"plateNumber"              validate:"required,max=20"`
	ModelName                string  `json:"modelName"                validate:"required,max=100"`
	Type                     string  `json:"type"                     validate:"required,oneof='PC' 'Pass Van' 'Van' 'CV' 'Bus'"`
	YearOfProduction         int     `json:"yearOfProduction"         validate:"required,gte=1900,lte=2100"`
	Vin                      string  `json:"vin"                      validate:"required,max=17"`
	CurrentMileage           int     `json:"currentMileage"           validate:"gte=0"`
	Color                    *string `json:"color"                    validate:"omitempty,max=50"`
	Engine                   *string `json:"engine"                   validate:"omitempty,max=100"`
	FuelType                 *string `json:"fuelType"                 validate:"omitempty,oneof=Petrol Gas Diesel"`
	Payload                  *int    `json:"payload"                  validate:"omitempty,gte=0"`
	Seats                    *int    `json:"seats"                    validate:"omitempty,gte=0"`
	FullMass                 *int    `json:"fullMass"                 validate:"omitempty,gte=0"`
	VehiclePassport          *string `json:"vehiclePassport"          validate:"omitempty,max=100"`
	VehiclePassportIssued    *string `json:"vehiclePassportIssued"    validate:"omitempty"`
	Insurance                *string `json:"insurance"                validate:"omitempty,max=100"`
	InsuranceExpiry          *string `json:"insuranceExpiry"          validate:"omitempty"`
	NextServiceAtMileage     *int    `json:"nextServiceAtMileage"     validate:"omitempty,gte=0"`
	NextServiceTillDate      *string `json:"nextServiceTillDate"      validate:"omitempty"`
	StateInspectionExpiresAt *string `json:"stateInspectionExpiresAt" validate:"omitempty"`
}

func (c *CreateVehicleRequest) ToModel() (model.Vehicle, error) {
	passportIssued, err := parseOptionalDate(c.VehiclePassportIssued)
	if err != nil {
		return model.Vehicle{}, err
	}

	insuranceExpiry, err := parseOptionalDate(c.InsuranceExpiry)
	if err != nil {
		return model.Vehicle{}, err
	}

	nextServiceTillDate, err := parseOptionalDate(c.NextServiceTillDate)
	if err != nil {
		return model.Vehicle{}, err
	}

	stateInspectionExpiresAt, err := parseOptionalDate(c.StateInspectionExpiresAt)
	if err != nil {
		return model.Vehicle{}, err
	}

	return model.Vehicle{
		PlateNumber:              c.PlateNumber,
		ModelName:                c.ModelName,
		Type:                     c.Type,
		YearOfProduction:         c.YearOfProduction,
		Vin:                      c.Vin,
		CurrentMileage:           c.CurrentMileage,
		Color:                    c.Color,
		Engine:                   c.Engine,
		FuelType:                 c.FuelType,
		Payload:                  c.Payload,
		Seats:                    c.Seats,
		FullMass:                 c.FullMass,
		VehiclePassport:          c.VehiclePassport,
		VehiclePassportIssued:    passportIssued,
		Insurance:                c.Insurance,
		InsuranceExpiry:          insuranceExpiry,
		NextServiceAtMileage:     c.NextServiceAtMileage,
		NextServiceTillDate:      nextServiceTillDate,
		StateInspectionExpiresAt: stateInspectionExpiresAt,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type UpdateVehicleRequest struct {
	PlateNumber              *string `db:"plate_number"            json:"plateNumber"              validate:"omitempty,max=20"`
	ModelName                *string `db:"model_name"              json:"modelName"                validate:"omitempty,max=100"`
	Type                     *string `db:"type"                    json:"type"                     validate:"omitempty,oneof='PC' 'Pass Van' 'Van' 'CV' 'Bus'"`
	YearOfProduction         *int    `db:"year_of_production"      json:"yearOfProduction"         validate:"omitempty,gte=1900,lte=2100"`
	Vin                      *string `db:"vin"                     json:"vin"                      validate:"omitempty,max=17"`
	CurrentMileage           *int    `db:"current_mileage"         json:"currentMileage"           validate:"omitempty,gte=0"`
	Color                    *string `db:"color"                   json:"color"                    validate:"omitempty,max=50"`
	Engine                   *string `db:"engine"                  json:"engine"                   validate:"omitempty,max=100"`
	FuelType                 *string `db:"fuel_type"               json:"fuelType"                 validate:"omitempty,oneof=Petrol Gas Diesel"`
	Payload                  *int    `db:"payload"                 json:"payload"                  validate:"omitempty,gte=0"`
	Seats                    *int    `db:"seats"                   json:"seats"                    validate:"omitempty,gte=0"`
	FullMass                 *int    `db:"full_mass"               json:"fullMass"                 validate:"omitempty,gte=0"`
	VehiclePassport          *string `db:"vehicle_passport"        json:"vehiclePassport"          validate:"omitempty,max=100"`
	VehiclePassportIssued    *string `json:"vehiclePassportIssued"    validate:"omitempty"`
	Insurance                *string `db:"insurance"               json:"insurance"                validate:"omitempty,max=100"`
	InsuranceExpiry          *string `json:"insuranceExpiry"          validate:"omitempty"`
	NextServiceAtMileage     *int    `db:"next_service_at_mileage" json:"nextServiceAtMileage"     validate:"omitempty,gte=0"`
	NextServiceTillDate      *string `json:"nextServiceTillDate"      validate:"omitempty"`
	StateInspectionExpiresAt *string `json:"stateInspectionExpiresAt" validate:"omitempty"`
}

// IsEmpty reports whether the request carries no fields to update.
func (u *UpdateVehicleRequest) IsEmpty() bool {
	return *u == (UpdateVehicleRequest{})
}

// ToUpdateFields builds the column update map, parsing date fields that cannot
// flow through the db tags directly.
func (u *UpdateVehicleRequest) ToUpdateFields() (map[string]any, error) {
	fields := shared.TransformFields(*u)

	dates := map[string]*string{
		model.FieldVehiclePassportIssued:    u.VehiclePassportIssued,
		model.FieldInsuranceExpiry:          u.InsuranceExpiry,
		model.FieldNextServiceTillDate:      u.NextServiceTillDate,
		model.FieldStateInspectionExpiresAt: u.StateInspectionExpiresAt,
	}

	for field, value := range dates {
		parsed, err := parseOptionalDate(value)
		if err != nil {
			return nil, err
		}

		if parsed != nil {
			fields[field] = *parsed
		}
	}

	return fields, nil
}

type VehicleImageResponse struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"displayOrder"`
}

func (r *VehicleImageResponse) FromModel(mod model.VehicleImage, baseURL string) {
	r.ID = mod.ID
	r.URL = baseURL + "/" + mod.RelativePath
	r.DisplayOrder = mod.DisplayOrder
}

type VehicleResponse struct {
	ID                       int64                  `json:"id"`
	PlateNumber              string                 `json:"plateNumber"`
	ModelName                string                 `json:"modelName"`
	Type                     string                 `json:"type"`
	YearOfProduction         int                    `json:"yearOfProduction"`
	Vin                      string                 `json:"vin"`
	CurrentMileage           int                    `json:"currentMileage"`
	Color                    *string                `json:"color"`
	Engine                   *string                `json:"engine"`
	FuelType                 *string                `json:"fuelType"`
	Payload                  *int                   `json:"payload"`
	Seats                    *int                   `json:"seats"`
	FullMass                 *int                   `json:"fullMass"`
	VehiclePassport          *string                `json:"vehiclePassport"`
	VehiclePassportIssued    *string                `json:"vehiclePassportIssued"`
	Insurance                *string                `json:"insurance"`
	InsuranceExpiry          *string                `json:"insuranceExpiry"`
	NextServiceAtMileage     *int                   `json:"nextServiceAtMileage"`
	NextServiceTillDate      *string                `json:"nextServiceTillDate"`
	StateInspectionExpiresAt *string                `json:"stateInspectionExpiresAt"`
	Images                   []VehicleImageResponse `json:"images,omitempty"`
	gDto.Metadata
}

func (r *VehicleResponse) FromModel(mod model.Vehicle) {
	r.ID = mod.ID
	r.PlateNumber = mod.PlateNumber
	r.ModelName = mod.ModelName
	r.Type = mod.Type
	r.YearOfProduction = mod.YearOfProduction
	r.Vin = mod.Vin
	r.CurrentMileage = mod.CurrentMileage
	r.Color = mod.Color
	r.Engine = mod.Engine
	r.FuelType = mod.FuelType
	r.Payload = mod.Payload
	r.Seats = mod.Seats
	r.FullMass = mod.FullMass
	r.VehiclePassport = mod.VehiclePassport
	r.VehiclePassportIssued = formatOptionalDate(mod.VehiclePassportIssued)
	r.Insurance = mod.Insurance
	r.InsuranceExpiry = formatOptionalDate(mod.InsuranceExpiry)
	r.NextServiceAtMileage = mod.NextServiceAtMileage
	r.NextServiceTillDate = formatOptionalDate(mod.NextServiceTillDate)
	r.StateInspectionExpiresAt = formatOptionalDate(mod.StateInspectionExpiresAt)
	r.Metadata.FromModel(mod.Metadata)
}

func (r *VehicleResponse) SetImages(images []model.VehicleImage, baseURL string) {
	r.Images = make([]VehicleImageResponse, len(images))
	for i, img := range images {
		r.Images[i].FromModel(img, baseURL)
	}
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetVehiclesResponse) FromModels(models []model.Vehicle, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehicles = make([]VehicleResponse, len(models))
	for i, mod := range models {
		r.Vehicles[i].FromModel(mod)
	}
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.Parse(dateLayout, *value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}

func formatOptionalDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := timezone.Format(*value, dateLayout)

	return &formatted
}
