package dto

import (
	"mime/multipart"
	"time"

	"autopark/internal/domains/user/model"
	"autopark/shared"
	gDto "autopark/shared/dto"
	gModel "autopark/shared/model"
	"autopark/shared/timezone"

	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

type CreateUserRequest struct {
	Name                    string   `json:"name"                    validate:"required,max=100"`
	Surname                 string   `json:"surname"                 validate:"required,max=100"`
	Status                  string   `json:"status"                  validate:"omitempty,oneof=Active Banned"`
	Gender                  string   `json:"gender"                  validate:"required,oneof=Male Female"`
	Position                string   `json:"position"                validate:"required,oneof='Sale' 'Merchandiser' 'Driver' 'House Master' 'Logistic' 'Courier'"`
	DateOfBirth             *string  `json:"dateOfBirth"             validate:"omitempty"`
	ContractTerminationDate *string  `json:"contractTerminationDate" validate:"omitempty"`
	Email                   *string  `json:"email"                   validate:"omitempty,email,max=100"`
	Phone                   *string  `json:"phone"                   validate:"omitempty,max=20"`
	DrivingLicense          *string  `json:"drivingLicense"          validate:"omitempty,max=50"`
	DrivingLicenseExpiry    *string  `json:"drivingLicenseExpiry"    validate:"omitempty"`
	DrivingCategories       []string `json:"drivingCategories"       validate:"omitempty,dive,oneof=AM A A1 B C D BE CE DE"`
}

func (c *CreateUserRequest) ToModel() (model.User, error) {
	dateOfBirth, err := parseOptionalDate(c.DateOfBirth)
	if err != nil {
		return model.User{}, err
	}

	contractTerminationDate, err := parseOptionalDate(c.ContractTerminationDate)
	if err != nil {
		return model.User{}, err
	}

	drivingLicenseExpiry, err := parseOptionalDate(c.DrivingLicenseExpiry)
	if err != nil {
		return model.User{}, err
	}

	status := model.StatusActive
	if c.Status != "" {
		status = c.Status
	}

	return model.User{
		Name:                    c.Name,
		Surname:                 c.Surname,
		Status:                  status,
		Gender:                  c.Gender,
		Position:                c.Position,
		DateOfBirth:             dateOfBirth,
		ContractTerminationDate: contractTerminationDate,
		Email:                   c.Email,
		Phone:                   c.Phone,
		DrivingLicense:          c.DrivingLicense,
		DrivingLicenseExpiry:    drivingLicenseExpiry,
		DrivingCategories:       pq.StringArray(c.DrivingCategories),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type UpdateUserRequest struct {
	Name                    *string  `db:"name"            json:"name"                    validate:"omitempty,max=100"`
	Surname                 *string  `db:"surname"         json:"surname"                 validate:"omitempty,max=100"`
	Status                  *string  `db:"status"          json:"status"                  validate:"omitempty,oneof=Active Banned"`
	Gender                  *string  `db:"gender"          json:"gender"                  validate:"omitempty,oneof=Male Female"`
	Position                *string  `db:"position"        json:"position"                validate:"omitempty,oneof='Sale' 'Merchandiser' 'Driver' 'House Master' 'Logistic' 'Courier'"`
	DateOfBirth             *string  `json:"dateOfBirth"             validate:"omitempty"`
	ContractTerminationDate *string  `json:"contractTerminationDate" validate:"omitempty"`
	Email                   *string  `db:"email"           json:"email"                   validate:"omitempty,email,max=100"`
	Phone                   *string  `db:"phone"           json:"phone"                   validate:"omitempty,max=20"`
	DrivingLicense          *string  `db:"driving_license" json:"drivingLicense"          validate:"omitempty,max=50"`
	DrivingLicenseExpiry    *string  `json:"drivingLicenseExpiry"    validate:"omitempty"`
	DrivingCategories       []string `json:"drivingCategories"       validate:"omitempty,dive,oneof=AM A A1 B C D BE CE DE"`
}

// IsEmpty reports whether the request carries no fields to update.
func (u *UpdateUserRequest) IsEmpty() bool {
	return u.Name == nil && u.Surname == nil && u.Status == nil && u.Gender == nil &&
		u.Position == nil && u.DateOfBirth == nil && u.ContractTerminationDate == nil &&
		u.Email == nil && u.Phone == nil && u.DrivingLicense == nil &&
		u.DrivingLicenseExpiry == nil && u.DrivingCategories == nil
}

// ToUpdateFields builds the column update map, parsing date fields and the
// driving categories array that cannot flow through the db tags directly.
func (u *UpdateUserRequest) ToUpdateFields() (map[string]any, error) {
	fields := shared.TransformFields(*u)

	dates := map[string]*string{
		model.FieldDateOfBirth:             u.DateOfBirth,
		model.FieldContractTerminationDate: u.ContractTerminationDate,
		model.FieldDrivingLicenseExpiry:    u.DrivingLicenseExpiry,
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

	if u.DrivingCategories != nil {
		fields[model.FieldDrivingCategories] = pq.StringArray(u.DrivingCategories)
	}

	return fields, nil
}

type UserImageResponse struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"displayOrder"`
}

func (r *UserImageResponse) FromModel(mod model.UserImage, baseURL string) {
	r.ID = mod.ID
	r.URL = baseURL + "/" + mod.RelativePath
	r.DisplayOrder = mod.DisplayOrder
}

type UserResponse struct {
	ID                      int64               `json:"id"`
	Name                    string              `json:"name"`
	Surname                 string              `json:"surname"`
	Status                  string              `json:"status"`
	Gender                  string              `json:"gender"`
	Position                string              `json:"position"`
	DateOfBirth             *string             `json:"dateOfBirth"`
	ContractTerminationDate *string             `json:"contractTerminationDate"`
	Email                   *string             `json:"email"`
	Phone                   *string             `json:"phone"`
	DrivingLicense          *string             `json:"drivingLicense"`
	DrivingLicenseExpiry    *string             `json:"drivingLicenseExpiry"`
	DrivingCategories       []string            `json:"drivingCategories"`
	Images                  []UserImageResponse `json:"images,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Surname = mod.Surname
	r.Status = mod.Status
	r.Gender = mod.Gender
	r.Position = mod.Position
	r.DateOfBirth = formatOptionalDate(mod.DateOfBirth)
	r.ContractTerminationDate = formatOptionalDate(mod.ContractTerminationDate)
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.DrivingLicense = mod.DrivingLicense
	r.DrivingLicenseExpiry = formatOptionalDate(mod.DrivingLicenseExpiry)
	r.DrivingCategories = []string(mod.DrivingCategories)
	r.Metadata.FromModel(mod.Metadata)
}

func (r *UserResponse) SetImages(images []model.UserImage, baseURL string) {
	r.Images = make([]UserImageResponse, len(images))
	for i, img := range images {
		r.Images[i].FromModel(img, baseURL)
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

type UploadUserImageRequest struct {
	UserID    int64                 `validate:"required"`
	ImageFile multipart.File        `validate:"required"`
	Image     *multipart.FileHeader `validate:"required"`
}

type UploadUserImageResponse struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"displayOrder"`
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
