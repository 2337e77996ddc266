package dto

import (
	"mime/multipart"
)

type UploadVehicleImageRequest struct {
	VehicleID int64                 `validate:"required"`
	ImageFile multipart.File        `validate:"required"`
	Image     *multipart.FileHeader `validate:"required"`
}

type UploadVehicleImageResponse struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"displayOrder"`
}
