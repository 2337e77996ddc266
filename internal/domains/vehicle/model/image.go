package model

import (
	"autopark/shared/model"
)

const (
	ImageTableName  = "vehicle_images"
	ImageEntityName = "vehicle_image"

	FieldImageID      = "id"
	FieldImageVehicle = "vehicle_id"
	FieldRelativePath = "relative_path"
	FieldDisplayOrder = "display_order"
)

type VehicleImage struct {
	ID           int64  `db:"id"`
	VehicleID    int64  `db:"vehicle_id"`
	RelativePath string `db:"relative_path"`
	DisplayOrder int    `db:"display_order"`
	model.Metadata
}
