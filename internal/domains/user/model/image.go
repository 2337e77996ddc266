package model

import (
	"autopark/shared/model"
)

const (
	ImageTableName  = "user_images"
	ImageEntityName = "user_image"

	FieldImageID      = "id"
	FieldImageUser    = "user_id"
	FieldRelativePath = "relative_path"
	FieldDisplayOrder = "display_order"
)

type UserImage struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"user_id"`
	RelativePath string `db:"relative_path"`
	DisplayOrder int    `db:"display_order"`
	model.Metadata
}
