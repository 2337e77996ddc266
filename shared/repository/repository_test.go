package repository_test

import (
	"slices"
	"testing"

	"autopark/infras/otel/mocks"
	"autopark/shared/repository"
)

type metadata struct {
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type asset struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Notes string
	metadata
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo := repository.NewRepository[asset]("asset", "assets", "id", nil, mocks.NewOtel())

	if slices.Contains(repo.InsertColumns, "id") {
		t.Error("expected primary column to be excluded from insert columns")
	}

	for _, col := range []string{"name", "created_at", "updated_at"} {
		if !slices.Contains(repo.InsertColumns, col) {
			t.Errorf("expected insert columns to contain %q, got %v", col, repo.InsertColumns)
		}
	}

	if slices.Contains(repo.InsertColumns, "Notes") {
		t.Error("expected untagged field to be skipped")
	}
}
