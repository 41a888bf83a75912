package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Car, error)
}

// FileCatalogRepository serves the vehicle catalog from a JSON document
// loaded once at startup. The catalog is read-only.
type FileCatalogRepository struct {
	cars []domain.Car
}

func NewFileCatalogRepository(path string) (*FileCatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cars []domain.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return &FileCatalogRepository{cars: cars}, nil
}

func (r *FileCatalogRepository) List(_ context.Context) ([]domain.Car, error) {
	out := make([]domain.Car, len(r.cars))
	copy(out, r.cars)
	return out, nil
}

var _ CatalogRepository = (*FileCatalogRepository)(nil)
