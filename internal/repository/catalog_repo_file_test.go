package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCatalogRepository_List(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.json")
	payload := `[
		{"brand":"Tesla","model":"Model S","bodyStyle":"Sedan","color":"Red","price":"$89,990","year":2023,"description":"Electric sedan"},
		{"brand":"BMW","model":"X5","bodyStyle":"SUV","color":"Black","price":"$65,200","year":2022,"description":"Luxury SUV","image":"/images/x5.jpg"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	repo, err := NewFileCatalogRepository(path)
	require.NoError(t, err)

	cars, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, "Tesla", cars[0].Brand)
	assert.Equal(t, "/images/x5.jpg", cars[1].Image)
}

func TestFileCatalogRepository_MissingFile(t *testing.T) {
	_, err := NewFileCatalogRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFileCatalogRepository_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"a list"}`), 0o644))

	_, err := NewFileCatalogRepository(path)
	assert.Error(t, err)
}
