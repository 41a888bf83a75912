package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}

type MockSpecsClient struct {
	mock.Mock
}

func (m *MockSpecsClient) ModelsByName(ctx context.Context, model string) ([]string, error) {
	args := m.Called(ctx, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestCatalogService_List(t *testing.T) {
	repo := &MockCatalogRepository{}
	service := NewCatalogService(repo, &MockSpecsClient{})
	ctx := context.Background()

	cars := []domain.Car{{Brand: "Tesla", Model: "Model S", Year: 2023}}
	repo.On("List", ctx).Return(cars, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cars, got)
	repo.AssertExpectations(t)
}

func TestCatalogService_Models_DefaultsModelQuery(t *testing.T) {
	specs := &MockSpecsClient{}
	service := NewCatalogService(&MockCatalogRepository{}, specs)
	ctx := context.Background()

	specs.On("ModelsByName", ctx, "Tesla").Return([]string{"Model 3"}, nil).Once()

	models, err := service.Models(ctx, "")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Model 3"}, models)
	specs.AssertExpectations(t)
}

func TestCatalogService_Models_UpstreamFailure(t *testing.T) {
	specs := &MockSpecsClient{}
	service := NewCatalogService(&MockCatalogRepository{}, specs)
	ctx := context.Background()

	upstreamErr := &domain.UpstreamError{Op: "cars", Err: errors.New("boom")}
	specs.On("ModelsByName", ctx, "BMW").Return(nil, upstreamErr).Once()

	_, err := service.Models(ctx, "BMW")

	var gotUpstream *domain.UpstreamError
	assert.ErrorAs(t, err, &gotUpstream)
	specs.AssertExpectations(t)
}
