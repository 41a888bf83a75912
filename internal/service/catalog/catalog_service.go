package catalog

import (
	"context"

	"github.com/anshiiika/autoelite-dealership/internal/carspecs"
	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/anshiiika/autoelite-dealership/internal/metrics"
	"github.com/anshiiika/autoelite-dealership/internal/repository"
)

type CatalogUseCase interface {
	List(ctx context.Context) ([]domain.Car, error)
	Models(ctx context.Context, model string) ([]string, error)
}

// DefaultModelQuery is used when the caller does not name a model.
const DefaultModelQuery = "Tesla"

type CatalogService struct {
	catalog repository.CatalogRepository
	specs   carspecs.Client
}

func NewCatalogService(catalog repository.CatalogRepository, specs carspecs.Client) *CatalogService {
	return &CatalogService{catalog: catalog, specs: specs}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Car, error) {
	return s.catalog.List(ctx)
}

// Models lists model names from the specifications provider. Served
// uncached; every call goes upstream.
func (s *CatalogService) Models(ctx context.Context, model string) ([]string, error) {
	if model == "" {
		model = DefaultModelQuery
	}
	models, err := s.specs.ModelsByName(ctx, model)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("carspecs", "error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("carspecs", "success").Inc()
	return models, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
