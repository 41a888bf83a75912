package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/anshiiika/autoelite-dealership/internal/geodata"
	"github.com/anshiiika/autoelite-dealership/internal/metrics"
	"go.uber.org/zap"
)

type LookupInput struct {
	Level   string
	Country string
	State   string
}

type LookupResult struct {
	Level   domain.Level
	Country string
	State   string
	Names   []string
}

type LocationUseCase interface {
	Lookup(ctx context.Context, input LookupInput) (*LookupResult, error)
}

// Cache is the slice of the cache the lookup service needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DefaultTTL is how long a lookup result stays valid before the next
// request refreshes it from the upstream provider.
const DefaultTTL = 24 * time.Hour

type LocationService struct {
	client geodata.Client
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewLocationService(client geodata.Client, cache Cache, ttl time.Duration, logger *zap.Logger) *LocationService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocationService{client: client, cache: cache, ttl: ttl, logger: logger}
}

// Lookup answers one hierarchical geographic query. Levels and their
// required parameters:
//
//	countries            no parameters
//	states               country
//	cities               country, state
//
// Results are trimmed, empty names dropped, and sorted ascending. A valid
// cached entry is served without contacting the upstream provider.
func (s *LocationService) Lookup(ctx context.Context, input LookupInput) (*LookupResult, error) {
	level := domain.Level(strings.ToLower(strings.TrimSpace(input.Level)))
	if level == "" {
		level = domain.LevelCountries
	}

	switch level {
	case domain.LevelCountries:
		names, err := s.cached(ctx, "countries", s.fetchCountries)
		if err != nil {
			return nil, err
		}
		return &LookupResult{Level: level, Names: names}, nil

	case domain.LevelStates:
		if input.Country == "" {
			return nil, &domain.ValidationError{Message: "country is required"}
		}
		key := fmt.Sprintf("states:%s", input.Country)
		names, err := s.cached(ctx, key, func(ctx context.Context) ([]string, error) {
			return s.fetchStates(ctx, input.Country)
		})
		if err != nil {
			return nil, err
		}
		return &LookupResult{Level: level, Country: input.Country, Names: names}, nil

	case domain.LevelCities:
		if input.Country == "" {
			return nil, &domain.ValidationError{Message: "country is required"}
		}
		if input.State == "" {
			return nil, &domain.ValidationError{Message: "state is required"}
		}
		key := fmt.Sprintf("cities:%s:%s", input.Country, input.State)
		names, err := s.cached(ctx, key, func(ctx context.Context) ([]string, error) {
			return s.fetchCities(ctx, input.Country, input.State)
		})
		if err != nil {
			return nil, err
		}
		return &LookupResult{Level: level, Country: input.Country, State: input.State, Names: names}, nil

	default:
		return nil, &domain.ValidationError{Message: "Invalid level"}
	}
}

// cached serves key from the cache when a valid entry exists, otherwise runs
// fetch and overwrites the entry with a fresh TTL. Nothing is written on
// fetch failure. Cache read problems degrade to a miss rather than failing
// the request.
func (s *LocationService) cached(ctx context.Context, key string, fetch func(ctx context.Context) ([]string, error)) ([]string, error) {
	if s.cache != nil {
		data, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("location cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			var names []string
			if err := json.Unmarshal(data, &names); err == nil {
				metrics.LocationCacheHits.Inc()
				return names, nil
			}
			s.logger.Warn("location cache entry undecodable, refetching", zap.String("key", key))
		}
	}
	metrics.LocationCacheMisses.Inc()

	names, err := fetch(ctx)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("geodata", "error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("geodata", "success").Inc()

	if s.cache != nil {
		if data, err := json.Marshal(names); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				s.logger.Warn("location cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return names, nil
}

func (s *LocationService) fetchCountries(ctx context.Context) ([]string, error) {
	countries, err := s.client.Countries(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	return normalizeNames(names), nil
}

func (s *LocationService) fetchStates(ctx context.Context, country string) ([]string, error) {
	states, err := s.client.States(ctx, country)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(states))
	for _, st := range states {
		names = append(names, st.Name)
	}
	return normalizeNames(names), nil
}

func (s *LocationService) fetchCities(ctx context.Context, country, state string) ([]string, error) {
	cities, err := s.client.Cities(ctx, country, state)
	if err != nil {
		return nil, err
	}
	return normalizeNames(cities), nil
}

// normalizeNames trims every name, drops the ones left empty, and sorts
// ascending by codepoint. Case-sensitive distinctness is preserved.
func normalizeNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		if trimmed := strings.TrimSpace(n); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	sort.Strings(names)
	return names
}

var _ LocationUseCase = (*LocationService)(nil)
