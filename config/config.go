package config

import (
	"fmt"
	"os"
	"time"

	"github.com/anshiiika/autoelite-dealership/internal/cache"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig        `yaml:"http"`
	Upstream UpstreamConfig    `yaml:"upstream"`
	Cache    CacheConfig       `yaml:"cache"`
	Redis    cache.RedisConfig `yaml:"redis"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	Catalog  CatalogConfig     `yaml:"catalog"`
	Log      LogConfig         `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type UpstreamConfig struct {
	GeoBaseURL      string `yaml:"geo_base_url"`
	CarSpecsBaseURL string `yaml:"carspecs_base_url"`
	CarSpecsAPIKey  string `yaml:"carspecs_api_key"`
}

type CacheConfig struct {
	// Backend selects the cache implementation: "memory" (default) or "redis".
	Backend           string `yaml:"backend"`
	LocationsTTLHours int    `yaml:"locations_ttl_hours"`
}

func (c CacheConfig) LocationsTTL() time.Duration {
	if c.LocationsTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.LocationsTTLHours) * time.Hour
}

type KafkaConfig struct {
	Brokers      []string `yaml:"brokers"`
	BookingTopic string   `yaml:"booking_topic"`
	GroupID      string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.BookingTopic != ""
}

type CatalogConfig struct {
	DataFile string `yaml:"data_file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Upstream.GeoBaseURL == "" {
		cfg.Upstream.GeoBaseURL = "https://countriesnow.space/api/v0.1"
	}
	if cfg.Upstream.CarSpecsBaseURL == "" {
		cfg.Upstream.CarSpecsBaseURL = "https://api.api-ninjas.com"
	}
	if key := os.Getenv("API_NINJAS_KEY"); key != "" {
		cfg.Upstream.CarSpecsAPIKey = key
	}
	if cfg.Catalog.DataFile == "" {
		cfg.Catalog.DataFile = "data/cars.json"
	}

	return &cfg, nil
}
