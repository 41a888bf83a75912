package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/anshiiika/autoelite-dealership/config"
	"github.com/anshiiika/autoelite-dealership/internal/bootstrap"
	"github.com/anshiiika/autoelite-dealership/internal/cache"
	"github.com/anshiiika/autoelite-dealership/internal/carspecs"
	"github.com/anshiiika/autoelite-dealership/internal/geodata"
	"github.com/anshiiika/autoelite-dealership/internal/kafka"
	"github.com/anshiiika/autoelite-dealership/internal/repository"
	"github.com/anshiiika/autoelite-dealership/internal/service/bookings"
	"github.com/anshiiika/autoelite-dealership/internal/service/catalog"
	"github.com/anshiiika/autoelite-dealership/internal/service/locations"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store cache.Store
	if cfg.Cache.Backend == "redis" {
		redisStore := cache.NewRedisStore(cfg.Redis)
		defer redisStore.Close()
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
	}

	catalogRepo, err := repository.NewFileCatalogRepository(cfg.Catalog.DataFile)
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	bookingRepo := repository.NewInMemoryBookingRepository()

	geoClient := geodata.NewClient(cfg.Upstream.GeoBaseURL, nil)
	specsClient := carspecs.NewClient(cfg.Upstream.CarSpecsBaseURL, cfg.Upstream.CarSpecsAPIKey, nil)

	locationSvc := locations.NewLocationService(geoClient, store, cfg.Cache.LocationsTTL(), logger)
	catalogSvc := catalog.NewCatalogService(catalogRepo, specsClient)

	var bookingOpts []bookings.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts, bookings.WithProducer(producer, cfg.Kafka.BookingTopic))
	}
	bookingSvc := bookings.NewBookingService(bookingRepo, logger, bookingOpts...)

	if err := bootstrap.Run(ctx, cfg, logger, locationSvc, bookingSvc, catalogSvc); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
