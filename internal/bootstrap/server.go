package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anshiiika/autoelite-dealership/api"
	"github.com/anshiiika/autoelite-dealership/config"
	"github.com/anshiiika/autoelite-dealership/internal/metrics"
	"github.com/anshiiika/autoelite-dealership/internal/service/bookings"
	"github.com/anshiiika/autoelite-dealership/internal/service/catalog"
	"github.com/anshiiika/autoelite-dealership/internal/service/locations"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	locationSvc locations.LocationUseCase,
	bookingSvc bookings.BookingUseCase,
	catalogSvc catalog.CatalogUseCase,
) error {
	router := newRouter(cfg, logger, locationSvc, bookingSvc, catalogSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	logger.Info("http server started", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	logger *zap.Logger,
	locationSvc locations.LocationUseCase,
	bookingSvc bookings.BookingUseCase,
	catalogSvc catalog.CatalogUseCase,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery(), metrics.Middleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.NewLocationHandler(locationSvc).Register(router.Group("/api/locations"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/api/schedule"))
	api.NewCarHandler(catalogSvc).Register(router.Group("/api"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Info("request", fields...)
	}
}
