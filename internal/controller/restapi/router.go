package restapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akulagin/media-store/config"
	_ "github.com/akulagin/media-store/docs" // swagger spec registration
	v1 "github.com/akulagin/media-store/internal/controller/restapi/v1"
	"github.com/akulagin/media-store/internal/usecase"
	"github.com/akulagin/media-store/pkg/logger"
	"github.com/akulagin/media-store/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Media Store
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, media usecase.MediaUseCase, l logger.Interface) {
	// Metrics
	if cfg.Metrics.Enabled {
		app.Use(requestMetrics())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Probe
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		if err := media.Health(ctx.UserContext()); err != nil {
			l.Error(err, "restapi - NewRouter - healthz")

			return ctx.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}

		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewMediaRoutes(apiV1Group, media, l, cfg.Upload.MaxFileSize)
	}
}

func requestMetrics() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		path := ctx.Route().Path
		status := strconv.Itoa(ctx.Response().StatusCode())

		metrics.RequestsTotal.WithLabelValues(ctx.Method(), path, status).Inc()
		metrics.RequestDuration.WithLabelValues(ctx.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
