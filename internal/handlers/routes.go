package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/resume-checker/internal/config"
	"alfredoptarigan/resume-checker/internal/middleware"
	"alfredoptarigan/resume-checker/internal/services"
)

type Dependencies struct {
	Analyzer services.ResumeAnalyzer
	// Metrics and Gatherer are optional; /metrics is only mounted when
	// Gatherer is set.
	Metrics  *middleware.PrometheusMiddleware
	Gatherer prometheus.Gatherer
}

// NewApp builds the Fiber application with middleware and routes.
func NewApp(cfg *config.Config, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Resume Checker API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLogger())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Handler())
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))

	RegisterRoutes(app, cfg, deps)

	return app
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, deps Dependencies) {
	analyzeHandler := NewAnalyzeHandler(deps.Analyzer, cfg.Analysis.LenientMode)
	chatHandler := NewChatHandler(deps.Analyzer)

	app.Get("/", HandleIndex)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/chat", chatHandler.HandleChat)

	if deps.Gatherer != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}
