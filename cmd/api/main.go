package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"alfredoptarigan/resume-checker/internal/config"
	"alfredoptarigan/resume-checker/internal/handlers"
	"alfredoptarigan/resume-checker/internal/middleware"
	"alfredoptarigan/resume-checker/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	generationMetrics, err := services.NewGenerationMetrics(registry)
	if err != nil {
		log.Fatalf("❌ Failed to register generation metrics: %v", err)
	}

	httpMetrics, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("❌ Failed to register HTTP metrics: %v", err)
	}

	// Initialize services
	pdfParser := services.NewPDFParserService()

	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini, generationMetrics)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model: %s)", cfg.Gemini.Model)

	analyzer := services.NewResumeAnalyzer(pdfParser, geminiService)
	log.Println("✅ Services initialized successfully")

	// Create Fiber app
	app := handlers.NewApp(cfg, handlers.Dependencies{
		Analyzer: analyzer,
		Metrics:  httpMetrics,
		Gatherer: registry,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (env: %s)\n", addr, cfg.Server.Env)
	log.Printf("📖 Web UI: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
