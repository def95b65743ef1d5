package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bancomeme-receipt-studio/config"
	"bancomeme-receipt-studio/internal/adapter/exifmeta"
	httpHandler "bancomeme-receipt-studio/internal/adapter/http/handler"
	"bancomeme-receipt-studio/internal/adapter/pdf"
	"bancomeme-receipt-studio/internal/adapter/render"
	"bancomeme-receipt-studio/internal/adapter/storage/local"
	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/internal/service"
	"bancomeme-receipt-studio/pkg/logger"

	"github.com/spf13/afero"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Bancomeme Receipt Studio")

	// Initialize the receipt view
	view, err := render.NewView(log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize receipt view")
	}

	// Initialize the export sink on the local filesystem
	sink, err := local.NewSink(afero.NewOsFs(), cfg.Export.OutputDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize export sink")
	}
	log.Info().Str("output_dir", cfg.Export.OutputDir).Msg("Export sink ready")

	// Initialize business services
	sessionSvc := service.NewSessionService(domain.NewGenerator(), time.Now, log)
	exportSvc := service.NewExportService(
		sessionSvc,
		view,
		exifmeta.NewEmbedder(log),
		pdf.NewBuilder(),
		sink,
		service.ExportOptions{
			Quality:     cfg.Export.Quality,
			Scale:       cfg.Export.Scale,
			SettleDelay: cfg.Export.SettleDelay,
		},
		log,
	)
	auditSvc := service.NewAuditService(log)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		ExportSvc:      exportSvc,
		View:           view,
		AuditSvc:       auditSvc,
		HealthCheckers: []ports.HealthChecker{sink},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
