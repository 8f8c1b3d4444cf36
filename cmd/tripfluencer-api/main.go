// README: Entry point; loads config, wires services, starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripfluencer/internal/ai"
	"tripfluencer/internal/config"
	httptransport "tripfluencer/internal/http"
	"tripfluencer/internal/infra"
	"tripfluencer/internal/modules/itinerary"
	"tripfluencer/internal/modules/usage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger, err := infra.NewLogger(cfg.Log.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var usageSvc *usage.Service
	if cfg.DB.DSN != "" {
		db, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("connect audit db", zap.Error(err))
		}
		defer db.Close()
		usageSvc = usage.NewService(usage.NewStore(db), logger)
		logger.Info("generation audit log enabled")
	}

	credentials := config.NewEnvCredentialSource(cfg)
	if credentials.Credential() == "" {
		logger.Warn("no credential configured yet; /generate will answer 400 until it is set",
			zap.String("variable", cfg.AI.CredentialEnv))
	}

	itinerarySvc := itinerary.NewService(credentials, ai.NewGeminiClient, cfg.AI.FallbackModel, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Itinerary:     itinerarySvc,
		Usage:         usageSvc,
		CredentialEnv: cfg.AI.CredentialEnv,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		Logger:        logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
