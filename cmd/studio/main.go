package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/export"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/gateway"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/http/handlers"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/http/httpapi"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/infra"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/studio"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	gw, err := gateway.NewClient(gateway.Options{
		APIKey:         cfg.GeminiAPIKey,
		BaseURL:        cfg.GeminiBaseURL,
		PlanModel:      cfg.PlanModel,
		RenderModel:    cfg.RenderModel,
		RenderProModel: cfg.RenderProModel,
		SpeechModel:    cfg.SpeechModel,
		AnalysisModel:  cfg.AnalysisModel,
		Logger:         &logger,
		Retry:          gateway.RetryPolicy{MaxAttempts: cfg.RetryMaxAttempts, BaseDelay: cfg.RetryBaseDelay},
		PollInterval:   cfg.UploadPollInterval,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build gateway client")
	}

	store := studio.NewStore()
	orch := studio.NewOrchestrator(gw, store, &logger, studio.Options{
		AnalysisTimeout: cfg.AnalysisTimeout,
	})

	app := handlers.NewApp(store, orch, gw, logger)
	if cfg.ExportDir != "" {
		exports, err := export.NewFileStore(cfg.ExportDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare export directory")
		}
		app.Exports = exports
	}
	router := httpapi.NewRouter(cfg, logger, app)
	server := infra.NewHTTPServer(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Msgf("studio API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
	logger.Info().Msg("server stopped")
}
