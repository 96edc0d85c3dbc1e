package main

import (
	"context"
	"log/slog"
	"os"

	httpadapter "pocketpet/internal/adapter/http"
	journalinmem "pocketpet/internal/adapter/journal/inmemory"
	metricsinmem "pocketpet/internal/adapter/metrics/inmemory"
	"pocketpet/internal/adapter/store"
	"pocketpet/internal/app/profile"
	"pocketpet/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	app, err := bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	stop := app.pet.StartLifecycle(ctx)

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	app.handler.RegisterRoutes(s)
	s.OnShutdown = append(s.OnShutdown, func(context.Context) {
		stop()
		if err := app.close(); err != nil {
			logger.Warn("close store failed", "error", err)
		}
	})

	logger.Info("pocketpet server listening",
		"addr", cfg.HTTPAddr,
		"store", cfg.Store,
		"tick", cfg.TickInterval,
	)
	s.Spin()
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

type application struct {
	pet     *profile.Profile
	handler httpadapter.Handler
	close   func() error
}

// bootstrap opens the store and loads the pet. Engines that fail to load are
// reported and left uninitialized; the server still starts so status shows
// the failure.
func bootstrap(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, error) {
	st, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	kpi := metricsinmem.NewRecorder()
	p := profile.New(profile.Options{
		Store:        st,
		Journal:      journalinmem.New(cfg.JournalSize),
		Metrics:      kpi,
		Logger:       logger,
		PetName:      cfg.PetName,
		StarterCoins: cfg.StarterCoins,
		TickInterval: cfg.TickInterval,
	})
	if err := p.Initialize(ctx); err != nil {
		logger.Warn("pet initialized with errors", "error", err)
	}
	return &application{
		pet:     p,
		handler: httpadapter.Handler{Pet: p, KPI: kpi, AllowOrigin: cfg.CORSOrigin},
		close:   closeStore,
	}, nil
}
