package root

import (
	"context"
	"log/slog"
	"os"

	"pocketpet/internal/adapter/store"
	"pocketpet/internal/app/profile"
	"pocketpet/internal/config"
)

// config overlays the flags on the environment. Validation runs after the
// overlay so a flag can complete an environment that is invalid on its own.
func (f *storeFlags) config() (config.Config, error) {
	cfg, _ := config.Load()
	if f.store != "" {
		cfg.Store = f.store
	}
	if f.sqlite != "" {
		cfg.SQLitePath = f.sqlite
	}
	if f.dsn != "" {
		cfg.DSN = f.dsn
	}
	return cfg, cfg.Validate()
}

// cliLogger writes warnings and errors to stderr; the normal output of a
// command is its rendered result.
func cliLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(level, slog.LevelWarn),
	}))
}

// openProfile loads the pet from the configured store. overrides run after
// the flags are applied.
func openProfile(ctx context.Context, f *storeFlags, overrides ...func(*config.Config)) (*profile.Profile, func(), error) {
	cfg, err := f.config()
	if err != nil {
		return nil, nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	logger := cliLogger(os.Getenv("PETSIM_LOG_LEVEL"))
	st, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	p := profile.New(profile.Options{
		Store:        st,
		Logger:       logger,
		PetName:      cfg.PetName,
		StarterCoins: cfg.StarterCoins,
		TickInterval: cfg.TickInterval,
	})
	cleanup := func() {
		_ = closeStore()
	}
	if err := p.Initialize(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return p, cleanup, nil
}
