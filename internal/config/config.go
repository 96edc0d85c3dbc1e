// Package config reads runtime settings from PETSIM_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Store         string
	SQLitePath    string
	DSN           string
	MigrationsDir string
	HTTPAddr      string
	CORSOrigin    string
	TickInterval  time.Duration
	PetName       string
	StarterCoins  int
	JournalSize   int
	LogLevel      slog.Level
}

func Default() Config {
	return Config{
		Store:        StoreSQLite,
		SQLitePath:   "data/pocketpet.db",
		HTTPAddr:     ":8080",
		TickInterval: time.Hour,
		PetName:      "My Pet",
		StarterCoins: 5,
		JournalSize:  200,
		LogLevel:     slog.LevelInfo,
	}
}

// Load overlays the environment on Default. Malformed numbers fall back to
// the default; an unknown store kind or a postgres store without a DSN is an error.
func Load() (Config, error) {
	cfg := Default()
	cfg.Store = strings.ToLower(stringEnv("PETSIM_STORE", cfg.Store))
	cfg.SQLitePath = stringEnv("PETSIM_SQLITE_PATH", cfg.SQLitePath)
	cfg.DSN = stringEnv("PETSIM_DB_DSN", cfg.DSN)
	cfg.MigrationsDir = stringEnv("PETSIM_MIGRATIONS_DIR", cfg.MigrationsDir)
	cfg.HTTPAddr = stringEnv("PETSIM_HTTP_ADDR", cfg.HTTPAddr)
	cfg.CORSOrigin = stringEnv("PETSIM_CORS_ORIGIN", cfg.CORSOrigin)
	cfg.PetName = stringEnv("PETSIM_PET_NAME", cfg.PetName)
	cfg.StarterCoins = intEnv("PETSIM_STARTER_COINS", cfg.StarterCoins)
	cfg.JournalSize = intEnv("PETSIM_JOURNAL_SIZE", cfg.JournalSize)
	if secs := intEnv("PETSIM_TICK_SECONDS", int(cfg.TickInterval.Seconds())); secs > 0 {
		cfg.TickInterval = time.Duration(secs) * time.Second
	}
	cfg.LogLevel = ParseLevel(stringEnv("PETSIM_LOG_LEVEL", ""), cfg.LogLevel)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if c.DSN == "" {
			return fmt.Errorf("PETSIM_DB_DSN is required for the %s store", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown store %q (want %s, %s or %s)", c.Store, StoreMemory, StoreSQLite, StorePostgres)
	}
	if c.StarterCoins < 0 {
		return fmt.Errorf("starter coins must not be negative, got %d", c.StarterCoins)
	}
	return nil
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
