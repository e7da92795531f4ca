package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/example/hotel-desk/internal/persistence/sqlite"
)

// Storage backends accepted by HOTEL_STORAGE.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config captures environment driven configuration values for the desk.
type Config struct {
	Storage   string
	SQLiteDSN string
	LogLevel  slog.Level
	LogFormat string
}

// Load parses configuration values from the current process environment.
//
// Each envFile that exists is loaded first with godotenv; variables already
// set in the environment win over the file. Missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := Config{
		Storage:   StorageMemory,
		SQLiteDSN: sqlite.InMemoryDSN,
		LogLevel:  slog.LevelWarn,
		LogFormat: "text",
	}

	invalid := make([]string, 0, 4)

	if storage := strings.ToLower(strings.TrimSpace(os.Getenv("HOTEL_STORAGE"))); storage != "" {
		switch storage {
		case StorageMemory, StorageSQLite:
			cfg.Storage = storage
		default:
			invalid = append(invalid, "HOTEL_STORAGE")
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("HOTEL_SQLITE_DSN")); dsn != "" {
		// The catalog is seeded on every start, so only fresh databases work.
		if sqlite.IsInMemory(dsn) {
			cfg.SQLiteDSN = dsn
		} else {
			invalid = append(invalid, "HOTEL_SQLITE_DSN")
		}
	}

	if levelValue := strings.TrimSpace(os.Getenv("HOTEL_LOG_LEVEL")); levelValue != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelValue)); err != nil {
			invalid = append(invalid, "HOTEL_LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if format := strings.ToLower(strings.TrimSpace(os.Getenv("HOTEL_LOG_FORMAT"))); format != "" {
		switch format {
		case "text", "json":
			cfg.LogFormat = format
		default:
			invalid = append(invalid, "HOTEL_LOG_FORMAT")
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
