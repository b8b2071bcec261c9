package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Storage     StorageConfig    `toml:"storage"`
	Logging     LoggingConfig    `toml:"logging"`
	Blueprints  BlueprintsConfig `toml:"blueprints"`
	Capture     CaptureConfig    `toml:"capture"`
	Snapshots   SnapshotsConfig  `toml:"snapshots"`
	WebSocket   WebSocketConfig  `toml:"websocket"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`         // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"oneof=debug info warn error"` // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`                                       // "json" or "text"
	Output     []string `toml:"output"`                                       // "stdout", "file"
	TimeFormat string   `toml:"time_format"`                                  // Time format for logs
}

// BlueprintsConfig controls how blueprint assets are loaded at startup
type BlueprintsConfig struct {
	AssetsDir string `toml:"assets_dir"` // Directory containing blueprint asset files (JSON)
}

// CaptureConfig controls the console capture ring buffer
type CaptureConfig struct {
	MaxEntries int `toml:"max_entries" validate:"gte=0"` // Buffer capacity (0 = default)
}

// SnapshotsConfig controls the periodic snapshot sweep
type SnapshotsConfig struct {
	Enabled            bool   `toml:"enabled"`
	Schedule           string `toml:"schedule"`             // Cron schedule format
	RetainPerBlueprint int    `toml:"retain_per_blueprint"` // Snapshots kept per blueprint after a sweep
	SnapshotOnExtract  bool   `toml:"snapshot_on_extract"`  // Persist a snapshot on every extract request
}

// WebSocketConfig controls the command bridge endpoint
type WebSocketConfig struct {
	CommandsPerSecond float64 `toml:"commands_per_second" validate:"gte=0"` // Per-connection command rate limit
	CommandBurst      int     `toml:"command_burst" validate:"gte=0"`       // Rate limiter burst size
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
		},
		Blueprints: BlueprintsConfig{
			AssetsDir: "./assets/blueprints",
		},
		Capture: CaptureConfig{
			MaxEntries: 1000,
		},
		Snapshots: SnapshotsConfig{
			Enabled:            false,
			Schedule:           "0 */30 * * * *", // Every 30 minutes (cron format with seconds)
			RetainPerBlueprint: 10,
			SnapshotOnExtract:  false,
		},
		WebSocket: WebSocketConfig{
			CommandsPerSecond: 10,
			CommandBurst:      20,
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files; later files override
// earlier files, environment variables override all of them.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("INSPECTO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("INSPECTO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("INSPECTO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Storage configuration
	if badgerPath := os.Getenv("INSPECTO_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Blueprint assets
	if assetsDir := os.Getenv("INSPECTO_ASSETS_DIR"); assetsDir != "" {
		config.Blueprints.AssetsDir = assetsDir
	}

	// Logging configuration
	if level := os.Getenv("INSPECTO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("INSPECTO_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("INSPECTO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks structural constraints and the snapshot schedule.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Snapshots.Enabled {
		if err := ValidateSnapshotSchedule(c.Snapshots.Schedule); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSnapshotSchedule validates a cron schedule expression. Schedules
// use the 6-field form with a seconds column.
func ValidateSnapshotSchedule(schedule string) error {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
