package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Database drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Stream   StreamConfig
	Webhook  WebhookConfig
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
	Seed            bool          `mapstructure:"seed"` // insert sample checklist and venues on start
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"` // "json", "console" or empty
	Filename string `mapstructure:"filename"`
}

// StreamConfig sizes the checklist change stream
type StreamConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	ClientBuffer    int  `mapstructure:"client_buffer"`
	BroadcastBuffer int  `mapstructure:"broadcast_buffer"`
}

// WebhookConfig controls delivery of checklist changes to external URLs.
// Delivery is off while URLs is empty.
type WebhookConfig struct {
	URLs         []string      `mapstructure:"urls"`
	Secret       string        `mapstructure:"secret"` // HMAC-SHA256 key for X-Signature
	Timeout      time.Duration `mapstructure:"timeout"`
	Workers      int           `mapstructure:"workers"`
	QueueSize    int           `mapstructure:"queue_size"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	MaxFailures  int           `mapstructure:"max_failures"` // consecutive failures that open the circuit
	ResetTimeout time.Duration `mapstructure:"reset_timeout"`
}

// Enabled reports whether any webhook URL is configured
func (w WebhookConfig) Enabled() bool {
	return len(w.URLs) > 0
}

// LoadConfig loads configuration from a YAML file and environment variables.
// Environment variables (prefix WEDDING_, dots become underscores) take
// precedence over file values; both fall back to defaults.
//
// Config file search order when configPath is empty (first found is used):
// 1. Path from WEDDING_CONFIG_FILE environment variable
// 2. ./configs/config.yaml, ./config.yaml
// 3. <executable_dir>/configs/config.yaml
// 4. <project_root>/configs/config.yaml (detected by go.mod)
// Running without any file is allowed.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("WEDDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// findConfigFile searches for config.yaml in multiple locations
func findConfigFile() string {
	if envPath := os.Getenv("WEDDING_CONFIG_FILE"); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	candidates := []string{
		"./configs/config.yaml",
		"./config.yaml",
	}

	if exeDir, err := getExecutableDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(exeDir, "configs", "config.yaml"),
			filepath.Join(exeDir, "config.yaml"),
		)
	}

	if projectRoot, err := findProjectRoot(); err == nil {
		candidates = append(candidates,
			filepath.Join(projectRoot, "configs", "config.yaml"),
		)
	}

	for _, candidate := range candidates {
		absPath, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if fileExists(absPath) {
			return absPath
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func getExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// findProjectRoot walks up from the working directory looking for go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "15s")

	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("database.migrations_dir", "migrations")
	v.SetDefault("database.seed", true)

	// empty log values leave the choice to APP_ENV
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "")
	v.SetDefault("log.filename", "")

	v.SetDefault("stream.enabled", true)
	v.SetDefault("stream.client_buffer", 64)
	v.SetDefault("stream.broadcast_buffer", 256)

	v.SetDefault("webhook.urls", []string{})
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("webhook.workers", 4)
	v.SetDefault("webhook.queue_size", 100)
	v.SetDefault("webhook.max_retries", 3)
	v.SetDefault("webhook.retry_backoff", "1s")
	v.SetDefault("webhook.max_failures", 5)
	v.SetDefault("webhook.reset_timeout", "1m")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	switch config.Database.Driver {
	case DriverMemory:
	case DriverPostgres, DriverMySQL:
		if config.Database.URL == "" {
			return fmt.Errorf("database.url is required for driver %q", config.Database.Driver)
		}
		if config.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be positive")
		}
	default:
		return fmt.Errorf("database.driver must be one of memory, postgres, mysql (got %q)", config.Database.Driver)
	}

	if config.Stream.Enabled {
		if config.Stream.ClientBuffer <= 0 || config.Stream.BroadcastBuffer <= 0 {
			return fmt.Errorf("stream buffers must be positive")
		}
	}

	if config.Webhook.Enabled() {
		if config.Webhook.Workers <= 0 || config.Webhook.QueueSize <= 0 {
			return fmt.Errorf("webhook.workers and webhook.queue_size must be positive")
		}
		if config.Webhook.Timeout <= 0 {
			return fmt.Errorf("webhook.timeout must be positive")
		}
		for _, u := range config.Webhook.URLs {
			if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
				return fmt.Errorf("webhook url %q must be http or https", u)
			}
		}
	}

	return nil
}
