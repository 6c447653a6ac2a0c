package planner

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"weddingplanner/configs"
	"weddingplanner/domain/repository"
)

// Option is a function that configures a Planner instance
type Option func(*Config) error

// StorageMode selects where checklist, venue and user data live
type StorageMode int

const (
	// StorageMemory keeps everything in process, seeded with sample data
	StorageMemory StorageMode = iota

	// StoragePostgres uses a pgx pool owned by the host application
	StoragePostgres

	// StorageMySQL uses an sqlx handle owned by the host application
	StorageMySQL

	// StorageCustom uses repositories supplied by the host application
	StorageCustom
)

func (m StorageMode) String() string {
	switch m {
	case StorageMemory:
		return "memory"
	case StoragePostgres:
		return "postgres"
	case StorageMySQL:
		return "mysql"
	case StorageCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Config holds all configuration for a Planner instance
type Config struct {
	// Storage
	Storage  StorageMode
	Postgres *pgxpool.Pool
	MySQL    *sqlx.DB
	Tasks    repository.TaskRepository
	Venues   repository.VenueRepository
	Users    repository.UserRepository

	AutoMigration bool
	MigrationsDir string
	Seed          bool

	// HTTP
	RoutePrefix string

	// Change delivery
	Stream  configs.StreamConfig
	Webhook configs.WebhookConfig

	// Logging
	Logger *zap.Logger
}

// WithPostgres stores data in PostgreSQL through a pool the caller owns.
// Shutdown does not close it.
func WithPostgres(pool *pgxpool.Pool) Option {
	return func(c *Config) error {
		if pool == nil {
			return fmt.Errorf("postgres pool cannot be nil")
		}
		c.Storage = StoragePostgres
		c.Postgres = pool
		return nil
	}
}

// WithMySQL stores data in MySQL through a handle the caller owns.
// Shutdown does not close it.
func WithMySQL(db *sqlx.DB) Option {
	return func(c *Config) error {
		if db == nil {
			return fmt.Errorf("mysql connection cannot be nil")
		}
		c.Storage = StorageMySQL
		c.MySQL = db
		return nil
	}
}

// WithRepositories plugs in caller-provided repositories
func WithRepositories(tasks repository.TaskRepository, venues repository.VenueRepository, users repository.UserRepository) Option {
	return func(c *Config) error {
		if tasks == nil || venues == nil || users == nil {
			return fmt.Errorf("repositories cannot be nil")
		}
		c.Storage = StorageCustom
		c.Tasks, c.Venues, c.Users = tasks, venues, users
		return nil
	}
}

// WithAutoMigration runs the schema in dir on New for SQL storage.
// Defaults to off.
func WithAutoMigration(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return fmt.Errorf("migrations directory cannot be empty")
		}
		c.AutoMigration = true
		c.MigrationsDir = dir
		return nil
	}
}

// WithSeed enables or disables loading the sample checklist and venues.
// Defaults to true.
func WithSeed(enabled bool) Option {
	return func(c *Config) error {
		c.Seed = enabled
		return nil
	}
}

// WithRoutePrefix sets the HTTP route prefix for the planner's endpoints.
// Defaults to "/api/v1".
func WithRoutePrefix(prefix string) Option {
	return func(c *Config) error {
		if prefix == "" {
			return fmt.Errorf("route prefix cannot be empty")
		}
		c.RoutePrefix = prefix
		return nil
	}
}

// WithStream sizes the websocket change stream queues
func WithStream(clientBuffer, broadcastBuffer int) Option {
	return func(c *Config) error {
		if clientBuffer <= 0 || broadcastBuffer <= 0 {
			return fmt.Errorf("stream buffers must be positive")
		}
		c.Stream = configs.StreamConfig{
			Enabled:         true,
			ClientBuffer:    clientBuffer,
			BroadcastBuffer: broadcastBuffer,
		}
		return nil
	}
}

// WithoutStream disables the websocket change stream
func WithoutStream() Option {
	return func(c *Config) error {
		c.Stream.Enabled = false
		return nil
	}
}

// WithWebhooks delivers checklist changes to the configured URLs
func WithWebhooks(cfg configs.WebhookConfig) Option {
	return func(c *Config) error {
		if cfg.Enabled() && (cfg.Workers <= 0 || cfg.QueueSize <= 0 || cfg.Timeout <= 0) {
			return fmt.Errorf("webhook workers, queue size and timeout must be positive")
		}
		c.Webhook = cfg
		return nil
	}
}

// WithLogger sets a custom logger. Defaults to the global application logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}
