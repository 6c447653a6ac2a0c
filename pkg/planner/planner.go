// Package planner embeds the wedding-planning backend in a host gin
// application.
package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"weddingplanner/auth"
	"weddingplanner/checklist"
	"weddingplanner/configs"
	"weddingplanner/delivery/websocket"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
	"weddingplanner/infrastructure/circuitbreaker"
	"weddingplanner/infrastructure/logger"
	"weddingplanner/infrastructure/worker"
	"weddingplanner/repository/memory"
	"weddingplanner/repository/mysql"
	"weddingplanner/repository/postgres"
	"weddingplanner/seed"
	"weddingplanner/venue"
	"weddingplanner/webhook"
)

// Planner is the embeddable wedding-planning backend
type Planner struct {
	checklist *checklist.Service
	venues    *venue.Service
	auth      *auth.Service

	hub        *websocket.Hub
	dispatcher *webhook.Dispatcher
	pool       worker.Pool

	config *Config
	logger *zap.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	mu      sync.RWMutex
}

// New creates a new Planner instance with functional options
func New(opts ...Option) (*Planner, error) {
	cfg := &Config{
		Storage:     StorageMemory,
		Seed:        true,
		RoutePrefix: "/api/v1",
		Stream: configs.StreamConfig{
			Enabled:         true,
			ClientBuffer:    64,
			BroadcastBuffer: 256,
		},
		Logger: logger.Named("planner"),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	p := &Planner{
		config: cfg,
		logger: cfg.Logger,
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())

	if err := p.initComponents(); err != nil {
		p.cancel()
		return nil, fmt.Errorf("component initialization failed: %w", err)
	}

	p.logger.Info("Planner initialized",
		zap.Stringer("storage", cfg.Storage),
		zap.String("route_prefix", cfg.RoutePrefix),
		zap.Bool("stream", cfg.Stream.Enabled),
		zap.Int("webhooks", len(cfg.Webhook.URLs)),
	)
	return p, nil
}

func (p *Planner) initComponents() error {
	ctx, cancel := context.WithTimeout(p.ctx, time.Minute)
	defer cancel()

	if err := p.prepareStorage(ctx); err != nil {
		return err
	}

	tasks, venues, users := p.repositories()
	p.checklist = checklist.NewService(tasks, p.logger.Named("checklist"))
	p.venues = venue.NewService(venues, p.logger.Named("venue"))
	p.auth = auth.NewService(users, p.logger.Named("auth"))

	var notifiers checklist.Notifiers
	if p.config.Stream.Enabled {
		p.hub = websocket.NewHub(p.config.Stream.ClientBuffer, p.config.Stream.BroadcastBuffer, p.logger.Named("stream"))
		notifiers = append(notifiers, p.hub)
	}

	if wh := p.config.Webhook; wh.Enabled() {
		p.pool = worker.NewPool(wh.Workers, wh.QueueSize, p.logger.Named("worker"))
		breaker := circuitbreaker.NewCircuitBreaker(wh.MaxFailures, wh.ResetTimeout, p.logger.Named("circuitbreaker"))
		p.dispatcher = webhook.NewDispatcher(webhook.Config{
			URLs:         wh.URLs,
			Secret:       wh.Secret,
			Timeout:      wh.Timeout,
			MaxRetries:   wh.MaxRetries,
			RetryBackoff: wh.RetryBackoff,
		}, p.pool, breaker, p.logger.Named("webhook"))
		notifiers = append(notifiers, p.dispatcher)
	}

	if len(notifiers) > 0 {
		p.checklist.SetNotifier(notifiers)
	}
	return nil
}

// prepareStorage migrates and seeds SQL storage
func (p *Planner) prepareStorage(ctx context.Context) error {
	cfg := p.config
	var tasks []entity.Task
	var venues []entity.Venue
	if cfg.Seed {
		tasks, venues = seed.Tasks(), seed.Venues()
	}

	switch cfg.Storage {
	case StoragePostgres:
		if cfg.AutoMigration {
			if err := postgres.RunMigrations(ctx, cfg.Postgres, cfg.MigrationsDir); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		if cfg.Seed {
			return postgres.Seed(ctx, cfg.Postgres, tasks, venues)
		}

	case StorageMySQL:
		if cfg.AutoMigration {
			if err := mysql.RunMigrations(ctx, cfg.MySQL, cfg.MigrationsDir, p.logger); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		if cfg.Seed {
			return mysql.Seed(ctx, cfg.MySQL, tasks, venues)
		}
	}
	return nil
}

func (p *Planner) repositories() (repository.TaskRepository, repository.VenueRepository, repository.UserRepository) {
	cfg := p.config
	switch cfg.Storage {
	case StoragePostgres:
		return postgres.NewTaskRepository(cfg.Postgres), postgres.NewVenueRepository(cfg.Postgres), postgres.NewUserRepository(cfg.Postgres)
	case StorageMySQL:
		return mysql.NewTaskRepository(cfg.MySQL), mysql.NewVenueRepository(cfg.MySQL), mysql.NewUserRepository(cfg.MySQL)
	case StorageCustom:
		return cfg.Tasks, cfg.Venues, cfg.Users
	default:
		var tasks []entity.Task
		if cfg.Seed {
			tasks = seed.Tasks()
		}
		// the venue catalogue is immutable sample data, so memory storage always carries it
		return memory.NewTaskRepository(tasks), memory.NewVenueRepository(seed.Venues()), memory.NewUserRepository()
	}
}

// Checklist returns the checklist service
func (p *Planner) Checklist() *checklist.Service {
	return p.checklist
}

// Venues returns the venue service
func (p *Planner) Venues() *venue.Service {
	return p.venues
}

// Auth returns the account service
func (p *Planner) Auth() *auth.Service {
	return p.auth
}
