package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"weddingplanner/configs"
	"weddingplanner/infrastructure/logger"
	"weddingplanner/pkg/planner"
	"weddingplanner/repository/mysql"
	"weddingplanner/repository/postgres"
	"weddingplanner/server"
)

func main() {
	cfg, err := configs.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.ConfigFromEnv().Override(cfg.Log.Level, cfg.Log.Format, cfg.Log.Filename)
	if err := logger.Init(logCfg); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeDB, err := openStorage(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeDB()

	opts := append(storage,
		planner.WithLogger(logger.Get()),
		planner.WithSeed(cfg.Database.Seed),
		planner.WithWebhooks(cfg.Webhook),
	)
	if cfg.Stream.Enabled {
		opts = append(opts, planner.WithStream(cfg.Stream.ClientBuffer, cfg.Stream.BroadcastBuffer))
	} else {
		opts = append(opts, planner.WithoutStream())
	}

	p, err := planner.New(opts...)
	if err != nil {
		log.Fatal("Failed to initialize planner", zap.Error(err))
	}
	if err := p.Start(); err != nil {
		log.Fatal("Failed to start planner", zap.Error(err))
	}

	srv, err := server.NewServer(cfg.Server, p, logger.Get())
	if err != nil {
		log.Fatal("Failed to register routes", zap.Error(err))
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	log.Info("Server started",
		zap.String("address", cfg.Server.Address()),
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("stream", cfg.Stream.Enabled),
		zap.Int("webhooks", len(cfg.Webhook.URLs)),
	)

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := p.Shutdown(shutdownCtx); err != nil {
		log.Error("Planner shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}

// openStorage connects the configured driver and returns the planner
// options that select it, plus a func closing the connection.
func openStorage(cfg *configs.DatabaseConfig, log *zap.Logger) ([]planner.Option, func(), error) {
	switch cfg.Driver {
	case configs.DriverMemory:
		return nil, func() {}, nil

	case configs.DriverPostgres:
		pool, err := postgres.NewConnection(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return []planner.Option{
			planner.WithPostgres(pool),
			planner.WithAutoMigration(cfg.MigrationsDir),
		}, pool.Close, nil

	case configs.DriverMySQL:
		db, err := mysql.NewConnection(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Warn("Failed to close database", zap.Error(err))
			}
		}
		return []planner.Option{
			planner.WithMySQL(db),
			planner.WithAutoMigration(cfg.MigrationsDir),
		}, closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
