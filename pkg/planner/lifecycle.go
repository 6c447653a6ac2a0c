package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Start launches the change stream hub and the webhook workers.
// Must be called before serving routes when the stream is enabled.
func (p *Planner) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("already started")
	}
	if p.ctx.Err() != nil {
		return fmt.Errorf("planner has been shut down")
	}

	p.logger.Info("Starting planner")

	if p.hub != nil {
		go p.hub.Run(p.ctx)
	}
	if p.pool != nil {
		p.pool.Start()
	}

	p.started = true
	p.logger.Info("Planner started successfully")
	return nil
}

// Shutdown stops the hub and drains queued webhook deliveries until ctx
// ends. Database handles passed in through options stay open.
func (p *Planner) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.cancel()
		return nil
	}

	p.logger.Info("Shutting down planner")

	var err error
	if p.pool != nil {
		if err = p.pool.Stop(ctx); err != nil {
			p.logger.Warn("Webhook queue not drained", zap.Error(err))
		}
	}

	p.cancel()
	p.started = false
	p.logger.Info("Planner shutdown complete")
	return err
}

// HealthCheck returns health status for monitoring
func (p *Planner) HealthCheck(ctx context.Context) HealthStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	status := HealthStatus{
		Started: p.started,
		Storage: p.config.Storage.String(),
	}

	if !p.started {
		status.Status = "stopped"
		return status
	}

	if err := p.ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Database = "disconnected"
		status.Error = err.Error()
		return status
	}
	status.Database = "connected"

	if p.hub != nil {
		status.Stream = &StreamStatus{Clients: p.hub.ClientCount()}
	}
	if p.pool != nil {
		status.Workers = &WorkerStatus{
			Total:  p.pool.WorkerCount(),
			Queued: p.pool.QueueLength(),
		}
	}

	status.Status = "healthy"
	return status
}

func (p *Planner) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	switch p.config.Storage {
	case StoragePostgres:
		return p.config.Postgres.Ping(ctx)
	case StorageMySQL:
		return p.config.MySQL.PingContext(ctx)
	default:
		return nil
	}
}

// HealthStatus represents the health status of the planner
type HealthStatus struct {
	Status   string        `json:"status"` // healthy, unhealthy, stopped
	Storage  string        `json:"storage"`
	Database string        `json:"database,omitempty"` // connected, disconnected
	Stream   *StreamStatus `json:"stream,omitempty"`
	Workers  *WorkerStatus `json:"workers,omitempty"`
	Started  bool          `json:"started"`
	Error    string        `json:"error,omitempty"`
}

// StreamStatus reports connected websocket clients
type StreamStatus struct {
	Clients int `json:"clients"`
}

// WorkerStatus represents the status of the webhook worker pool
type WorkerStatus struct {
	Total  int `json:"total"`
	Queued int `json:"queued"`
}
