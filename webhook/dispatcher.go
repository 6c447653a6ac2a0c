// Package webhook POSTs checklist changes to external URLs. Deliveries run on
// a worker pool, are signed with HMAC-SHA256 when a secret is configured, are
// retried on 5xx and 429 responses, and are skipped while an endpoint's
// circuit is open.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weddingplanner/domain/entity"
	"weddingplanner/infrastructure/circuitbreaker"
	"weddingplanner/infrastructure/worker"
)

// Request headers set on every delivery
const (
	HeaderEventType = "X-Event-Type"
	HeaderDelivery  = "X-Delivery-ID"
	HeaderAttempt   = "X-Delivery-Attempt"
	HeaderSignature = "X-Signature"
)

// Event is the JSON body of a delivery
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Task       entity.Task `json:"task"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Config holds delivery settings
type Config struct {
	URLs         []string
	Secret       string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// permanentError marks a response that retrying cannot fix
type permanentError struct {
	reason string
}

func (e *permanentError) Error() string {
	return "webhook delivery rejected: " + e.reason
}

// Dispatcher fans checklist changes out to every configured URL
type Dispatcher struct {
	client  *http.Client
	cfg     Config
	breaker *circuitbreaker.CircuitBreaker
	pool    worker.Pool
	logger  *zap.Logger
}

// NewDispatcher creates a dispatcher. The pool must be started by the caller.
func NewDispatcher(cfg Config, pool worker.Pool, breaker *circuitbreaker.CircuitBreaker, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		breaker: breaker,
		pool:    pool,
		logger:  logger,
	}
}

// ChecklistChanged queues one delivery per URL. It never blocks; deliveries
// that do not fit in the queue are dropped and logged.
func (d *Dispatcher) ChecklistChanged(kind string, task entity.Task) {
	ev := Event{
		ID:         uuid.NewString(),
		Type:       kind,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		d.logger.Error("Failed to marshal webhook event", zap.Error(err))
		return
	}

	for _, url := range d.cfg.URLs {
		job := worker.Job{
			Name: "webhook " + kind,
			Run: func(ctx context.Context) error {
				return d.Deliver(ctx, url, ev.ID, kind, body)
			},
		}
		if !d.pool.Submit(job) {
			d.logger.Warn("Webhook queue full, delivery dropped",
				zap.String("url", url),
				zap.String("event_id", ev.ID),
			)
		}
	}
}

// Deliver POSTs body to url, retrying transient failures with exponential
// backoff up to the configured number of retries
func (d *Dispatcher) Deliver(ctx context.Context, url, id, kind string, body []byte) error {
	backoff := d.cfg.RetryBackoff

	for attempt := 1; ; attempt++ {
		err := d.breaker.Execute(url, func() error {
			return d.post(ctx, url, id, kind, attempt, body)
		})
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) || errors.Is(err, circuitbreaker.ErrOpen) || attempt > d.cfg.MaxRetries {
			d.logger.Error("Webhook delivery failed",
				zap.String("url", url),
				zap.String("event_id", id),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			return err
		}

		d.logger.Warn("Webhook delivery failed, will retry",
			zap.String("url", url),
			zap.String("event_id", id),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

// post performs a single HTTP POST
func (d *Dispatcher) post(ctx context.Context, url, id, kind string, attempt int, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &permanentError{reason: err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventType, kind)
	req.Header.Set(HeaderDelivery, id)
	req.Header.Set(HeaderAttempt, strconv.Itoa(attempt))
	if d.cfg.Secret != "" {
		req.Header.Set(HeaderSignature, Sign(d.cfg.Secret, body))
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	d.logger.Debug("Webhook delivered",
		zap.String("url", url),
		zap.String("event_id", id),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	default:
		return &permanentError{reason: fmt.Sprintf("status %d", resp.StatusCode)}
	}
}

// Sign returns the X-Signature value for body: "sha256=" followed by the hex
// HMAC-SHA256 of body under secret
func Sign(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature matches body under secret
func Verify(secret string, body []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}
