// Package events drains the order_events outbox to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=events

const (
	maxRetries    = 3
	retryInterval = 200 * time.Millisecond
	subjectPrefix = "fieldservice."
	workers       = 4
)

type Repo interface {
	FindUnpublished(ctx context.Context, limit int) ([]domain.OrderEvent, error)
	MarkPublished(ctx context.Context, id string, at time.Time) error
}

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// LogPublisher stands in for NATS when no server is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(subject string, data []byte) error {
	zap.L().Info("order event", zap.String("subject", subject), zap.ByteString("payload", data))
	return nil
}

// Subject is the NATS subject of an event type.
func Subject(t domain.EventType) string {
	return subjectPrefix + string(t)
}

type Dispatcher struct {
	repo       Repo
	publisher  Publisher
	workerPool WorkerPoolI
	interval   time.Duration
	batch      int
	inFlight   sync.Map
	now        func() time.Time
}

func New(cfg *config.Config, repo Repo, publisher Publisher) *Dispatcher {
	if publisher == nil {
		publisher = LogPublisher{}
	}
	return &Dispatcher{
		repo:       repo,
		publisher:  publisher,
		workerPool: NewWorkerPool(workers),
		interval:   cfg.EventsInterval,
		batch:      cfg.EventsBatch,
		now:        time.Now,
	}
}

// Start polls the outbox until ctx is done.
func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("event dispatcher started", zap.Duration("interval", d.interval))
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	defer d.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("event dispatcher stopped")
			return
		case <-ticker.C:
			d.dispatch(ctx)
		}
	}
}

// dispatch publishes one batch and waits for it, so a tick never overlaps
// the previous one for the same event.
func (d *Dispatcher) dispatch(ctx context.Context) int {
	events, err := d.repo.FindUnpublished(ctx, d.batch)
	if err != nil {
		zap.L().Error("can't fetch unpublished events", zap.Error(err))
		return 0
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		published int
	)
	for _, e := range events {
		e := e
		if _, loaded := d.inFlight.LoadOrStore(e.ID, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		err := d.workerPool.AddTask(ctx, func() error {
			defer wg.Done()
			defer d.inFlight.Delete(e.ID)
			if err := d.handle(ctx, e); err != nil {
				return err
			}
			mu.Lock()
			published++
			mu.Unlock()
			return nil
		})
		if err != nil {
			wg.Done()
			d.inFlight.Delete(e.ID)
			zap.L().Warn("can't schedule event", zap.String("eventID", e.ID), zap.Error(err))
		}
	}
	wg.Wait()
	return published
}

func (d *Dispatcher) handle(ctx context.Context, e domain.OrderEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", e.ID, err)
	}

	subject := Subject(e.Type)
	for attempt := 1; ; attempt++ {
		err = d.publisher.Publish(subject, payload)
		if err == nil {
			break
		}
		if attempt >= maxRetries {
			return fmt.Errorf("failed to publish event %s after %d retries: %w", e.ID, maxRetries, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval * time.Duration(attempt)):
		}
	}

	if err := d.repo.MarkPublished(ctx, e.ID, d.now()); err != nil {
		return fmt.Errorf("failed to mark event %s published: %w", e.ID, err)
	}
	zap.L().Debug("event published", zap.String("eventID", e.ID), zap.String("subject", subject))
	return nil
}
