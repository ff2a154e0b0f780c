// Package outboxrelay moves committed outbox events onto the task
// queue.
package outboxrelay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/internal/transport/tasks"
	"harbour-market/pkg/contextx"
	"harbour-market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Journal interface {
	ListPending(ctx context.Context, limit int) ([]entity.OutboxEvent, error)
	MarkDispatched(ctx context.Context, id value.EventID) error
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Relay struct {
	journal  Journal
	enqueuer Enqueuer

	pollInterval time.Duration
	batchSize    int

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewRelay(journal Journal, enqueuer Enqueuer) *Relay {
	return &Relay{
		journal:      journal,
		enqueuer:     enqueuer,
		pollInterval: time.Second,
		batchSize:    100,
	}
}

func (r *Relay) WithPollInterval(interval time.Duration) *Relay {
	if interval > 0 {
		r.pollInterval = interval
	}

	return r
}

func (r *Relay) WithBatchSize(size int) *Relay {
	if size > 0 {
		r.batchSize = size
	}

	return r
}

func (r *Relay) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return errors.New("relay is already running")
	}

	relayCtx, cancel := context.WithCancel(ctx)
	r.cancelFunc = cancel
	r.isRunning = true

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer func() {
			r.mu.Lock()
			r.isRunning = false
			r.cancelFunc = nil
			r.mu.Unlock()
		}()

		if err := r.Run(relayCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(relayCtx).Error("relay stopped", logx.Error(err))
		}
	}()

	return nil
}

func (r *Relay) Stop() {
	r.mu.Lock()

	if !r.isRunning {
		r.mu.Unlock()
		return
	}

	if r.cancelFunc != nil {
		r.cancelFunc()
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	logger(ctx).Info("outbox relay started", slog.Duration("poll-interval", r.pollInterval))

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("outbox relay stopped")
			return ctx.Err()
		case <-ticker.C:
			dispatched, err := r.RelayPending(ctx)
			if err != nil {
				logger(ctx).Error("relay pass failed", logx.Error(err))
				continue
			}

			if dispatched > 0 {
				logger(ctx).Info("outbox events relayed", slog.Int("count", dispatched))
			}
		}
	}
}

// RelayPending makes one pass over the journal in insertion order. A
// failed enqueue aborts the pass; the event stays pending and the next
// tick retries it. An id conflict in the queue means a previous pass
// enqueued the event and crashed before marking it, so it only needs
// the mark.
func (r *Relay) RelayPending(ctx context.Context) (int, error) {
	events, err := r.journal.ListPending(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("journal.ListPending: %w", err)
	}

	dispatched := 0

	for _, event := range events {
		task, err := tasks.FromOutboxEvent(event)
		if err != nil {
			return dispatched, fmt.Errorf("tasks.FromOutboxEvent: %w", err)
		}

		if _, err = r.enqueuer.EnqueueContext(ctx, task); err != nil &&
			!errors.Is(err, asynq.ErrDuplicateTask) && !errors.Is(err, asynq.ErrTaskIDConflict) {
			return dispatched, fmt.Errorf("enqueuer.EnqueueContext: %w", err)
		}

		if err = r.journal.MarkDispatched(ctx, event.ID); err != nil {
			return dispatched, fmt.Errorf("journal.MarkDispatched: %w", err)
		}

		dispatched++
	}

	return dispatched, nil
}
