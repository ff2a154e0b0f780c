package outboxrelay_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/internal/worker/outboxrelay"
)

type fakeJournal struct {
	pending    []entity.OutboxEvent
	dispatched []value.EventID
}

func (f *fakeJournal) ListPending(_ context.Context, limit int) ([]entity.OutboxEvent, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}

	return f.pending, nil
}

func (f *fakeJournal) MarkDispatched(_ context.Context, id value.EventID) error {
	f.dispatched = append(f.dispatched, id)

	remaining := f.pending[:0]
	for _, e := range f.pending {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	f.pending = remaining

	return nil
}

type fakeEnqueuer struct {
	enqueued []*asynq.Task
	errs     map[string]error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if err, ok := f.errs[task.Type()]; ok {
		return nil, err
	}

	f.enqueued = append(f.enqueued, task)

	return &asynq.TaskInfo{}, nil
}

func events() []entity.OutboxEvent {
	return []entity.OutboxEvent{
		{ID: "event-1", Kind: entity.EventKindNotification, Payload: []byte(`{}`), Status: entity.EventStatusPending},
		{ID: "event-2", Kind: entity.EventKindEmail, Payload: []byte(`{}`), Status: entity.EventStatusPending},
	}
}

func TestRelayPending(t *testing.T) {
	journal := &fakeJournal{pending: events()}
	enqueuer := &fakeEnqueuer{}

	relay := outboxrelay.NewRelay(journal, enqueuer)

	dispatched, err := relay.RelayPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, dispatched)

	require.Len(t, enqueuer.enqueued, 2)
	require.Equal(t, []value.EventID{"event-1", "event-2"}, journal.dispatched)
	require.Empty(t, journal.pending)
}

func TestRelayPendingStopsOnEnqueueFailure(t *testing.T) {
	journal := &fakeJournal{pending: events()}
	enqueuer := &fakeEnqueuer{errs: map[string]error{"dispatch:email": errors.New("redis down")}}

	relay := outboxrelay.NewRelay(journal, enqueuer)

	dispatched, err := relay.RelayPending(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, dispatched)

	// event-2 stays pending for the next tick.
	require.Len(t, journal.pending, 1)
	require.Equal(t, value.EventID("event-2"), journal.pending[0].ID)
}

func TestRelayPendingTreatsDuplicateAsDone(t *testing.T) {
	journal := &fakeJournal{pending: events()}
	enqueuer := &fakeEnqueuer{errs: map[string]error{"dispatch:notification": asynq.ErrTaskIDConflict}}

	relay := outboxrelay.NewRelay(journal, enqueuer)

	dispatched, err := relay.RelayPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, dispatched)
	require.Empty(t, journal.pending)
}

func TestRelayPendingHonorsBatchSize(t *testing.T) {
	journal := &fakeJournal{pending: events()}
	enqueuer := &fakeEnqueuer{}

	relay := outboxrelay.NewRelay(journal, enqueuer).WithBatchSize(1)

	dispatched, err := relay.RelayPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, dispatched)
	require.Len(t, journal.pending, 1)
}
