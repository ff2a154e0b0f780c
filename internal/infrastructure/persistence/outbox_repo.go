package persistence

import (
	"context"
	"fmt"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
)

type OutboxRepository struct {
	store *Store
}

func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{store: store}
}

func (r *OutboxRepository) Append(ctx context.Context, event entity.OutboxEvent) error {
	query := `
		INSERT INTO outbox_events (id, kind, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.store.executor(ctx).ExecContext(
		ctx, query,
		event.ID, event.Kind, event.Payload, event.Status, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

// ListPending returns undispatched events oldest first. Insertion order
// is what keeps a bid's notification ahead of its email.
func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]entity.OutboxEvent, error) {
	query := `
		SELECT id, kind, payload, status, created_at
		FROM outbox_events
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT $1`

	var schemas []outboxEventSchema
	if err := r.store.executor(ctx).SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	events := make([]entity.OutboxEvent, 0, len(schemas))
	for _, s := range schemas {
		events = append(events, s.toDomain())
	}

	return events, nil
}

func (r *OutboxRepository) MarkDispatched(ctx context.Context, id value.EventID) error {
	query := `UPDATE outbox_events SET status = 'dispatched' WHERE id = $1`

	if _, err := r.store.executor(ctx).ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}
