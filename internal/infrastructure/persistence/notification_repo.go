package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
)

type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// Insert is idempotent on the notification id, so a redelivered
// dispatch task lands on the existing row.
func (r *NotificationRepository) Insert(ctx context.Context, n entity.Notification) error {
	query := `
		INSERT INTO user_notifications (id, user_id, title, description, type, equipment_id, quote_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.store.executor(ctx).ExecContext(
		ctx, query,
		n.ID, n.UserID, n.Title, n.Description, n.Type,
		nullableString(n.EquipmentID.String()), nullableString(n.QuoteID.String()),
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID value.UserID) ([]entity.Notification, error) {
	query := `
		SELECT id, user_id, title, description, type, equipment_id, quote_id, created_at
		FROM user_notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var schemas []notificationSchema
	if err := r.store.executor(ctx).SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(schemas))
	for _, s := range schemas {
		notifications = append(notifications, s.toDomain())
	}

	return notifications, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
