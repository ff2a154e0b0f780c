package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/xid"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
)

type CartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Find(
	ctx context.Context,
	userID value.UserID,
	equipmentID value.EquipmentID,
) (*entity.CartItem, error) {
	query := `
		SELECT id, user_id, equipment_id, checkout_id, amount_minor, currency, bidded_amount_minor, created_at
		FROM cart_items
		WHERE user_id = $1 AND equipment_id = $2`

	var schema cartItemSchema
	if err := r.store.executor(ctx).GetContext(ctx, &schema, query, userID, equipmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil //nolint:nilnil // absence is a normal answer here
		}

		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	item := schema.toDomain()

	return &item, nil
}

// UpsertFromApprovedBid reserves the equipment in the buyer's cart at
// the approved amount. A fresh line gets a new checkout id; an existing
// line keeps its checkout id and parks the previous amount in
// bidded_amount_minor. The unique key on (user_id, equipment_id) keeps
// the cart at one line per equipment.
func (r *CartRepository) UpsertFromApprovedBid(
	ctx context.Context,
	userID value.UserID,
	equipmentID value.EquipmentID,
	amount value.Money,
) error {
	query := `
		INSERT INTO cart_items (id, user_id, equipment_id, checkout_id, amount_minor, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id, equipment_id) DO UPDATE
		SET bidded_amount_minor = cart_items.amount_minor,
		    amount_minor        = EXCLUDED.amount_minor,
		    currency            = EXCLUDED.currency`

	_, err := r.store.executor(ctx).ExecContext(
		ctx, query,
		xid.New().String(), userID, equipmentID, xid.New().String(),
		amount.MinorUnits, amount.Currency,
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

// Remove releases the reservation. Removing an absent line is a no-op.
func (r *CartRepository) Remove(ctx context.Context, userID value.UserID, equipmentID value.EquipmentID) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND equipment_id = $2`

	if _, err := r.store.executor(ctx).ExecContext(ctx, query, userID, equipmentID); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID value.UserID) ([]entity.CartItem, error) {
	query := `
		SELECT id, user_id, equipment_id, checkout_id, amount_minor, currency, bidded_amount_minor, created_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var schemas []cartItemSchema
	if err := r.store.executor(ctx).SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	items := make([]entity.CartItem, 0, len(schemas))
	for _, s := range schemas {
		items = append(items, s.toDomain())
	}

	return items, nil
}

func (r *CartRepository) ExistsForEquipment(ctx context.Context, equipmentID value.EquipmentID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM cart_items WHERE equipment_id = $1)`

	var exists bool
	if err := r.store.executor(ctx).GetContext(ctx, &exists, query, equipmentID); err != nil {
		return false, fmt.Errorf("db.GetContext: %w", err)
	}

	return exists, nil
}
