package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/errcodes"
)

type BidRepository struct {
	store *Store
}

func NewBidRepository(store *Store) *BidRepository {
	return &BidRepository{store: store}
}

// FindNewest returns the seller's most recent bid on the equipment,
// terminal or not. Declined bids stay visible so a repeated decline
// resolves to the same row instead of reporting no bid. The row is
// locked for the length of the ambient transaction.
func (r *BidRepository) FindNewest(
	ctx context.Context,
	equipmentID value.EquipmentID,
	sellerID value.SellerID,
) (*entity.Bid, error) {
	query := `
		SELECT id, equipment_id, buyer_id, seller_id, amount_minor, currency, status, created_at, updated_at
		FROM product_bids
		WHERE equipment_id = $1 AND seller_id = $2
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE`

	var schema bidSchema
	if err := r.store.executor(ctx).GetContext(ctx, &schema, query, equipmentID, sellerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, failure.NewNotFoundError("bid not found", failure.WithCode(errcodes.BidNotFound))
		}

		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	bid := schema.toDomain()

	return &bid, nil
}

func (r *BidRepository) UpdateStatus(ctx context.Context, id value.BidID, status value.BidStatus) error {
	query := `
		UPDATE product_bids
		SET status = $2, updated_at = now()
		WHERE id = $1`

	result, err := r.store.executor(ctx).ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected: %w", err)
	}

	if affected == 0 {
		return failure.NewNotFoundError("bid not found", failure.WithCode(errcodes.BidNotFound))
	}

	return nil
}

func (r *BidRepository) ListByEquipment(ctx context.Context, equipmentID value.EquipmentID) ([]entity.Bid, error) {
	query := `
		SELECT id, equipment_id, buyer_id, seller_id, amount_minor, currency, status, created_at, updated_at
		FROM product_bids
		WHERE equipment_id = $1
		ORDER BY created_at DESC`

	var schemas []bidSchema
	if err := r.store.executor(ctx).SelectContext(ctx, &schemas, query, equipmentID); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	bids := make([]entity.Bid, 0, len(schemas))
	for _, s := range schemas {
		bids = append(bids, s.toDomain())
	}

	return bids, nil
}
