package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"harbour-market/internal/domain"
	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
)

type QuoteRepository struct {
	store *Store
}

func NewQuoteRepository(store *Store) *QuoteRepository {
	return &QuoteRepository{store: store}
}

func (r *QuoteRepository) GetByID(ctx context.Context, id value.QuoteID) (*entity.Quote, error) {
	query := `
		SELECT id, equipment_id, buyer_id, seller_id, amount_minor, currency, flag, created_at, updated_at
		FROM product_quotes
		WHERE id = $1
		FOR UPDATE`

	var schema quoteSchema
	if err := r.store.executor(ctx).GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewQuoteNotFoundError(id.String())
		}

		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	quote := schema.toDomain()

	return &quote, nil
}

// Answer sets the seller's amount and flips the flag. Answering twice
// simply overwrites the amount.
func (r *QuoteRepository) Answer(ctx context.Context, id value.QuoteID, amount value.Money) error {
	query := `
		UPDATE product_quotes
		SET amount_minor = $2, currency = $3, flag = 'answer', updated_at = now()
		WHERE id = $1`

	result, err := r.store.executor(ctx).ExecContext(ctx, query, id, amount.MinorUnits, amount.Currency)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected: %w", err)
	}

	if affected == 0 {
		return domain.NewQuoteNotFoundError(id.String())
	}

	return nil
}

func (r *QuoteRepository) ListByEquipment(ctx context.Context, equipmentID value.EquipmentID) ([]entity.Quote, error) {
	query := `
		SELECT id, equipment_id, buyer_id, seller_id, amount_minor, currency, flag, created_at, updated_at
		FROM product_quotes
		WHERE equipment_id = $1
		ORDER BY created_at DESC`

	var schemas []quoteSchema
	if err := r.store.executor(ctx).SelectContext(ctx, &schemas, query, equipmentID); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	quotes := make([]entity.Quote, 0, len(schemas))
	for _, s := range schemas {
		quotes = append(quotes, s.toDomain())
	}

	return quotes, nil
}
