package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"harbour-market/internal/domain"
	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
)

const (
	equipmentCacheTTL     = 5 * time.Minute
	equipmentCacheCleanup = 10 * time.Minute
)

// EquipmentRepository reads the listings through a short TTL cache.
// Listings change rarely compared to how often decisions read them.
type EquipmentRepository struct {
	store *Store
	cache *cache.Cache
}

func NewEquipmentRepository(store *Store) *EquipmentRepository {
	return &EquipmentRepository{
		store: store,
		cache: cache.New(equipmentCacheTTL, equipmentCacheCleanup),
	}
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id value.EquipmentID) (*entity.Equipment, error) {
	if cached, ok := r.cache.Get(id.String()); ok {
		equipment, ok := cached.(entity.Equipment)
		if ok {
			return &equipment, nil
		}
	}

	query := `
		SELECT id, seller_id, name, price_minor, currency, created_at
		FROM equipments
		WHERE id = $1`

	var schema equipmentSchema
	if err := r.store.executor(ctx).GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewEquipmentNotFoundError(id.String())
		}

		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	equipment := schema.toDomain()
	r.cache.SetDefault(id.String(), equipment)

	return &equipment, nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]entity.Equipment, error) {
	query := `
		SELECT id, seller_id, name, price_minor, currency, created_at
		FROM equipments
		ORDER BY created_at DESC`

	var schemas []equipmentSchema
	if err := r.store.executor(ctx).SelectContext(ctx, &schemas, query); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	equipments := make([]entity.Equipment, 0, len(schemas))
	for _, s := range schemas {
		equipments = append(equipments, s.toDomain())
	}

	return equipments, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id value.EquipmentID) error {
	query := `DELETE FROM equipments WHERE id = $1`

	result, err := r.store.executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected: %w", err)
	}

	if affected == 0 {
		return domain.NewEquipmentNotFoundError(id.String())
	}

	r.cache.Delete(id.String())

	return nil
}
