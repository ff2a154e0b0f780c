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

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(ctx context.Context, id value.UserID) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM users
		WHERE id = $1`

	var schema userSchema
	if err := r.store.executor(ctx).GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewUserNotFoundError(id.String())
		}

		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	user := schema.toDomain()

	return &user, nil
}

type SellerRepository struct {
	store *Store
}

func NewSellerRepository(store *Store) *SellerRepository {
	return &SellerRepository{store: store}
}

func (r *SellerRepository) GetByUserID(ctx context.Context, userID value.UserID) (*entity.Seller, error) {
	query := `
		SELECT id, user_id, first_name, last_name, company_name, company_email
		FROM sellers
		WHERE user_id = $1`

	var schema sellerSchema
	if err := r.store.executor(ctx).GetContext(ctx, &schema, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewSellerNotFoundError(userID.String())
		}

		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	seller := schema.toDomain()

	return &seller, nil
}
