package persistence

import (
	"database/sql"
	"time"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
)

type equipmentSchema struct {
	ID         string    `db:"id"`
	SellerID   string    `db:"seller_id"`
	Name       string    `db:"name"`
	PriceMinor int64     `db:"price_minor"`
	Currency   string    `db:"currency"`
	CreatedAt  time.Time `db:"created_at"`
}

func (s equipmentSchema) toDomain() entity.Equipment {
	return entity.Equipment{
		ID:        value.EquipmentID(s.ID),
		SellerID:  value.SellerID(s.SellerID),
		Name:      s.Name,
		Price:     value.Money{MinorUnits: s.PriceMinor, Currency: s.Currency},
		CreatedAt: s.CreatedAt,
	}
}

type bidSchema struct {
	ID          string    `db:"id"`
	EquipmentID string    `db:"equipment_id"`
	BuyerID     string    `db:"buyer_id"`
	SellerID    string    `db:"seller_id"`
	AmountMinor int64     `db:"amount_minor"`
	Currency    string    `db:"currency"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (s bidSchema) toDomain() entity.Bid {
	return entity.Bid{
		ID:          value.BidID(s.ID),
		EquipmentID: value.EquipmentID(s.EquipmentID),
		BuyerID:     value.UserID(s.BuyerID),
		SellerID:    value.SellerID(s.SellerID),
		Amount:      value.Money{MinorUnits: s.AmountMinor, Currency: s.Currency},
		Status:      value.BidStatus(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type quoteSchema struct {
	ID          string         `db:"id"`
	EquipmentID string         `db:"equipment_id"`
	BuyerID     string         `db:"buyer_id"`
	SellerID    string         `db:"seller_id"`
	AmountMinor sql.NullInt64  `db:"amount_minor"`
	Currency    sql.NullString `db:"currency"`
	Flag        string         `db:"flag"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (s quoteSchema) toDomain() entity.Quote {
	quote := entity.Quote{
		ID:          value.QuoteID(s.ID),
		EquipmentID: value.EquipmentID(s.EquipmentID),
		BuyerID:     value.UserID(s.BuyerID),
		SellerID:    value.SellerID(s.SellerID),
		Flag:        value.QuoteFlag(s.Flag),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	if s.AmountMinor.Valid {
		quote.Amount = &value.Money{MinorUnits: s.AmountMinor.Int64, Currency: s.Currency.String}
	}

	return quote
}

type cartItemSchema struct {
	ID                string        `db:"id"`
	UserID            string        `db:"user_id"`
	EquipmentID       string        `db:"equipment_id"`
	CheckoutID        string        `db:"checkout_id"`
	AmountMinor       int64         `db:"amount_minor"`
	Currency          string        `db:"currency"`
	BiddedAmountMinor sql.NullInt64 `db:"bidded_amount_minor"`
	CreatedAt         time.Time     `db:"created_at"`
}

func (s cartItemSchema) toDomain() entity.CartItem {
	item := entity.CartItem{
		ID:          value.CartItemID(s.ID),
		UserID:      value.UserID(s.UserID),
		EquipmentID: value.EquipmentID(s.EquipmentID),
		CheckoutID:  value.CheckoutID(s.CheckoutID),
		Amount:      value.Money{MinorUnits: s.AmountMinor, Currency: s.Currency},
		CreatedAt:   s.CreatedAt,
	}

	if s.BiddedAmountMinor.Valid {
		item.BiddedAmount = &value.Money{MinorUnits: s.BiddedAmountMinor.Int64, Currency: s.Currency}
	}

	return item
}

type userSchema struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
}

func (s userSchema) toDomain() entity.User {
	return entity.User{
		ID:        value.UserID(s.ID),
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

type sellerSchema struct {
	ID           string `db:"id"`
	UserID       string `db:"user_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	CompanyName  string `db:"company_name"`
	CompanyEmail string `db:"company_email"`
}

func (s sellerSchema) toDomain() entity.Seller {
	return entity.Seller{
		ID:           value.SellerID(s.ID),
		UserID:       value.UserID(s.UserID),
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		CompanyName:  s.CompanyName,
		CompanyEmail: s.CompanyEmail,
	}
}

type notificationSchema struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Type        string         `db:"type"`
	EquipmentID sql.NullString `db:"equipment_id"`
	QuoteID     sql.NullString `db:"quote_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (s notificationSchema) toDomain() entity.Notification {
	return entity.Notification{
		ID:          value.EventID(s.ID),
		UserID:      value.UserID(s.UserID),
		Title:       s.Title,
		Description: s.Description,
		Type:        entity.NotificationType(s.Type),
		EquipmentID: value.EquipmentID(s.EquipmentID.String),
		QuoteID:     value.QuoteID(s.QuoteID.String),
		CreatedAt:   s.CreatedAt,
	}
}

type outboxEventSchema struct {
	ID        string    `db:"id"`
	Kind      string    `db:"kind"`
	Payload   []byte    `db:"payload"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (s outboxEventSchema) toDomain() entity.OutboxEvent {
	return entity.OutboxEvent{
		ID:        value.EventID(s.ID),
		Kind:      entity.EventKind(s.Kind),
		Payload:   s.Payload,
		Status:    entity.EventStatus(s.Status),
		CreatedAt: s.CreatedAt,
	}
}
