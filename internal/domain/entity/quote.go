package entity

import (
	"time"

	"harbour-market/internal/domain/value"
)

// Quote is a buyer's request for a price. Flag moves from request to
// answer when the seller names an amount; answering again overwrites
// the previous amount.
type Quote struct {
	ID          value.QuoteID
	EquipmentID value.EquipmentID
	BuyerID     value.UserID
	SellerID    value.SellerID
	Amount      *value.Money
	Flag        value.QuoteFlag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
