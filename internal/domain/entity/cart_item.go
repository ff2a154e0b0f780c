package entity

import (
	"time"

	"harbour-market/internal/domain/value"
)

// CartItem is one reserved equipment line in a buyer's cart. A buyer
// holds at most one line per equipment. BiddedAmount is set when the
// line came out of an approved bid.
type CartItem struct {
	ID           value.CartItemID
	UserID       value.UserID
	EquipmentID  value.EquipmentID
	CheckoutID   value.CheckoutID
	Amount       value.Money
	BiddedAmount *value.Money
	CreatedAt    time.Time
}
