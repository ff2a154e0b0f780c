package entity

import (
	"time"

	"harbour-market/internal/domain/value"
)

// Bid is a buyer's price offer on a piece of equipment. A bid stays
// pending until the seller settles it, and a settled bid never goes
// back to pending.
type Bid struct {
	ID          value.BidID
	EquipmentID value.EquipmentID
	BuyerID     value.UserID
	SellerID    value.SellerID
	Amount      value.Money
	Status      value.BidStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
