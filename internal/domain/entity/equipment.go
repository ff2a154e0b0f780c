package entity

import (
	"time"

	"harbour-market/internal/domain/value"
)

type Equipment struct {
	ID        value.EquipmentID
	SellerID  value.SellerID
	Name      string
	Price     value.Money
	CreatedAt time.Time
}
