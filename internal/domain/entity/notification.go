package entity

import (
	"time"

	"harbour-market/internal/domain/value"
)

type NotificationType string

const (
	NotificationTypeBid   NotificationType = "bid"
	NotificationTypeQuote NotificationType = "quote"
)

// Notification is an in-app message shown to the buyer on their
// notifications screen.
type Notification struct {
	ID          value.EventID
	UserID      value.UserID
	Title       string
	Description string
	Type        NotificationType
	EquipmentID value.EquipmentID
	QuoteID     value.QuoteID
	CreatedAt   time.Time
}
