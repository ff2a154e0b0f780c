package entity

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/xid"

	"harbour-market/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type EventKind string

const (
	EventKindEmail        EventKind = "email"
	EventKindNotification EventKind = "notification"
)

type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusDispatched EventStatus = "dispatched"
)

// OutboxEvent is a side effect recorded in the same transaction as the
// state change that caused it. A relay picks pending events up in
// insertion order and hands them to the task queue; the event id doubles
// as the task id so a crash between enqueue and mark never duplicates
// delivery.
type OutboxEvent struct {
	ID        value.EventID
	Kind      EventKind
	Payload   []byte
	Status    EventStatus
	CreatedAt time.Time
}

func NewEmailEvent(msg EmailMessage, at time.Time) (OutboxEvent, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return OutboxEvent{
		ID:        value.EventID(xid.New().String()),
		Kind:      EventKindEmail,
		Payload:   payload,
		Status:    EventStatusPending,
		CreatedAt: at,
	}, nil
}

// NewNotificationEvent stamps the notification with the event id, so a
// redelivered task inserts the same row and the unique key absorbs it.
func NewNotificationEvent(n Notification, at time.Time) (OutboxEvent, error) {
	n.ID = value.EventID(xid.New().String())
	n.CreatedAt = at

	payload, err := json.Marshal(n)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return OutboxEvent{
		ID:        n.ID,
		Kind:      EventKindNotification,
		Payload:   payload,
		Status:    EventStatusPending,
		CreatedAt: at,
	}, nil
}
