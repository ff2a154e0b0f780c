// Package tasks is the asynq side of the outbox: converting journal
// events into queue tasks and handling them on the worker.
package tasks

import (
	"fmt"

	"github.com/hibiken/asynq"

	"harbour-market/internal/domain/entity"
)

const (
	TypeDispatchEmail        = "dispatch:email"
	TypeDispatchNotification = "dispatch:notification"

	QueueDispatch = "dispatch"

	maxRetry = 10
)

// FromOutboxEvent builds the queue task for a journal event. The event
// id becomes the task id, so re-enqueueing the same event after a relay
// crash is absorbed by the queue.
func FromOutboxEvent(event entity.OutboxEvent) (*asynq.Task, error) {
	var taskType string

	switch event.Kind {
	case entity.EventKindEmail:
		taskType = TypeDispatchEmail
	case entity.EventKindNotification:
		taskType = TypeDispatchNotification
	default:
		return nil, fmt.Errorf("unknown outbox event kind %q", event.Kind)
	}

	return asynq.NewTask(
		taskType,
		event.Payload,
		asynq.TaskID(event.ID.String()),
		asynq.Queue(QueueDispatch),
		asynq.MaxRetry(maxRetry),
	), nil
}
