package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"harbour-market/internal/domain/entity"
	"harbour-market/pkg/application/modules"
	"harbour-market/pkg/contextx"
	"harbour-market/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type Mailer interface {
	Send(ctx context.Context, msg entity.EmailMessage) error
}

type NotificationWriter interface {
	Insert(ctx context.Context, n entity.Notification) error
}

type Handler struct {
	mailer        Mailer
	notifications NotificationWriter
}

func NewHandler(mailer Mailer, notifications NotificationWriter) *Handler {
	return &Handler{
		mailer:        mailer,
		notifications: notifications,
	}
}

// Handlers returns the mux wiring. Errors returned from a handler put
// the task back on the queue for asynq's retry policy.
func (h *Handler) Handlers() []modules.AsynqHandler {
	return []modules.AsynqHandler{
		{Pattern: TypeDispatchEmail, Handle: h.HandleEmail},
		{Pattern: TypeDispatchNotification, Handle: h.HandleNotification},
	}
}

func (h *Handler) HandleEmail(ctx context.Context, task *asynq.Task) error {
	var msg entity.EmailMessage
	if err := json.Unmarshal(task.Payload(), &msg); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	if err := h.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailer.Send: %w", err)
	}

	logger(ctx).Info("email dispatched", slog.String("kind", string(msg.Kind)))

	return nil
}

func (h *Handler) HandleNotification(ctx context.Context, task *asynq.Task) error {
	var n entity.Notification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	if err := h.notifications.Insert(ctx, n); err != nil {
		return fmt.Errorf("notifications.Insert: %w", err)
	}

	logger(ctx).Info(
		"notification dispatched",
		slog.String(logx.FieldEventID, n.ID.String()),
		slog.String(logx.FieldUserID, n.UserID.String()),
	)

	return nil
}
