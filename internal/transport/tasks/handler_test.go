package tasks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/transport/tasks"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type fakeMailer struct {
	sent []entity.EmailMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg entity.EmailMessage) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, msg)

	return nil
}

type fakeNotificationWriter struct {
	inserted []entity.Notification
}

func (f *fakeNotificationWriter) Insert(_ context.Context, n entity.Notification) error {
	f.inserted = append(f.inserted, n)
	return nil
}

func TestHandleEmail(t *testing.T) {
	mailer := &fakeMailer{}
	handler := tasks.NewHandler(mailer, &fakeNotificationWriter{})

	payload, err := json.Marshal(entity.EmailMessage{
		Kind:          entity.EmailKindBidOutcome,
		To:            "omar@harbour.example",
		EquipmentName: "Tower Crane",
	})
	require.NoError(t, err)

	err = handler.HandleEmail(context.Background(), asynq.NewTask(tasks.TypeDispatchEmail, payload))
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "omar@harbour.example", mailer.sent[0].To)
}

func TestHandleEmailProviderFailureIsReturned(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("provider down")}
	handler := tasks.NewHandler(mailer, &fakeNotificationWriter{})

	payload, err := json.Marshal(entity.EmailMessage{Kind: entity.EmailKindQuoteAnswer})
	require.NoError(t, err)

	err = handler.HandleEmail(context.Background(), asynq.NewTask(tasks.TypeDispatchEmail, payload))
	require.Error(t, err, "the error must reach asynq so the task is retried")
}

func TestHandleEmailBadPayload(t *testing.T) {
	handler := tasks.NewHandler(&fakeMailer{}, &fakeNotificationWriter{})

	err := handler.HandleEmail(context.Background(), asynq.NewTask(tasks.TypeDispatchEmail, []byte("{")))
	require.Error(t, err)
}

func TestHandleNotification(t *testing.T) {
	writer := &fakeNotificationWriter{}
	handler := tasks.NewHandler(&fakeMailer{}, writer)

	payload, err := json.Marshal(entity.Notification{
		ID:        "event-1",
		UserID:    "user-buyer",
		Title:     "Bid for Tower Crane approved",
		Type:      entity.NotificationTypeBid,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	err = handler.HandleNotification(context.Background(), asynq.NewTask(tasks.TypeDispatchNotification, payload))
	require.NoError(t, err)
	require.Len(t, writer.inserted, 1)
	require.Equal(t, "Bid for Tower Crane approved", writer.inserted[0].Title)
}

func TestFromOutboxEvent(t *testing.T) {
	task, err := tasks.FromOutboxEvent(entity.OutboxEvent{
		ID:      "event-1",
		Kind:    entity.EventKindEmail,
		Payload: []byte(`{}`),
	})
	require.NoError(t, err)
	require.Equal(t, tasks.TypeDispatchEmail, task.Type())

	_, err = tasks.FromOutboxEvent(entity.OutboxEvent{ID: "event-2", Kind: "pigeon"})
	require.Error(t, err)
}
