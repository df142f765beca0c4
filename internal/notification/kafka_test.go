package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Handle(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	n := domain.Notification{
		Type:          domain.NotificationStatusChange,
		ReservationID: "r1",
		UserID:        "u1",
		NewStatus:     domain.ReservationStatusAwaitingPayment,
		OccurredAt:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Handle(context.Background(), n))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "r1", string(w.msgs[0].Key))

	var env envelope
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &env))
	assert.Equal(t, "reservation", env.Entity)
	assert.Equal(t, "status_change", env.Action)
	assert.Equal(t, "r1", env.ResourceID)
	assert.Equal(t, domain.ReservationStatusAwaitingPayment, env.Data.NewStatus)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.Handle(context.Background(), domain.Notification{ReservationID: "r1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}
