package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type envelope struct {
	Entity     string              `json:"entity"`
	Action     string              `json:"action"`
	ResourceID string              `json:"resource_id"`
	Data       domain.Notification `json:"data"`
}

// KafkaPublisher публикует события брони в топик Kafka.
// Ключом сообщения служит id брони, события одной брони попадают в одну партицию.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Name() string { return "kafka" }

func (p *KafkaPublisher) Handle(ctx context.Context, n domain.Notification) error {
	value, err := json.Marshal(envelope{
		Entity:     "reservation",
		Action:     string(n.Type),
		ResourceID: n.ReservationID,
		Data:       n,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.ReservationID),
		Value: value,
		Time:  n.OccurredAt,
	}); err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
