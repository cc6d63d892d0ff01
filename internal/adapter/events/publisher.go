package events

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// Publisher delivers purchase events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event model.PurchaseEvent) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic keyed by receipt id.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

// Publish sends one event. Events of the same receipt land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event model.PurchaseEvent) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ReceiptID.String()),
		Value: event.Payload,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte("purchase.completed")},
		},
	})
	if err != nil {
		return fmt.Errorf("publish event %d: %w", event.ID, err)
	}
	p.logger.Debug("event published", zap.Int64("event_id", event.ID), zap.String("receipt_id", event.ReceiptID.String()))
	return nil
}

// Close flushes pending writes.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher acknowledges events by logging them.
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher creates a publisher used when no broker is configured.
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event model.PurchaseEvent) error {
	p.logger.Info("purchase completed",
		zap.Int64("event_id", event.ID),
		zap.String("receipt_id", event.ReceiptID.String()),
		zap.ByteString("payload", event.Payload),
	)
	return nil
}
