// Package kafka publishes journal events for downstream consumers. The
// producer is optional: the journal works identically without a broker.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rgleason/trading-journal/internal/models"
)

// Producer handles publishing journal events to Kafka.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a new Kafka producer.
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishTradesLoaded publishes an event describing a committed load batch.
func (p *Producer) PublishTradesLoaded(ctx context.Context, sheetID string, tradeCount, tradingDays int) error {
	event := models.JournalEvent{
		EventType:   models.EventTradesLoaded,
		SheetID:     sheetID,
		TradeCount:  tradeCount,
		TradingDays: tradingDays,
		Timestamp:   time.Now(),
	}
	return p.publish(ctx, sheetID, event)
}

func (p *Producer) publish(ctx context.Context, key string, event models.JournalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
