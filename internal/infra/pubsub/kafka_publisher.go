package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed
// by booking id so all changes of one booking land on the same partition.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

// PublishBookingEvent writes the event synchronously.
func (p *kafkaPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := messageAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(strconv.FormatUint(uint64(event.BookingID), 10)),
		Value:   value,
		Headers: headers,
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Debug("[Kafka] Booking event published",
		slog.String("topic", p.writer.Topic),
		slog.String("type", event.Type),
		slog.Uint64("booking_id", uint64(event.BookingID)),
	)

	return nil
}

// Close flushes pending writes and closes the writer.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
