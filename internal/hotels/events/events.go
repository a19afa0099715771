package events

import (
	"context"

	"hotels/pkg/config"
	"hotels/pkg/kafka"
	kafka_middleware "hotels/pkg/kafka/middleware"
	"hotels/pkg/logger"
	"hotels/pkg/model"
)

const (
	HotelCreated        = "hotel.created"
	HotelUpdated        = "hotel.updated"
	HotelAmenityAdded   = "hotel.amenity_added"
	HotelAmenityRemoved = "hotel.amenity_removed"
	HotelDeleted        = "hotel.deleted"

	SchemaVersion = "1"
)

type HotelEvent struct {
	Type    string       `json:"type"`
	HotelID string       `json:"hotel_id"`
	Hotel   *model.Hotel `json:"hotel,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event HotelEvent) error
	Close() error
}

// messagePublisher is satisfied by *kafka.Producer.
type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	producer messagePublisher
	source   string
}

func NewKafkaPublisher(producer messagePublisher, source string) Publisher {
	return &kafkaPublisher{producer: producer, source: source}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event HotelEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.HotelID).
		WithValue(event).
		WithEventType(event.Type).
		WithSource(p.source).
		WithSchemaVersion(SchemaVersion).
		WithCorrelationID(logger.RequestID(ctx)).
		Build()
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, HotelEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka-backed publisher when brokers are configured,
// and a no-op publisher otherwise.
func NewPublisher(cfg *config.Config, source string) (Publisher, error) {
	if !cfg.KafkaEnabled() {
		cfg.Log.Info("Kafka brokers not configured, hotel events disabled")
		return NewNoopPublisher(), nil
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.KafkaHotelEventsTopic, cfg.Log)
	if err != nil {
		return nil, err
	}

	if cfg.Kafka.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	cfg.Log.Info("Hotel events enabled",
		"brokers", cfg.Kafka.Brokers,
		"topic", producer.Topic(),
	)
	return NewAsyncPublisher(NewKafkaPublisher(producer, source), cfg.WriteTimeout, cfg.Log), nil
}
