package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotels/pkg/config"
	"hotels/pkg/kafka"
	kafka_config "hotels/pkg/kafka/config"
	"hotels/pkg/logger"
	"hotels/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockProducer struct {
	PublishFunc func(ctx context.Context, msg kafka.Message) error
	published   []kafka.Message
	closed      bool
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, msg)
	}
	return nil
}

func (m *mockProducer) Close() error {
	m.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := &mockProducer{}
	pub := NewKafkaPublisher(producer, "hotels")

	id := primitive.NewObjectID()
	hotel := &model.Hotel{ID: id, Name: "City Inn", Location: "Astana", Amenities: []string{"Wi-Fi"}}
	ctx := logger.WithRequestID(context.Background(), "req-1")

	require.NoError(t, pub.Publish(ctx, HotelEvent{Type: HotelCreated, HotelID: id.Hex(), Hotel: hotel}))

	require.Len(t, producer.published, 1)
	msg := producer.published[0]
	assert.Equal(t, id.Hex(), msg.Key)
	assert.Equal(t, HotelCreated, msg.GetEventType())
	assert.Equal(t, "req-1", msg.GetCorrelationID())
	assert.Equal(t, "hotels", msg.Headers[kafka.HeaderSource])
	assert.Equal(t, SchemaVersion, msg.Headers[kafka.HeaderSchemaVersion])
	assert.NotEmpty(t, msg.GetEventID())

	var decoded struct {
		Type    string `json:"type"`
		HotelID string `json:"hotel_id"`
		Hotel   struct {
			Name string `json:"name"`
		} `json:"hotel"`
	}
	require.NoError(t, msg.DecodeValue(&decoded))
	assert.Equal(t, HotelCreated, decoded.Type)
	assert.Equal(t, id.Hex(), decoded.HotelID)
	assert.Equal(t, "City Inn", decoded.Hotel.Name)
}

func TestKafkaPublisher_PropagatesProducerError(t *testing.T) {
	boom := errors.New("broker unavailable")
	pub := NewKafkaPublisher(&mockProducer{
		PublishFunc: func(context.Context, kafka.Message) error { return boom },
	}, "hotels")

	err := pub.Publish(context.Background(), HotelEvent{Type: HotelDeleted, HotelID: "abc"})
	assert.ErrorIs(t, err, boom)
}

func TestKafkaPublisher_Close(t *testing.T) {
	producer := &mockProducer{}
	require.NoError(t, NewKafkaPublisher(producer, "hotels").Close())
	assert.True(t, producer.closed)
}

func TestNewPublisher_NoBrokersIsNoop(t *testing.T) {
	cfg := &config.Config{Log: logger.Discard()}

	pub, err := NewPublisher(cfg, "hotels")
	require.NoError(t, err)

	assert.IsType(t, noopPublisher{}, pub)
	assert.NoError(t, pub.Publish(context.Background(), HotelEvent{Type: HotelCreated}))
	assert.NoError(t, pub.Close())
}

func TestNewPublisher_WithBrokers(t *testing.T) {
	cfg := &config.Config{
		Log:                   logger.Discard(),
		KafkaBrokers:          []string{"localhost:9092"},
		KafkaHotelEventsTopic: "hotel-events",
		WriteTimeout:          time.Second,
	}
	cfg.Kafka = kafka_config.Load(cfg.KafkaBrokers)

	pub, err := NewPublisher(cfg, "hotels")
	require.NoError(t, err)

	require.IsType(t, &asyncPublisher{}, pub)
	assert.IsType(t, &kafkaPublisher{}, pub.(*asyncPublisher).inner)
	assert.NoError(t, pub.Close())
}
