package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	WriteMessagesFunc func(ctx context.Context, msgs ...kafka.Message) error
	written           []kafka.Message
	closed            bool
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if m.WriteMessagesFunc != nil {
		if err := m.WriteMessagesFunc(ctx, msgs...); err != nil {
			return err
		}
	}
	m.written = append(m.written, msgs...)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

func buildMessage(t *testing.T) Message {
	t.Helper()
	msg, err := NewMessage().
		WithKey("65f0c0ffee0000000000abcd").
		WithValue(map[string]any{"type": "hotel.created"}).
		WithEventType("hotel.created").
		WithSource("hotels").
		Build()
	require.NoError(t, err)
	return msg
}

func TestProducer_Publish(t *testing.T) {
	writer := &mockWriter{}
	p := newProducer(writer, "hotel-events")

	require.NoError(t, p.Publish(context.Background(), buildMessage(t)))

	require.Len(t, writer.written, 1)
	assert.Equal(t, "65f0c0ffee0000000000abcd", string(writer.written[0].Key))
	assert.JSONEq(t, `{"type":"hotel.created"}`, string(writer.written[0].Value))

	headers := map[string]string{}
	for _, h := range writer.written[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "hotel.created", headers[HeaderEventType])
	assert.Equal(t, "hotels", headers[HeaderSource])
	assert.NotEmpty(t, headers[HeaderEventID])
	assert.NotEmpty(t, headers[HeaderTimestamp])
}

func TestProducer_RejectsInvalidMessages(t *testing.T) {
	p := newProducer(&mockWriter{}, "hotel-events")

	err := p.Publish(context.Background(), Message{Value: []byte(`{}`)})
	assert.ErrorIs(t, err, ErrEmptyKey)

	err = p.Publish(context.Background(), Message{Key: "k"})
	assert.ErrorIs(t, err, ErrEmptyValue)
	assert.Equal(t, ErrorTypePermanent, ClassifyError(err))
}

func TestProducer_WriteFailureIsTransient(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	p := newProducer(&mockWriter{
		WriteMessagesFunc: func(context.Context, ...kafka.Message) error { return cause },
	}, "hotel-events")

	err := p.Publish(context.Background(), buildMessage(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorTypeTransient, ClassifyError(err))
}

func TestProducer_MiddlewareOrder(t *testing.T) {
	p := newProducer(&mockWriter{}, "hotel-events")
	var calls []string
	record := func(name string) ProducerMiddleware {
		return func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
			calls = append(calls, name+":"+msg.Topic)
			return next(ctx, msg)
		}
	}
	p.Use(record("first"))
	p.Use(record("second"))

	require.NoError(t, p.Publish(context.Background(), buildMessage(t)))
	assert.Equal(t, []string{"first:hotel-events", "second:hotel-events"}, calls)
}

func TestProducer_Close(t *testing.T) {
	writer := &mockWriter{}
	p := newProducer(writer, "hotel-events")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, writer.closed)

	err := p.Publish(context.Background(), buildMessage(t))
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestMessageBuilder_EncodingFailure(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()

	require.Error(t, err)
	assert.Equal(t, ErrorTypePermanent, ClassifyError(err))
}
