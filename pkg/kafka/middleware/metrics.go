package kafka_middleware

import (
	"context"
	"time"

	"hotels/pkg/kafka"
	"hotels/pkg/metrics"
)

func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		metrics.ObserveEvent(msg.Topic, msg.GetEventType(), err, time.Since(start))
		return err
	}
}
