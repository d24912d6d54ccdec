package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"network-registry.backend/internal/domain/entities"
	"network-registry.backend/internal/domain/repositories"
	"network-registry.backend/pkg/logger"
)

// RedisEventPublisher delivers network events over a Redis pub/sub channel.
// A nil client or empty channel disables it: every call becomes a no-op.
// The returned error only makes transport failures observable; the publisher
// has already logged them and callers are expected to discard it.
type RedisEventPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisEventPublisher creates a new redis event publisher
func NewRedisEventPublisher(client *redis.Client, channel string) repositories.NetworkEventPublisher {
	return &RedisEventPublisher{client: client, channel: channel}
}

// Publish sends the event to the configured channel, best-effort
func (p *RedisEventPublisher) Publish(ctx context.Context, event *entities.NetworkEvent) error {
	if p.client == nil || p.channel == "" {
		logger.Debug(ctx, "Network event publishing skipped - publisher not configured",
			zap.String("eventType", string(event.EventType)))
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "Failed to encode network event",
			zap.String("eventType", string(event.EventType)), zap.Error(err))
		return err
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		logger.Error(ctx, "Failed to publish network event",
			zap.String("eventType", string(event.EventType)),
			zap.String("networkId", event.Data.ID),
			zap.Error(err))
		return err
	}

	logger.Info(ctx, "Network event published",
		zap.String("eventType", string(event.EventType)),
		zap.String("networkId", event.Data.ID),
		zap.String("correlationId", event.CorrelationID))
	return nil
}
