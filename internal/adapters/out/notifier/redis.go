package notifier

import (
	"context"
	"fmt"

	"freight/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

type channelPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisNotifier broadcasts messages on a pub/sub channel. Subscribers that are not
// connected at publish time miss the message; the outbox still marks it sent.
type RedisNotifier struct {
	client  channelPublisher
	channel string
}

func NewRedisNotifier(client channelPublisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	if err := n.client.Publish(ctx, n.channel, msg.Payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", msg.EventName, err)
	}
	return nil
}
