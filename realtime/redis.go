// File: /realtime/redis.go
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"fitcircle-api/models"
)

const notificationChannel = "fitcircle:notifications"

// RedisBridge fans notification events out across API instances over redis
// pub/sub, so a user connected to one instance still receives events
// originating on another.
type RedisBridge struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewRedisBridge(addr, password string, db int, logger zerolog.Logger) (*RedisBridge, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisBridge{client: client, logger: logger}, nil
}

// PublishEvent puts an event on the shared channel.
func (b *RedisBridge) PublishEvent(ctx context.Context, event *models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.client.Publish(ctx, notificationChannel, payload).Err()
}

// Listen subscribes to the shared channel and pushes received events into the
// local hub. Run it in its own goroutine; it returns when ctx is cancelled.
func (b *RedisBridge) Listen(ctx context.Context, hub *Hub) {
	pubsub := b.client.Subscribe(ctx, notificationChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warn().Err(err).Msg("dropping malformed notification event")
				continue
			}
			hub.Push(event.TargetUserID, []byte(msg.Payload))
		}
	}
}

func (b *RedisBridge) Close() error {
	return b.client.Close()
}
