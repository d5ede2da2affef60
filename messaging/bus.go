package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const publishTimeout = 2 * time.Second

// Bus delivers events to whichever clients are currently subscribed to a
// room. Delivery is at-most-once and best-effort: no persistence, no
// acknowledgement, no ordering across rooms.
type Bus interface {
	Publish(topic Topic, event string, payload interface{}) error
}

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// RedisBus publishes events over redis pub/sub, one channel per room.
// The socket gateway fronting the browser and mobile clients subscribes
// to the room channels and forwards the envelopes as-is.
type RedisBus struct {
	client *redis.Client
}

func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{
		client: client,
	}
}

func (b *RedisBus) Publish(topic Topic, event string, payload interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	message, err := json.Marshal(envelope{
		Event: event,
		Data:  payload,
	})
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, topic.Room(), message).Err()
}
