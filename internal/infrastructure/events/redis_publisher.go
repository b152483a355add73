package events

import (
	"context"
	"encoding/json"

	"winnet_crm/internal/domain/entities"

	"github.com/go-redis/redis/v8"
)

// EventsChannel is where other processes listen for cascade events.
const EventsChannel = "winnet:events"

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher forwards every domain event as JSON over Redis pub/sub.
type RedisPublisher struct {
	client  redisPublisher
	channel string
}

func NewRedisPublisher(client redisPublisher) *RedisPublisher {
	return &RedisPublisher{client: client, channel: EventsChannel}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (p *RedisPublisher) Name() string { return "redis" }

func (p *RedisPublisher) Handle(ctx context.Context, ev entities.DomainEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, b).Err()
}
