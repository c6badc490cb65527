package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// dialTimeout bounds the startup ping; the idempotency store must be
// reachable before the API starts taking loan submissions.
const dialTimeout = 5 * time.Second

// OpenRedis connects the idempotency store and verifies it answers.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
