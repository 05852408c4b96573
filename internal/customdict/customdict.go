package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const setKey = "txtdist:custom_words"

// CustomDict wraps a Redis client to persist user-supplied vocabulary as a
// set, so words added at runtime survive restarts.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a CustomDict backed by the provided Redis client.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client, key: setKey}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, word).Err()
}

// All returns every word stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}
