package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // TTL durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/segmentio/ksuid"   // Opaque token generation
)

const keyPrefix = "session:" // Redis key namespace for sessions

// RedisStore keeps sessions in Redis so they survive process restarts.
// Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	rdb *redis.Client // Injected Redis client
	ttl time.Duration // Session max age
}

// NewRedisStore returns a Redis-backed session store with the given max age
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Create generates an opaque token and stores the identity under it with TTL
func (s *RedisStore) Create(ctx context.Context, data Data) (string, error) {
	token := ksuid.New().String() // URL-safe, unguessable token
	b, err := json.Marshal(data)  // Marshal identity to JSON
	if err != nil {
		return "", err // Return error if marshaling fails
	}
	// Store with TTL so natural expiry needs no sweeper
	if err := s.rdb.Set(ctx, keyPrefix+token, b, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token; unknown or expired tokens yield (nil, nil)
func (s *RedisStore) Get(ctx context.Context, token string) (*Data, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result() // Fetch from Redis
	if err == redis.Nil {
		return nil, nil // Token does not exist (or TTL elapsed)
	} else if err != nil {
		return nil, err // Other Redis error
	}
	var data Data
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, err // Corrupt session payload
	}
	return &data, nil
}
