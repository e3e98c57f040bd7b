package impl

import (
	"fmt"

	"github.com/Shopify/gowaitlist/internal/preferences"

	"github.com/go-redis/redis/v7"
)

func MakeMemoryStore() preferences.Store {
	return &MemoryStore{dict: make(map[string]string)}
}

func MakeRedisStore(redisClient *redis.Client, keyPrefix string) preferences.Store {
	if redisClient == nil {
		panic(fmt.Errorf("failed instantiating RedisStore: nil redis client"))
	}
	return &RedisStore{RedisClient: redisClient, KeyPrefix: keyPrefix}
}

// MakeRedisClient returns the client along with the ping error so callers can decide whether Redis is required.
func MakeRedisClient(redisAddr string) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	_, pingErr := redisClient.Ping().Result()
	return redisClient, pingErr
}

func MakeStore(storeType, redisAddr, keyPrefix string) (preferences.Store, error) {
	switch storeType {
	case "memory":
		return MakeMemoryStore(), nil
	case "redis":
		redisClient, err := MakeRedisClient(redisAddr)
		if err != nil {
			return nil, fmt.Errorf("redis preference store at %s failed to respond to ping: %w", redisAddr, err)
		}
		return MakeRedisStore(redisClient, keyPrefix), nil
	default:
		panic(fmt.Errorf("preference store type must be one of: {memory, redis}"))
	}
}
