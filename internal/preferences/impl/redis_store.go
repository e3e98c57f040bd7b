package impl

import (
	"github.com/go-redis/redis/v7"
	"github.com/pkg/errors"
)

// RedisStore keeps preferences under a per-app key prefix so several landing pages can share one Redis.
type RedisStore struct {
	RedisClient *redis.Client
	KeyPrefix   string
}

func (rs *RedisStore) Get(key string) (string, bool, error) {
	value, err := rs.RedisClient.Get(rs.buildKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "reading preference %s", key)
	}
	return value, true, nil
}

func (rs *RedisStore) Set(key, value string) error {
	if err := rs.RedisClient.Set(rs.buildKey(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "writing preference %s", key)
	}
	return nil
}

func (rs *RedisStore) buildKey(key string) string {
	return rs.KeyPrefix + ":preferences:" + key
}
