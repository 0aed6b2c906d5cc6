package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore Redis 实现（启用缓存部署时的可选后端）
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 创建 Redis 键值存储
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) fullKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Get 读取键值
func (s *RedisStore) Get(key string) (string, bool, error) {
	value, err := s.client.Get(context.Background(), s.fullKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set 整值覆盖写入（不过期）
func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), s.fullKey(key), value, 0).Err()
}

// Delete 删除键
func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.fullKey(key)).Err()
}
