package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
)

// InterfaceKVStorage is the durable key-value storage consumed by the scan
// ledger: plain string get/set/remove semantics.
type InterfaceKVStorage interface {
	GetString(key string) (string, bool, error)
	SetString(key, value string) error
	Remove(key string) error
}

// RedisService handles Redis operations and backs the scan ledger storage
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// GetString gets a raw string value; the second return reports existence
func (s *RedisService) GetString(key string) (string, bool, error) {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// SetString sets a raw string value without expiration
func (s *RedisService) SetString(key, value string) error {
	return s.Client.Set(s.Ctx, key, value, 0).Err()
}

// Remove deletes a key
func (s *RedisService) Remove(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// Ping checks broker reachability with a short timeout
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
