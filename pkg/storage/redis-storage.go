package storage

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const redisConfigKey = "delivery:schedule-config"

// RedisConfigStorage keeps the snapshot under a single key, for setups
// where serving nodes share state instead of mounting a disk.
type RedisConfigStorage struct {
	Addr     string
	Password string
	DB       int
	client   *redis.Client
	ctx      context.Context
}

func NewRedisConfigStorage(addr, password string, db int) *RedisConfigStorage {
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisConfigStorage{Addr: addr, Password: password, DB: db, client: rdb, ctx: ctx}
}

func (s *RedisConfigStorage) Load() (*ScheduleConfig, error) {
	data, err := s.client.Get(s.ctx, redisConfigKey).Result()
	if err != nil {
		return nil, err
	}
	cfg := &ScheduleConfig{}
	if err := sonic.Unmarshal([]byte(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *RedisConfigStorage) Save(cfg *ScheduleConfig) error {
	data, err := sonic.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.client.Set(s.ctx, redisConfigKey, data, 0).Err()
}
