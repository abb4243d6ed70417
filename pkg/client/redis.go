package client

import (
	"NoteShare/config"
	"NoteShare/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 连接失败直接退出，下载计数依赖 redis
func NewRedisClient(conf *config.Config) *redis.Client {
	if conf.Redis == nil {
		log.L.Fatal("redis config missing")
	}
	dialTimeout := conf.Redis.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        conf.Redis.Addr(),
		Username:    conf.Redis.Username,
		Password:    conf.Redis.Password,
		DB:          conf.Redis.Database,
		PoolSize:    conf.Redis.PoolSize,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Fatal("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
	}
	log.L.Info("redis connected", zap.String("addr", conf.Redis.Addr()), zap.Int("db", conf.Redis.Database))
	return client
}
