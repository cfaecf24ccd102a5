package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig はRedisクライアントの設定を保持します
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NewRedisConnection は新しいRedis接続を作成し、Pingで疎通を確認します
func NewRedisConnection(cfg RedisConfig) (*redis.Client, error) {
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	// 初期化処理のためリクエストコンテキストが存在しないので context.Background() を使用
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis接続に失敗しました: %w", err)
	}

	return client, nil
}

// RedisClient はRedisクライアントのラッパーです
type RedisClient struct {
	client redis.Cmdable
}

// NewRedisClient はネイティブのRedisクライアントからRedisClientを作成します（DI用）
func NewRedisClient(client redis.Cmdable) *RedisClient {
	return &RedisClient{client: client}
}

// Ping はRedisサーバーとの接続確認を行います
func (c *RedisClient) Ping(ctx context.Context) error {
	if c.client == nil {
		return errors.New("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}
