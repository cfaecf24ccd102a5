package redis

import (
	"context"
	"fmt"
)

type RedisHealthChecker struct {
	client *RedisClient
}

func NewRedisHealthChecker(client *RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (c *RedisHealthChecker) Name() string {
	return "redis"
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
