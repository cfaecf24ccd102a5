package postgres

import (
	"context"
	"fmt"
)

// Pinger はデータベース接続のヘルスチェックを行うインターフェース
type Pinger interface {
	Ping(ctx context.Context) error
}

type PostgresHealthChecker struct {
	pool Pinger
}

func NewPostgresHealthChecker(pool Pinger) *PostgresHealthChecker {
	return &PostgresHealthChecker{pool: pool}
}

func (c *PostgresHealthChecker) Name() string {
	return "postgres"
}

func (c *PostgresHealthChecker) Check(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres health check failed: %w", err)
	}
	return nil
}
