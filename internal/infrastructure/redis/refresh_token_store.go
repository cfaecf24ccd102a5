package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/na2na-p/poolbook/internal/usecase"
)

const refreshTokenKeyPrefix = "refresh_token:"

// RefreshTokenStore は発行済みリフレッシュトークンの台帳のRedis実装
// キーはトークンのjti、値は発行先ユーザーのID。TTLはトークンの残存期間
type RefreshTokenStore struct {
	client *RedisClient
}

var _ usecase.RefreshTokenStore = (*RefreshTokenStore)(nil)

func NewRefreshTokenStore(client *RedisClient) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

func refreshTokenKey(jti string) string {
	return refreshTokenKeyPrefix + jti
}

func (s *RefreshTokenStore) Store(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("refresh token ttl must be positive, got %v", ttl)
	}
	if err := s.client.client.Set(ctx, refreshTokenKey(jti), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("リフレッシュトークンの保存に失敗しました: %w", err)
	}
	return nil
}

func (s *RefreshTokenStore) Exists(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.client.Get(ctx, refreshTokenKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("リフレッシュトークンの参照に失敗しました: %w", err)
	}
	return true, nil
}

func (s *RefreshTokenStore) Delete(ctx context.Context, jti string) error {
	if err := s.client.client.Del(ctx, refreshTokenKey(jti)).Err(); err != nil {
		return fmt.Errorf("リフレッシュトークンの削除に失敗しました: %w", err)
	}
	return nil
}
