package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"

	"github.com/na2na-p/poolbook/internal/infrastructure/redis"
)

func TestRefreshTokenStore_Store(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	tests := []struct {
		name      string
		jti       string
		ttl       time.Duration
		setupMock func(mock redismock.ClientMock)
		wantErr   bool
	}{
		{
			name: "正常系: トークンがTTL付きで保存される",
			jti:  "jti-abc",
			ttl:  168 * time.Hour,
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("refresh_token:jti-abc", userID.String(), 168*time.Hour).SetVal("OK")
			},
			wantErr: false,
		},
		{
			name:      "異常系: TTLが0以下の場合はエラー",
			jti:       "jti-abc",
			ttl:       0,
			setupMock: func(mock redismock.ClientMock) {},
			wantErr:   true,
		},
		{
			name: "異常系: Redisエラーはラップして返す",
			jti:  "jti-abc",
			ttl:  time.Hour,
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("refresh_token:jti-abc", userID.String(), time.Hour).SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setupMock(mock)

			store := redis.NewRefreshTokenStore(redis.NewRedisClient(client))

			err := store.Store(context.Background(), tt.jti, userID, tt.ttl)

			if (err != nil) != tt.wantErr {
				t.Errorf("Store() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("mock expectations not met: %v", err)
			}
		})
	}
}

func TestRefreshTokenStore_Exists(t *testing.T) {
	tests := []struct {
		name      string
		jti       string
		setupMock func(mock redismock.ClientMock)
		want      bool
		wantErr   bool
	}{
		{
			name: "正常系: 保存済みのトークンはtrue",
			jti:  "jti-abc",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("refresh_token:jti-abc").SetVal("11111111-1111-1111-1111-111111111111")
			},
			want: true,
		},
		{
			name: "正常系: 未知のトークンはエラーではなくfalse",
			jti:  "jti-unknown",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("refresh_token:jti-unknown").RedisNil()
			},
			want: false,
		},
		{
			name: "異常系: Redisエラーはエラーとして返す",
			jti:  "jti-abc",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("refresh_token:jti-abc").SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setupMock(mock)

			store := redis.NewRefreshTokenStore(redis.NewRedisClient(client))

			got, err := store.Exists(context.Background(), tt.jti)

			if (err != nil) != tt.wantErr {
				t.Errorf("Exists() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Exists() = %v, want %v", got, tt.want)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("mock expectations not met: %v", err)
			}
		})
	}
}

func TestRefreshTokenStore_Delete(t *testing.T) {
	t.Run("正常系: トークンが削除される", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectDel("refresh_token:jti-abc").SetVal(1)

		store := redis.NewRefreshTokenStore(redis.NewRedisClient(client))

		if err := store.Delete(context.Background(), "jti-abc"); err != nil {
			t.Errorf("Delete() error = %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("mock expectations not met: %v", err)
		}
	})
}
