//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/na2na-p/poolbook/internal/domain"
)

// TokenPair はアクセストークンとリフレッシュトークンの組
type TokenPair struct {
	Access           string
	Refresh          string
	RefreshID        string
	RefreshExpiresAt time.Time
}

// TokenIssuer はトークンペアの発行を担う外部コラボレータ
// 署名方式や有効期限はインフラ層の実装が持つ
type TokenIssuer interface {
	Issue(ctx context.Context, identity domain.Identity) (*TokenPair, error)
}

// RefreshTokenVerifier はリフレッシュトークンの署名検証を担う
type RefreshTokenVerifier interface {
	VerifyRefresh(ctx context.Context, token string) (jti string, userID uuid.UUID, err error)
}

// RefreshTokenStore は発行済みリフレッシュトークンのサーバー側の台帳
// ローテーションと失効のために、有効なjtiのみを保持する
type RefreshTokenStore interface {
	Store(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}

// ObjectStorage はアップロードファイル本体の保管を担う
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentLength int64) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, key string) error
}
