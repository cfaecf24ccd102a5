package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/infrastructure/token"
)

func testIdentity(t *testing.T) domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(
		uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		"alice", "alice@example.com", false,
	)
	if err != nil {
		t.Fatalf("NewIdentity() failed: %v", err)
	}
	return identity
}

func newManager(t *testing.T, secret string) *token.JWTManager {
	t.Helper()
	manager, err := token.NewJWTManager(token.JWTConfig{
		Secret:     secret,
		Issuer:     "poolbook",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 168 * time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() failed: %v", err)
	}
	return manager
}

func TestNewJWTManager(t *testing.T) {
	t.Run("異常系: シークレットが空の場合はエラー", func(t *testing.T) {
		_, err := token.NewJWTManager(token.JWTConfig{Secret: ""})
		if !errors.Is(err, token.ErrEmptySecret) {
			t.Fatalf("want error %v, but got %v", token.ErrEmptySecret, err)
		}
	})
}

func TestJWTManager_IssueAndVerify(t *testing.T) {
	manager := newManager(t, "test-secret")
	identity := testIdentity(t)

	pair, err := manager.Issue(context.Background(), identity)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if pair.Access == pair.Refresh {
		t.Error("access and refresh must not be the same token")
	}
	if pair.RefreshID == "" {
		t.Error("RefreshID must not be empty")
	}

	t.Run("正常系: アクセストークンからIdentityを復元できる", func(t *testing.T) {
		got, err := manager.VerifyAccess(context.Background(), pair.Access)
		if err != nil {
			t.Fatalf("VerifyAccess() failed: %v", err)
		}
		if got.UserID() != identity.UserID() {
			t.Errorf("UserID() = %v, want %v", got.UserID(), identity.UserID())
		}
		if got.Username() != identity.Username() {
			t.Errorf("Username() = %q, want %q", got.Username(), identity.Username())
		}
		if got.IsAdmin() {
			t.Error("IsAdmin() = true, want false")
		}
	})

	t.Run("正常系: リフレッシュトークンからjtiとユーザーIDを取り出せる", func(t *testing.T) {
		jti, userID, err := manager.VerifyRefresh(context.Background(), pair.Refresh)
		if err != nil {
			t.Fatalf("VerifyRefresh() failed: %v", err)
		}
		if jti != pair.RefreshID {
			t.Errorf("jti = %q, want %q", jti, pair.RefreshID)
		}
		if userID != identity.UserID() {
			t.Errorf("userID = %v, want %v", userID, identity.UserID())
		}
	})

	t.Run("異常系: リフレッシュトークンをアクセストークンとして使えない", func(t *testing.T) {
		_, err := manager.VerifyAccess(context.Background(), pair.Refresh)
		if !errors.Is(err, token.ErrWrongTokenType) {
			t.Fatalf("want error %v, but got %v", token.ErrWrongTokenType, err)
		}
	})

	t.Run("異常系: アクセストークンをリフレッシュトークンとして使えない", func(t *testing.T) {
		_, _, err := manager.VerifyRefresh(context.Background(), pair.Access)
		if !errors.Is(err, token.ErrWrongTokenType) {
			t.Fatalf("want error %v, but got %v", token.ErrWrongTokenType, err)
		}
	})

	t.Run("異常系: 別のシークレットで署名されたトークンは拒否される", func(t *testing.T) {
		other := newManager(t, "another-secret")
		_, err := other.VerifyAccess(context.Background(), pair.Access)
		if !errors.Is(err, token.ErrInvalidToken) {
			t.Fatalf("want error %v, but got %v", token.ErrInvalidToken, err)
		}
	})

	t.Run("異常系: 改ざんされたトークンは拒否される", func(t *testing.T) {
		_, err := manager.VerifyAccess(context.Background(), pair.Access+"x")
		if !errors.Is(err, token.ErrInvalidToken) {
			t.Fatalf("want error %v, but got %v", token.ErrInvalidToken, err)
		}
	})
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := newManager(t, "test-secret")

	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	pair, err := manager.Issue(ctx, testIdentity(t))
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	_, err = manager.VerifyAccess(context.Background(), pair.Access)
	if !errors.Is(err, token.ErrExpiredToken) {
		t.Fatalf("want error %v, but got %v", token.ErrExpiredToken, err)
	}
}
