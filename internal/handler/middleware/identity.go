//go:generate mockgen -source=$GOFILE -destination=../../../tests/handler/middleware/mock_identity.go -package=middleware
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/poolbook/internal/domain"
)

// IdentityContextKey はecho.Contextに格納されるIdentityのキー
const IdentityContextKey = "identity"

// AccessTokenVerifier はアクセストークンからIdentityを復元する
type AccessTokenVerifier interface {
	VerifyAccess(ctx context.Context, token string) (domain.Identity, error)
}

// IdentityResolver はAuthorizationヘッダからIdentityを解決するミドルウェア
// ヘッダがない場合は匿名のIdentityで続行し、アクセス可否の判定は
// 各ハンドラのポリシーチェックに委ねる。無効なトークンは401で拒否する
func IdentityResolver(verifier AccessTokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set(IdentityContextKey, domain.AnonymousIdentity())
				return next(c)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return NewAppError(http.StatusUnauthorized, "invalid authorization header", nil)
			}

			identity, err := verifier.VerifyAccess(c.Request().Context(), tokenString)
			if err != nil {
				return NewAppError(http.StatusUnauthorized, "invalid or expired token", err)
			}

			c.Set(IdentityContextKey, identity)
			return next(c)
		}
	}
}

// CurrentIdentity はミドルウェアが解決したIdentityを取り出す
// ミドルウェアを通っていないルートでは匿名のIdentityを返す
func CurrentIdentity(c echo.Context) domain.Identity {
	raw := c.Get(IdentityContextKey)
	if identity, ok := raw.(domain.Identity); ok {
		return identity
	}
	return domain.AnonymousIdentity()
}
