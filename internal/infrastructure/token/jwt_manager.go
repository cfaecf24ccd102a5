package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/usecase"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// userClaims はアクセストークン・リフレッシュトークン共通のクレーム
// token_typeで両者を区別し、取り違えての使用を拒否する
type userClaims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"token_type"`
}

// JWTManager はHS256でトークンペアの発行と検証を行う
type JWTManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

var (
	_ usecase.TokenIssuer          = (*JWTManager)(nil)
	_ usecase.RefreshTokenVerifier = (*JWTManager)(nil)
)

func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 30 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &JWTManager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}, nil
}

// Issue はIdentityに対するアクセストークンとリフレッシュトークンを発行する
func (m *JWTManager) Issue(ctx context.Context, identity domain.Identity) (*usecase.TokenPair, error) {
	now := ctxtime.Now(ctx)

	access, err := m.sign(identity, tokenTypeAccess, uuid.NewString(), now, now.Add(m.accessTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshID := uuid.NewString()
	refreshExpiresAt := now.Add(m.refreshTTL)
	refresh, err := m.sign(identity, tokenTypeRefresh, refreshID, now, refreshExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &usecase.TokenPair{
		Access:           access,
		Refresh:          refresh,
		RefreshID:        refreshID,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// VerifyAccess はアクセストークンを検証して呼び出し元のIdentityを復元する
func (m *JWTManager) VerifyAccess(_ context.Context, tokenString string) (domain.Identity, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return domain.Identity{}, err
	}
	if claims.TokenType != tokenTypeAccess {
		return domain.Identity{}, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid subject", ErrInvalidToken)
	}

	return domain.NewIdentity(userID, claims.Username, claims.Email, claims.IsAdmin)
}

// VerifyRefresh はリフレッシュトークンを検証してjtiと発行先ユーザーIDを返す
func (m *JWTManager) VerifyRefresh(_ context.Context, tokenString string) (string, uuid.UUID, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", uuid.Nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", uuid.Nil, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("%w: invalid subject", ErrInvalidToken)
	}
	if claims.ID == "" {
		return "", uuid.Nil, fmt.Errorf("%w: missing jti", ErrInvalidToken)
	}

	return claims.ID, userID, nil
}

func (m *JWTManager) sign(identity domain.Identity, tokenType, jti string, issuedAt, expiresAt time.Time) (string, error) {
	claims := userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   identity.UserID().String(),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username:  identity.Username(),
		Email:     identity.Email(),
		IsAdmin:   identity.IsAdmin(),
		TokenType: tokenType,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) parse(tokenString string) (*userClaims, error) {
	var claims userClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("予期しない署名アルゴリズムです: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
