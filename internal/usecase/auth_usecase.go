//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_auth_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/poolbook/internal/domain"
)

// AuthUseCaseInterface は登録・ログイン・トークン更新のユースケース
type AuthUseCaseInterface interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error)
}

type AuthUseCase struct {
	userRepo     domain.UserRepository
	tokenIssuer  TokenIssuer
	verifier     RefreshTokenVerifier
	refreshStore RefreshTokenStore
}

var _ AuthUseCaseInterface = (*AuthUseCase)(nil)

func NewAuthUseCase(userRepo domain.UserRepository, tokenIssuer TokenIssuer, verifier RefreshTokenVerifier, refreshStore RefreshTokenStore) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenIssuer:  tokenIssuer,
		verifier:     verifier,
		refreshStore: refreshStore,
	}
}

// Register は新規ユーザーを作成してトークンペアを発行する
// メールアドレス・ユーザー名の一意性はDBのユニーク制約で担保され、
// 違反はdomain.ErrEmailTaken / domain.ErrUsernameTakenとして返る
// その場合トークンは発行されない
func (uc *AuthUseCase) Register(ctx context.Context, email, username, password string) (*domain.User, *TokenPair, error) {
	passwordHash, err := domain.NewPasswordHash(password)
	if err != nil {
		return nil, nil, err
	}

	user, err := domain.NewUser(ctx, email, username, passwordHash)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := uc.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login は認証情報を検証してトークンペアを発行する
// ユーザーが存在しない場合もパスワード不一致と同じエラーを返す
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.PasswordHash().Verify(password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := uc.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh はリフレッシュトークンを検証して新しいトークンペアを発行する
// 使用されたトークンは台帳から削除される（ローテーション）ため、
// 同じトークンの再利用はErrInvalidRefreshTokenになる
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error) {
	jti, userID, err := uc.verifier.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidRefreshToken
	}

	valid, err := uc.refreshStore.Exists(ctx, jti)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if !valid {
		return nil, nil, ErrInvalidRefreshToken
	}

	if err := uc.refreshStore.Delete(ctx, jti); err != nil {
		return nil, nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrInvalidRefreshToken
		}
		return nil, nil, err
	}

	pair, err := uc.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (uc *AuthUseCase) issuePair(ctx context.Context, user *domain.User) (*TokenPair, error) {
	identity, err := user.Identity()
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokenIssuer.Issue(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	ttl := pair.RefreshExpiresAt.Sub(ctxtime.Now(ctx))
	if err := uc.refreshStore.Store(ctx, pair.RefreshID, user.ID(), ttl); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return pair, nil
}
