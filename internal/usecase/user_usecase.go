//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_user_usecase.go -package=usecase
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/na2na-p/poolbook/internal/domain"
)

// UserUseCaseInterface はユーザーの読み取り専用ユースケース
// 全件一覧は管理者のみ、個別取得は誰でも可能
type UserUseCaseInterface interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.User, error)
	Get(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.User, error)
}

type UserUseCase struct {
	userRepo domain.UserRepository
}

var _ UserUseCaseInterface = (*UserUseCase)(nil)

func NewUserUseCase(userRepo domain.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

func (uc *UserUseCase) List(ctx context.Context, identity domain.Identity) ([]*domain.User, error) {
	if err := authorize(domain.KindUser, domain.ActionList, identity, nil); err != nil {
		return nil, err
	}
	return uc.userRepo.FindAll(ctx)
}

func (uc *UserUseCase) Get(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.User, error) {
	if err := authorize(domain.KindUser, domain.ActionRetrieve, identity, nil); err != nil {
		return nil, err
	}
	return uc.userRepo.FindByID(ctx, id)
}
