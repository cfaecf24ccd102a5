//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_pool_usecase.go -package=usecase
package usecase

import (
	"context"

	"github.com/na2na-p/poolbook/internal/domain"
)

// PoolUseCaseInterface はプールのCRUDユースケース
// 一覧と取得は誰でも可能、作成・更新・削除は管理者のみ
type PoolUseCaseInterface interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.Pool, error)
	Get(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Pool, error)
	Create(ctx context.Context, identity domain.Identity, name string) (*domain.Pool, error)
	Update(ctx context.Context, identity domain.Identity, slug domain.Slug, name string) (*domain.Pool, error)
	Delete(ctx context.Context, identity domain.Identity, slug domain.Slug) error
}

type PoolUseCase struct {
	poolRepo domain.PoolRepository
}

var _ PoolUseCaseInterface = (*PoolUseCase)(nil)

func NewPoolUseCase(poolRepo domain.PoolRepository) *PoolUseCase {
	return &PoolUseCase{poolRepo: poolRepo}
}

func (uc *PoolUseCase) List(ctx context.Context, identity domain.Identity) ([]*domain.Pool, error) {
	if err := authorize(domain.KindPool, domain.ActionList, identity, nil); err != nil {
		return nil, err
	}
	return uc.poolRepo.FindAll(ctx)
}

func (uc *PoolUseCase) Get(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Pool, error) {
	if err := authorize(domain.KindPool, domain.ActionRetrieve, identity, nil); err != nil {
		return nil, err
	}
	return uc.poolRepo.FindBySlug(ctx, slug)
}

func (uc *PoolUseCase) Create(ctx context.Context, identity domain.Identity, name string) (*domain.Pool, error) {
	if err := authorize(domain.KindPool, domain.ActionCreate, identity, nil); err != nil {
		return nil, err
	}

	pool, err := domain.NewPool(ctx, name, identity)
	if err != nil {
		return nil, err
	}

	if err := uc.poolRepo.Save(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func (uc *PoolUseCase) Update(ctx context.Context, identity domain.Identity, slug domain.Slug, name string) (*domain.Pool, error) {
	if err := authorize(domain.KindPool, domain.ActionUpdate, identity, nil); err != nil {
		return nil, err
	}

	pool, err := uc.poolRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := pool.Rename(ctx, name, identity); err != nil {
		return nil, err
	}

	if err := uc.poolRepo.Update(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func (uc *PoolUseCase) Delete(ctx context.Context, identity domain.Identity, slug domain.Slug) error {
	if err := authorize(domain.KindPool, domain.ActionDelete, identity, nil); err != nil {
		return err
	}
	return uc.poolRepo.Delete(ctx, slug)
}
