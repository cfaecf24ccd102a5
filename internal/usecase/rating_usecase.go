//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_rating_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"

	"github.com/na2na-p/poolbook/internal/domain"
)

// RatingUseCaseInterface は評価のユースケース
// 作成は認証済みユーザーなら誰でも可能。宣言されたルール通りで、
// 所有者チェックへのフォールスルーは存在しない
type RatingUseCaseInterface interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.Rating, error)
	ListOwn(ctx context.Context, identity domain.Identity) ([]*domain.Rating, error)
	Get(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Rating, error)
	Create(ctx context.Context, identity domain.Identity, poolSlug domain.Slug, value int) (*domain.Rating, error)
	Update(ctx context.Context, identity domain.Identity, slug domain.Slug, value int) (*domain.Rating, error)
	Delete(ctx context.Context, identity domain.Identity, slug domain.Slug) error
}

type RatingUseCase struct {
	ratingRepo domain.RatingRepository
	poolRepo   domain.PoolRepository
}

var _ RatingUseCaseInterface = (*RatingUseCase)(nil)

func NewRatingUseCase(ratingRepo domain.RatingRepository, poolRepo domain.PoolRepository) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		poolRepo:   poolRepo,
	}
}

func (uc *RatingUseCase) List(ctx context.Context, identity domain.Identity) ([]*domain.Rating, error) {
	if err := authorize(domain.KindRating, domain.ActionList, identity, nil); err != nil {
		return nil, err
	}
	return uc.ratingRepo.FindAll(ctx)
}

func (uc *RatingUseCase) ListOwn(ctx context.Context, identity domain.Identity) ([]*domain.Rating, error) {
	if err := authorize(domain.KindRating, domain.ActionListOwn, identity, nil); err != nil {
		return nil, err
	}
	return uc.ratingRepo.FindByUserID(ctx, identity.UserID())
}

func (uc *RatingUseCase) Get(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Rating, error) {
	rating, err := uc.ratingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := authorize(domain.KindRating, domain.ActionRetrieve, identity, &domain.OwnerRef{UserID: rating.UserID()}); err != nil {
		return nil, err
	}
	return rating, nil
}

// Create は呼び出し元のIdentityで評価を作成する
// 同一 (user, pool) の評価が既に存在する場合はdomain.ErrRatingExistsが返る
func (uc *RatingUseCase) Create(ctx context.Context, identity domain.Identity, poolSlug domain.Slug, value int) (*domain.Rating, error) {
	if err := authorize(domain.KindRating, domain.ActionCreate, identity, nil); err != nil {
		return nil, err
	}

	ratingValue, err := domain.NewRatingValue(value)
	if err != nil {
		return nil, err
	}

	if _, err := uc.poolRepo.FindBySlug(ctx, poolSlug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}

	rating, err := domain.NewRating(ctx, identity, poolSlug, ratingValue)
	if err != nil {
		return nil, err
	}

	if err := uc.ratingRepo.Save(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (uc *RatingUseCase) Update(ctx context.Context, identity domain.Identity, slug domain.Slug, value int) (*domain.Rating, error) {
	rating, err := uc.ratingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := authorize(domain.KindRating, domain.ActionUpdate, identity, &domain.OwnerRef{UserID: rating.UserID()}); err != nil {
		return nil, err
	}

	ratingValue, err := domain.NewRatingValue(value)
	if err != nil {
		return nil, err
	}
	rating.Revalue(ratingValue)

	if err := uc.ratingRepo.Update(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (uc *RatingUseCase) Delete(ctx context.Context, identity domain.Identity, slug domain.Slug) error {
	rating, err := uc.ratingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := authorize(domain.KindRating, domain.ActionDelete, identity, &domain.OwnerRef{UserID: rating.UserID()}); err != nil {
		return err
	}
	return uc.ratingRepo.Delete(ctx, slug)
}
