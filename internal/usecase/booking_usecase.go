//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_booking_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"

	"github.com/na2na-p/poolbook/internal/domain"
)

// BookingUseCaseInterface は予約のユースケース
// 全件一覧は管理者のみ、作成は認証済みユーザー、個別操作は所有者のみ
// ListOwnは呼び出し元自身の予約を作成日時の降順で返す
type BookingUseCaseInterface interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.Booking, error)
	ListOwn(ctx context.Context, identity domain.Identity) ([]*domain.Booking, error)
	Get(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Booking, error)
	Create(ctx context.Context, identity domain.Identity, poolSlug domain.Slug) (*domain.Booking, error)
	Update(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Booking, error)
	Delete(ctx context.Context, identity domain.Identity, slug domain.Slug) error
}

type BookingUseCase struct {
	bookingRepo domain.BookingRepository
	poolRepo    domain.PoolRepository
}

var _ BookingUseCaseInterface = (*BookingUseCase)(nil)

func NewBookingUseCase(bookingRepo domain.BookingRepository, poolRepo domain.PoolRepository) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		poolRepo:    poolRepo,
	}
}

func (uc *BookingUseCase) List(ctx context.Context, identity domain.Identity) ([]*domain.Booking, error) {
	if err := authorize(domain.KindBooking, domain.ActionList, identity, nil); err != nil {
		return nil, err
	}
	return uc.bookingRepo.FindAll(ctx)
}

func (uc *BookingUseCase) ListOwn(ctx context.Context, identity domain.Identity) ([]*domain.Booking, error) {
	if err := authorize(domain.KindBooking, domain.ActionListOwn, identity, nil); err != nil {
		return nil, err
	}
	return uc.bookingRepo.FindByUserID(ctx, identity.UserID())
}

func (uc *BookingUseCase) Get(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := authorize(domain.KindBooking, domain.ActionRetrieve, identity, &domain.OwnerRef{UserID: booking.UserID()}); err != nil {
		return nil, err
	}
	return booking, nil
}

// Create は呼び出し元のIdentityで予約を作成する
// 同一 (user, pool) の予約が既に存在する場合、DBのユニーク制約違反が
// domain.ErrBookingExistsとして返り、ハンドラ層で専用のエラーボディに変換される
func (uc *BookingUseCase) Create(ctx context.Context, identity domain.Identity, poolSlug domain.Slug) (*domain.Booking, error) {
	if err := authorize(domain.KindBooking, domain.ActionCreate, identity, nil); err != nil {
		return nil, err
	}

	if _, err := uc.poolRepo.FindBySlug(ctx, poolSlug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}

	booking, err := domain.NewBooking(ctx, identity, poolSlug)
	if err != nil {
		return nil, err
	}

	if err := uc.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Update は所有者による予約の更新
// 更新者・更新時刻は常に呼び出し元のIdentityと現在時刻で刻印される
func (uc *BookingUseCase) Update(ctx context.Context, identity domain.Identity, slug domain.Slug) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := authorize(domain.KindBooking, domain.ActionUpdate, identity, &domain.OwnerRef{UserID: booking.UserID()}); err != nil {
		return nil, err
	}

	booking.Touch(ctx, identity)

	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (uc *BookingUseCase) Delete(ctx context.Context, identity domain.Identity, slug domain.Slug) error {
	booking, err := uc.bookingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := authorize(domain.KindBooking, domain.ActionDelete, identity, &domain.OwnerRef{UserID: booking.UserID()}); err != nil {
		return err
	}
	return uc.bookingRepo.Delete(ctx, slug)
}
