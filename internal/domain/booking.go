package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

// Booking は1ユーザーの1プールに対する予約を表すエンティティ
// スラッグは (userID, poolSlug) から導出され、ユニーク制約が
// 同一ペアの二重予約を防ぐ
type Booking struct {
	slug      Slug
	userID    uuid.UUID
	poolSlug  Slug
	createdAt time.Time
	updatedBy *uuid.UUID
	updatedAt time.Time
}

// NewBooking は呼び出し元のIdentityで新規予約を作成する
// リクエストボディでuserが指定されていても必ず呼び出し元が予約者になる
func NewBooking(ctx context.Context, owner Identity, poolSlug Slug) (*Booking, error) {
	if !owner.IsAuthenticated() {
		return nil, ErrEmptyUserID
	}
	slug, err := OwnerPoolSlug(owner.UserID(), poolSlug)
	if err != nil {
		return nil, err
	}
	now := ctxtime.Now(ctx)
	return &Booking{
		slug:      slug,
		userID:    owner.UserID(),
		poolSlug:  poolSlug,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking は永続化済みのレコードからBookingを復元する
func ReconstructBooking(slug Slug, userID uuid.UUID, poolSlug Slug, createdAt time.Time, updatedBy *uuid.UUID, updatedAt time.Time) *Booking {
	return &Booking{
		slug:      slug,
		userID:    userID,
		poolSlug:  poolSlug,
		createdAt: createdAt,
		updatedBy: updatedBy,
		updatedAt: updatedAt,
	}
}

// Touch は更新者と更新時刻を呼び出し元のIdentityで記録する
func (b *Booking) Touch(ctx context.Context, updatedBy Identity) {
	id := updatedBy.UserID()
	b.updatedBy = &id
	b.updatedAt = ctxtime.Now(ctx)
}

func (b *Booking) Slug() Slug {
	return b.slug
}

func (b *Booking) UserID() uuid.UUID {
	return b.userID
}

func (b *Booking) PoolSlug() Slug {
	return b.poolSlug
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedBy() *uuid.UUID {
	return b.updatedBy
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}
