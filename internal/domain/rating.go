package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

// Rating は1ユーザーの1プールに対する評価を表すエンティティ
// Bookingと同様、(userID, poolSlug) から導出されるスラッグの
// ユニーク制約が二重評価を防ぐ
type Rating struct {
	slug      Slug
	userID    uuid.UUID
	poolSlug  Slug
	value     RatingValue
	createdAt time.Time
}

// NewRating は呼び出し元のIdentityで新規評価を作成する
func NewRating(ctx context.Context, owner Identity, poolSlug Slug, value RatingValue) (*Rating, error) {
	if !owner.IsAuthenticated() {
		return nil, ErrEmptyUserID
	}
	slug, err := OwnerPoolSlug(owner.UserID(), poolSlug)
	if err != nil {
		return nil, err
	}
	return &Rating{
		slug:      slug,
		userID:    owner.UserID(),
		poolSlug:  poolSlug,
		value:     value,
		createdAt: ctxtime.Now(ctx),
	}, nil
}

// ReconstructRating は永続化済みのレコードからRatingを復元する
func ReconstructRating(slug Slug, userID uuid.UUID, poolSlug Slug, value RatingValue, createdAt time.Time) *Rating {
	return &Rating{
		slug:      slug,
		userID:    userID,
		poolSlug:  poolSlug,
		value:     value,
		createdAt: createdAt,
	}
}

// Revalue は評価値を変更する
func (r *Rating) Revalue(value RatingValue) {
	r.value = value
}

func (r *Rating) Slug() Slug {
	return r.slug
}

func (r *Rating) UserID() uuid.UUID {
	return r.userID
}

func (r *Rating) PoolSlug() Slug {
	return r.poolSlug
}

func (r *Rating) Value() RatingValue {
	return r.value
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}
