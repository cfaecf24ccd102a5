package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

// Pool は予約可能なリソースを表すエンティティ
// averageRating は関連するRatingの平均から導出される読み取り専用の値で、
// 評価が1件もない場合はnil
type Pool struct {
	slug          Slug
	name          string
	createdBy     uuid.UUID
	createdAt     time.Time
	updatedBy     *uuid.UUID
	updatedAt     time.Time
	averageRating *float64
}

// NewPool は新規プールを作成する
// スラッグは名前から導出され、作成後は不変
func NewPool(ctx context.Context, name string, createdBy Identity) (*Pool, error) {
	if name == "" {
		return nil, ErrEmptyPoolName
	}
	slug, err := Slugify(name)
	if err != nil {
		return nil, err
	}
	now := ctxtime.Now(ctx)
	return &Pool{
		slug:      slug,
		name:      name,
		createdBy: createdBy.UserID(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructPool は永続化済みのレコードからPoolを復元する
func ReconstructPool(slug Slug, name string, createdBy uuid.UUID, createdAt time.Time, updatedBy *uuid.UUID, updatedAt time.Time, averageRating *float64) *Pool {
	return &Pool{
		slug:          slug,
		name:          name,
		createdBy:     createdBy,
		createdAt:     createdAt,
		updatedBy:     updatedBy,
		updatedAt:     updatedAt,
		averageRating: averageRating,
	}
}

// Rename はプール名を変更し、更新者と更新時刻を記録する
// クライアントから渡された更新者・更新時刻は無視され、常に呼び出し元のIdentityで上書きされる
func (p *Pool) Rename(ctx context.Context, name string, updatedBy Identity) error {
	if name == "" {
		return ErrEmptyPoolName
	}
	p.name = name
	id := updatedBy.UserID()
	p.updatedBy = &id
	p.updatedAt = ctxtime.Now(ctx)
	return nil
}

func (p *Pool) Slug() Slug {
	return p.slug
}

func (p *Pool) Name() string {
	return p.name
}

func (p *Pool) CreatedBy() uuid.UUID {
	return p.createdBy
}

func (p *Pool) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Pool) UpdatedBy() *uuid.UUID {
	return p.updatedBy
}

func (p *Pool) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Pool) AverageRating() *float64 {
	return p.averageRating
}
