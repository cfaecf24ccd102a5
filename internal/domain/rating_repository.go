//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_rating_repository.go -package=domain
package domain

import (
	"context"

	"github.com/google/uuid"
)

// RatingRepository は評価の永続化を担う
// Saveは同一 (user, pool) の評価が既に存在する場合にErrRatingExistsを返す
type RatingRepository interface {
	FindBySlug(ctx context.Context, slug Slug) (*Rating, error)
	FindAll(ctx context.Context) ([]*Rating, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Rating, error)
	Save(ctx context.Context, rating *Rating) error
	Update(ctx context.Context, rating *Rating) error
	Delete(ctx context.Context, slug Slug) error
}
