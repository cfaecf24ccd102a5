//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_pool_repository.go -package=domain
package domain

import "context"

// PoolRepository はプールの永続化を担う
// FindAll / FindBySlug が返すPoolは averageRating を含めて復元される
type PoolRepository interface {
	FindBySlug(ctx context.Context, slug Slug) (*Pool, error)
	FindAll(ctx context.Context) ([]*Pool, error)
	Save(ctx context.Context, pool *Pool) error
	Update(ctx context.Context, pool *Pool) error
	Delete(ctx context.Context, slug Slug) error
}
