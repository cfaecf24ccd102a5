package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/poolbook/internal/domain"
)

type PoolRepositoryImpl struct {
	dao *PoolDAO
}

func NewPoolRepository(pool PoolInterface) domain.PoolRepository {
	return &PoolRepositoryImpl{
		dao: NewPoolDAO(pool),
	}
}

func (r *PoolRepositoryImpl) FindBySlug(ctx context.Context, slug domain.Slug) (*domain.Pool, error) {
	row, err := r.dao.FindBySlug(ctx, slug.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return poolRowToDomain(row)
}

func (r *PoolRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Pool, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	pools := make([]*domain.Pool, 0, len(rows))
	for _, row := range rows {
		pool, err := poolRowToDomain(row)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

func (r *PoolRepositoryImpl) Save(ctx context.Context, pool *domain.Pool) error {
	err := r.dao.Insert(ctx, poolDomainToRow(pool))
	if _, ok := uniqueViolation(err); ok {
		return domain.ErrPoolExists
	}
	return err
}

func (r *PoolRepositoryImpl) Update(ctx context.Context, pool *domain.Pool) error {
	err := r.dao.Update(ctx, poolDomainToRow(pool))
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PoolRepositoryImpl) Delete(ctx context.Context, slug domain.Slug) error {
	err := r.dao.Delete(ctx, slug.String())
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func poolRowToDomain(row *PoolRow) (*domain.Pool, error) {
	slug, err := domain.NewSlug(row.Slug)
	if err != nil {
		return nil, err
	}

	createdBy, err := uuid.Parse(row.CreatedBy)
	if err != nil {
		return nil, err
	}

	var updatedBy *uuid.UUID
	if row.UpdatedBy != nil {
		id, err := uuid.Parse(*row.UpdatedBy)
		if err != nil {
			return nil, err
		}
		updatedBy = &id
	}

	return domain.ReconstructPool(slug, row.Name, createdBy, row.CreatedAt, updatedBy, row.UpdatedAt, row.AverageRating), nil
}

func poolDomainToRow(pool *domain.Pool) *PoolRow {
	var updatedBy *string
	if pool.UpdatedBy() != nil {
		s := pool.UpdatedBy().String()
		updatedBy = &s
	}

	return &PoolRow{
		Slug:      pool.Slug().String(),
		Name:      pool.Name(),
		CreatedBy: pool.CreatedBy().String(),
		CreatedAt: pool.CreatedAt(),
		UpdatedBy: updatedBy,
		UpdatedAt: pool.UpdatedAt(),
	}
}
