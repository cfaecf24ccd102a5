package postgres

import (
	"context"
	"time"
)

type PoolDAO struct {
	pool PoolInterface
}

type PoolRow struct {
	Slug          string
	Name          string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedBy     *string
	UpdatedAt     time.Time
	AverageRating *float64
}

func NewPoolDAO(pool PoolInterface) *PoolDAO {
	return &PoolDAO{pool: pool}
}

// FindBySlug はプールを評価の平均値つきで取得する
// 評価が1件もない場合、average_ratingはNULLになる
func (dao *PoolDAO) FindBySlug(ctx context.Context, slug string) (*PoolRow, error) {
	query := `
		SELECT p.slug, p.name, p.created_by, p.created_at, p.updated_by, p.updated_at,
		       AVG(r.value)::float8 AS average_rating
		FROM pools p
		LEFT JOIN ratings r ON r.pool_slug = p.slug
		WHERE p.slug = $1
		GROUP BY p.slug, p.name, p.created_by, p.created_at, p.updated_by, p.updated_at
	`

	row := dao.pool.QueryRow(ctx, query, slug)

	var result PoolRow
	err := row.Scan(
		&result.Slug,
		&result.Name,
		&result.CreatedBy,
		&result.CreatedAt,
		&result.UpdatedBy,
		&result.UpdatedAt,
		&result.AverageRating,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *PoolDAO) FindAll(ctx context.Context) ([]*PoolRow, error) {
	query := `
		SELECT p.slug, p.name, p.created_by, p.created_at, p.updated_by, p.updated_at,
		       AVG(r.value)::float8 AS average_rating
		FROM pools p
		LEFT JOIN ratings r ON r.pool_slug = p.slug
		GROUP BY p.slug, p.name, p.created_by, p.created_at, p.updated_by, p.updated_at
		ORDER BY p.created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*PoolRow
	for rows.Next() {
		var result PoolRow
		if err := rows.Scan(
			&result.Slug,
			&result.Name,
			&result.CreatedBy,
			&result.CreatedAt,
			&result.UpdatedBy,
			&result.UpdatedAt,
			&result.AverageRating,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (dao *PoolDAO) Insert(ctx context.Context, row *PoolRow) error {
	query := `
		INSERT INTO pools (slug, name, created_by, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Slug,
		row.Name,
		row.CreatedBy,
		row.CreatedAt,
		row.UpdatedBy,
		row.UpdatedAt,
	)
	return err
}

func (dao *PoolDAO) Update(ctx context.Context, row *PoolRow) error {
	query := `
		UPDATE pools
		SET name = $2, updated_by = $3, updated_at = $4
		WHERE slug = $1
	`

	tag, err := dao.pool.Exec(ctx, query,
		row.Slug,
		row.Name,
		row.UpdatedBy,
		row.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}

func (dao *PoolDAO) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM pools WHERE slug = $1`

	tag, err := dao.pool.Exec(ctx, query, slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}
