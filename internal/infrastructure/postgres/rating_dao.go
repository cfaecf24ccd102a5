package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type RatingDAO struct {
	pool PoolInterface
}

type RatingRow struct {
	Slug      string
	UserID    string
	PoolSlug  string
	Value     int
	CreatedAt time.Time
}

func NewRatingDAO(pool PoolInterface) *RatingDAO {
	return &RatingDAO{pool: pool}
}

func (dao *RatingDAO) FindBySlug(ctx context.Context, slug string) (*RatingRow, error) {
	query := `
		SELECT slug, user_id, pool_slug, value, created_at
		FROM ratings
		WHERE slug = $1
	`

	row := dao.pool.QueryRow(ctx, query, slug)

	var result RatingRow
	err := row.Scan(
		&result.Slug,
		&result.UserID,
		&result.PoolSlug,
		&result.Value,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *RatingDAO) FindAll(ctx context.Context) ([]*RatingRow, error) {
	query := `
		SELECT slug, user_id, pool_slug, value, created_at
		FROM ratings
		ORDER BY created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return dao.collect(rows)
}

func (dao *RatingDAO) FindByUserID(ctx context.Context, userID string) ([]*RatingRow, error) {
	query := `
		SELECT slug, user_id, pool_slug, value, created_at
		FROM ratings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return dao.collect(rows)
}

func (dao *RatingDAO) Insert(ctx context.Context, row *RatingRow) error {
	query := `
		INSERT INTO ratings (slug, user_id, pool_slug, value, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Slug,
		row.UserID,
		row.PoolSlug,
		row.Value,
		row.CreatedAt,
	)
	return err
}

func (dao *RatingDAO) Update(ctx context.Context, row *RatingRow) error {
	query := `
		UPDATE ratings
		SET value = $2
		WHERE slug = $1
	`

	tag, err := dao.pool.Exec(ctx, query, row.Slug, row.Value)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}

func (dao *RatingDAO) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM ratings WHERE slug = $1`

	tag, err := dao.pool.Exec(ctx, query, slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}

func (dao *RatingDAO) collect(rows pgx.Rows) ([]*RatingRow, error) {
	defer rows.Close()

	var results []*RatingRow
	for rows.Next() {
		var result RatingRow
		if err := rows.Scan(
			&result.Slug,
			&result.UserID,
			&result.PoolSlug,
			&result.Value,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}
