package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type BookingDAO struct {
	pool PoolInterface
}

type BookingRow struct {
	Slug      string
	UserID    string
	PoolSlug  string
	CreatedAt time.Time
	UpdatedBy *string
	UpdatedAt time.Time
}

func NewBookingDAO(pool PoolInterface) *BookingDAO {
	return &BookingDAO{pool: pool}
}

func (dao *BookingDAO) FindBySlug(ctx context.Context, slug string) (*BookingRow, error) {
	query := `
		SELECT slug, user_id, pool_slug, created_at, updated_by, updated_at
		FROM bookings
		WHERE slug = $1
	`

	row := dao.pool.QueryRow(ctx, query, slug)

	var result BookingRow
	err := row.Scan(
		&result.Slug,
		&result.UserID,
		&result.PoolSlug,
		&result.CreatedAt,
		&result.UpdatedBy,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *BookingDAO) FindAll(ctx context.Context) ([]*BookingRow, error) {
	query := `
		SELECT slug, user_id, pool_slug, created_at, updated_by, updated_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return dao.collect(rows)
}

// FindByUserID は指定ユーザーの予約を作成日時の降順で返す
func (dao *BookingDAO) FindByUserID(ctx context.Context, userID string) ([]*BookingRow, error) {
	query := `
		SELECT slug, user_id, pool_slug, created_at, updated_by, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return dao.collect(rows)
}

func (dao *BookingDAO) Insert(ctx context.Context, row *BookingRow) error {
	query := `
		INSERT INTO bookings (slug, user_id, pool_slug, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Slug,
		row.UserID,
		row.PoolSlug,
		row.CreatedAt,
		row.UpdatedBy,
		row.UpdatedAt,
	)
	return err
}

func (dao *BookingDAO) Update(ctx context.Context, row *BookingRow) error {
	query := `
		UPDATE bookings
		SET updated_by = $2, updated_at = $3
		WHERE slug = $1
	`

	tag, err := dao.pool.Exec(ctx, query,
		row.Slug,
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

func (dao *BookingDAO) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM bookings WHERE slug = $1`

	tag, err := dao.pool.Exec(ctx, query, slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}

func (dao *BookingDAO) collect(rows pgx.Rows) ([]*BookingRow, error) {
	defer rows.Close()

	var results []*BookingRow
	for rows.Next() {
		var result BookingRow
		if err := rows.Scan(
			&result.Slug,
			&result.UserID,
			&result.PoolSlug,
			&result.CreatedAt,
			&result.UpdatedBy,
			&result.UpdatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}
