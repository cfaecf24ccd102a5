package postgres

import (
	"context"
	"time"
)

type UserDAO struct {
	pool PoolInterface
}

type UserRow struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

func NewUserDAO(pool PoolInterface) *UserDAO {
	return &UserDAO{pool: pool}
}

func (dao *UserDAO) FindByID(ctx context.Context, id string) (*UserRow, error) {
	query := `
		SELECT id, email, username, password_hash, is_admin, created_at
		FROM users
		WHERE id = $1
	`

	return dao.scanRow(dao.pool.QueryRow(ctx, query, id))
}

func (dao *UserDAO) FindByEmail(ctx context.Context, email string) (*UserRow, error) {
	query := `
		SELECT id, email, username, password_hash, is_admin, created_at
		FROM users
		WHERE email = $1
	`

	return dao.scanRow(dao.pool.QueryRow(ctx, query, email))
}

func (dao *UserDAO) FindAll(ctx context.Context) ([]*UserRow, error) {
	query := `
		SELECT id, email, username, password_hash, is_admin, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*UserRow
	for rows.Next() {
		var result UserRow
		if err := rows.Scan(
			&result.ID,
			&result.Email,
			&result.Username,
			&result.PasswordHash,
			&result.IsAdmin,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (dao *UserDAO) Insert(ctx context.Context, row *UserRow) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Email,
		row.Username,
		row.PasswordHash,
		row.IsAdmin,
		row.CreatedAt,
	)
	return err
}

func (dao *UserDAO) scanRow(row interface{ Scan(dest ...any) error }) (*UserRow, error) {
	var result UserRow
	err := row.Scan(
		&result.ID,
		&result.Email,
		&result.Username,
		&result.PasswordHash,
		&result.IsAdmin,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
