package postgres

import (
	"context"
	"time"
)

type FileUploadDAO struct {
	pool PoolInterface
}

type FileUploadRow struct {
	ID          string
	FileName    string
	ContentType string
	Size        int64
	StorageKey  string
	UploadedBy  string
	UploadedAt  time.Time
}

func NewFileUploadDAO(pool PoolInterface) *FileUploadDAO {
	return &FileUploadDAO{pool: pool}
}

func (dao *FileUploadDAO) FindByID(ctx context.Context, id string) (*FileUploadRow, error) {
	query := `
		SELECT id, file_name, content_type, size, storage_key, uploaded_by, uploaded_at
		FROM file_uploads
		WHERE id = $1
	`

	row := dao.pool.QueryRow(ctx, query, id)

	var result FileUploadRow
	err := row.Scan(
		&result.ID,
		&result.FileName,
		&result.ContentType,
		&result.Size,
		&result.StorageKey,
		&result.UploadedBy,
		&result.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *FileUploadDAO) FindAll(ctx context.Context) ([]*FileUploadRow, error) {
	query := `
		SELECT id, file_name, content_type, size, storage_key, uploaded_by, uploaded_at
		FROM file_uploads
		ORDER BY uploaded_at DESC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*FileUploadRow
	for rows.Next() {
		var result FileUploadRow
		if err := rows.Scan(
			&result.ID,
			&result.FileName,
			&result.ContentType,
			&result.Size,
			&result.StorageKey,
			&result.UploadedBy,
			&result.UploadedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (dao *FileUploadDAO) Insert(ctx context.Context, row *FileUploadRow) error {
	query := `
		INSERT INTO file_uploads (id, file_name, content_type, size, storage_key, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.FileName,
		row.ContentType,
		row.Size,
		row.StorageKey,
		row.UploadedBy,
		row.UploadedAt,
	)
	return err
}

func (dao *FileUploadDAO) Update(ctx context.Context, row *FileUploadRow) error {
	query := `
		UPDATE file_uploads
		SET file_name = $2, content_type = $3, size = $4, storage_key = $5, uploaded_at = $6
		WHERE id = $1
	`

	tag, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.FileName,
		row.ContentType,
		row.Size,
		row.StorageKey,
		row.UploadedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}

func (dao *FileUploadDAO) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM file_uploads WHERE id = $1`

	tag, err := dao.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}
