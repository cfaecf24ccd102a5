//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_file_upload_repository.go -package=domain
package domain

import (
	"context"

	"github.com/google/uuid"
)

type FileUploadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FileUpload, error)
	FindAll(ctx context.Context) ([]*FileUpload, error)
	Save(ctx context.Context, upload *FileUpload) error
	Update(ctx context.Context, upload *FileUpload) error
	Delete(ctx context.Context, id uuid.UUID) error
}
