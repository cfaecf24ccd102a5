package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/poolbook/internal/domain"
)

type FileUploadRepositoryImpl struct {
	dao *FileUploadDAO
}

func NewFileUploadRepository(pool PoolInterface) domain.FileUploadRepository {
	return &FileUploadRepositoryImpl{
		dao: NewFileUploadDAO(pool),
	}
}

func (r *FileUploadRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileUpload, error) {
	row, err := r.dao.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return fileUploadRowToDomain(row)
}

func (r *FileUploadRepositoryImpl) FindAll(ctx context.Context) ([]*domain.FileUpload, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uploads := make([]*domain.FileUpload, 0, len(rows))
	for _, row := range rows {
		upload, err := fileUploadRowToDomain(row)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

func (r *FileUploadRepositoryImpl) Save(ctx context.Context, upload *domain.FileUpload) error {
	return r.dao.Insert(ctx, fileUploadDomainToRow(upload))
}

func (r *FileUploadRepositoryImpl) Update(ctx context.Context, upload *domain.FileUpload) error {
	err := r.dao.Update(ctx, fileUploadDomainToRow(upload))
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func (r *FileUploadRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.dao.Delete(ctx, id.String())
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func fileUploadRowToDomain(row *FileUploadRow) (*domain.FileUpload, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}

	uploadedBy, err := uuid.Parse(row.UploadedBy)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructFileUpload(id, row.FileName, row.ContentType, row.Size, row.StorageKey, uploadedBy, row.UploadedAt), nil
}

func fileUploadDomainToRow(upload *domain.FileUpload) *FileUploadRow {
	return &FileUploadRow{
		ID:          upload.ID().String(),
		FileName:    upload.FileName(),
		ContentType: upload.ContentType(),
		Size:        upload.Size(),
		StorageKey:  upload.StorageKey(),
		UploadedBy:  upload.UploadedBy().String(),
		UploadedAt:  upload.UploadedAt(),
	}
}
