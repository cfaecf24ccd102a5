//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_file_upload_usecase.go -package=usecase
package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/na2na-p/poolbook/internal/domain"
)

// FileUploadUseCaseInterface はファイルアップロードのユースケース
// 全操作が管理者のみ。本体はオブジェクトストレージ、メタデータはDBに置く
type FileUploadUseCaseInterface interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.FileUpload, error)
	Get(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.FileUpload, io.ReadCloser, error)
	Create(ctx context.Context, identity domain.Identity, fileName, contentType string, size int64, body io.Reader) (*domain.FileUpload, error)
	Update(ctx context.Context, identity domain.Identity, id uuid.UUID, fileName, contentType string, size int64, body io.Reader) (*domain.FileUpload, error)
	Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

type FileUploadUseCase struct {
	uploadRepo domain.FileUploadRepository
	storage    ObjectStorage
}

var _ FileUploadUseCaseInterface = (*FileUploadUseCase)(nil)

func NewFileUploadUseCase(uploadRepo domain.FileUploadRepository, storage ObjectStorage) *FileUploadUseCase {
	return &FileUploadUseCase{
		uploadRepo: uploadRepo,
		storage:    storage,
	}
}

func (uc *FileUploadUseCase) List(ctx context.Context, identity domain.Identity) ([]*domain.FileUpload, error) {
	if err := authorize(domain.KindFileUpload, domain.ActionList, identity, nil); err != nil {
		return nil, err
	}
	return uc.uploadRepo.FindAll(ctx)
}

func (uc *FileUploadUseCase) Get(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.FileUpload, io.ReadCloser, error) {
	if err := authorize(domain.KindFileUpload, domain.ActionRetrieve, identity, nil); err != nil {
		return nil, nil, err
	}

	upload, err := uc.uploadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := uc.storage.GetObject(ctx, upload.StorageKey())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch uploaded file: %w", err)
	}
	return upload, body, nil
}

// Create は本体をオブジェクトストレージへ保存してからメタデータを永続化する
// メタデータの保存に失敗した場合は本体を削除して巻き戻す
func (uc *FileUploadUseCase) Create(ctx context.Context, identity domain.Identity, fileName, contentType string, size int64, body io.Reader) (*domain.FileUpload, error) {
	if err := authorize(domain.KindFileUpload, domain.ActionCreate, identity, nil); err != nil {
		return nil, err
	}

	upload, err := domain.NewFileUpload(ctx, fileName, contentType, size, identity)
	if err != nil {
		return nil, err
	}

	if err := uc.storage.PutObject(ctx, upload.StorageKey(), body, size); err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	if err := uc.uploadRepo.Save(ctx, upload); err != nil {
		_ = uc.storage.DeleteObject(ctx, upload.StorageKey())
		return nil, err
	}
	return upload, nil
}

// Update は本体とメタデータをまとめて差し替える
// 新しい本体を先に保存し、メタデータの更新に失敗した場合は新しい本体を削除して巻き戻す
// 成功時はファイル名の変更で不要になった旧キーの本体を削除する
func (uc *FileUploadUseCase) Update(ctx context.Context, identity domain.Identity, id uuid.UUID, fileName, contentType string, size int64, body io.Reader) (*domain.FileUpload, error) {
	if err := authorize(domain.KindFileUpload, domain.ActionUpdate, identity, nil); err != nil {
		return nil, err
	}

	upload, err := uc.uploadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldKey := upload.StorageKey()
	if err := upload.Replace(ctx, fileName, contentType, size); err != nil {
		return nil, err
	}

	if err := uc.storage.PutObject(ctx, upload.StorageKey(), body, size); err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	if err := uc.uploadRepo.Update(ctx, upload); err != nil {
		if upload.StorageKey() != oldKey {
			_ = uc.storage.DeleteObject(ctx, upload.StorageKey())
		}
		return nil, err
	}

	if oldKey != upload.StorageKey() {
		if err := uc.storage.DeleteObject(ctx, oldKey); err != nil {
			return nil, fmt.Errorf("failed to delete replaced file: %w", err)
		}
	}
	return upload, nil
}

func (uc *FileUploadUseCase) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if err := authorize(domain.KindFileUpload, domain.ActionDelete, identity, nil); err != nil {
		return err
	}

	upload, err := uc.uploadRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.uploadRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.storage.DeleteObject(ctx, upload.StorageKey()); err != nil {
		return fmt.Errorf("failed to delete uploaded file: %w", err)
	}
	return nil
}
