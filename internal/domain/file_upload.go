package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

// FileUpload はアップロードされたファイルのメタデータを表すエンティティ
// 本体のバイナリはオブジェクトストレージに置かれ、ここではストレージキーのみを持つ
type FileUpload struct {
	id          uuid.UUID
	fileName    string
	contentType string
	size        int64
	storageKey  string
	uploadedBy  uuid.UUID
	uploadedAt  time.Time
}

// NewFileUpload は新規アップロードのメタデータを作成する
func NewFileUpload(ctx context.Context, fileName, contentType string, size int64, uploadedBy Identity) (*FileUpload, error) {
	if fileName == "" {
		return nil, ErrEmptyFileName
	}
	id := uuid.New()
	return &FileUpload{
		id:          id,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		storageKey:  fmt.Sprintf("uploads/%s/%s", id, fileName),
		uploadedBy:  uploadedBy.UserID(),
		uploadedAt:  ctxtime.Now(ctx),
	}, nil
}

// Replace は本体の差し替えに合わせてメタデータを更新する
// ストレージキーはファイル名から導出し直し、アップロード時刻も打ち直す
func (f *FileUpload) Replace(ctx context.Context, fileName, contentType string, size int64) error {
	if fileName == "" {
		return ErrEmptyFileName
	}
	f.fileName = fileName
	f.contentType = contentType
	f.size = size
	f.storageKey = fmt.Sprintf("uploads/%s/%s", f.id, fileName)
	f.uploadedAt = ctxtime.Now(ctx)
	return nil
}

// ReconstructFileUpload は永続化済みのレコードからFileUploadを復元する
func ReconstructFileUpload(id uuid.UUID, fileName, contentType string, size int64, storageKey string, uploadedBy uuid.UUID, uploadedAt time.Time) *FileUpload {
	return &FileUpload{
		id:          id,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		storageKey:  storageKey,
		uploadedBy:  uploadedBy,
		uploadedAt:  uploadedAt,
	}
}

func (f *FileUpload) ID() uuid.UUID {
	return f.id
}

func (f *FileUpload) FileName() string {
	return f.fileName
}

func (f *FileUpload) ContentType() string {
	return f.contentType
}

func (f *FileUpload) Size() int64 {
	return f.size
}

func (f *FileUpload) StorageKey() string {
	return f.storageKey
}

func (f *FileUpload) UploadedBy() uuid.UUID {
	return f.uploadedBy
}

func (f *FileUpload) UploadedAt() time.Time {
	return f.uploadedAt
}
