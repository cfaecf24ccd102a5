package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/na2na-p/poolbook/internal/domain"
)

// PoolResponse はプール1件のレスポンスボディ
type PoolResponse struct {
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	AverageRating *float64   `json:"average_rating"`
	CreatedBy     uuid.UUID  `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedBy     *uuid.UUID `json:"updated_by"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewPoolResponse(pool *domain.Pool) PoolResponse {
	return PoolResponse{
		Slug:          pool.Slug().String(),
		Name:          pool.Name(),
		AverageRating: pool.AverageRating(),
		CreatedBy:     pool.CreatedBy(),
		CreatedAt:     pool.CreatedAt(),
		UpdatedBy:     pool.UpdatedBy(),
		UpdatedAt:     pool.UpdatedAt(),
	}
}

func NewPoolListResponse(pools []*domain.Pool) []PoolResponse {
	responses := make([]PoolResponse, 0, len(pools))
	for _, pool := range pools {
		responses = append(responses, NewPoolResponse(pool))
	}
	return responses
}

// BookingResponse は予約1件のレスポンスボディ
type BookingResponse struct {
	Slug      string     `json:"slug"`
	User      uuid.UUID  `json:"user"`
	Pool      string     `json:"pool"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedBy *uuid.UUID `json:"updated_by"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		Slug:      booking.Slug().String(),
		User:      booking.UserID(),
		Pool:      booking.PoolSlug().String(),
		CreatedAt: booking.CreatedAt(),
		UpdatedBy: booking.UpdatedBy(),
		UpdatedAt: booking.UpdatedAt(),
	}
}

func NewBookingListResponse(bookings []*domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, NewBookingResponse(booking))
	}
	return responses
}

// RatingResponse は評価1件のレスポンスボディ
type RatingResponse struct {
	Slug      string    `json:"slug"`
	User      uuid.UUID `json:"user"`
	Pool      string    `json:"pool"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRatingResponse(rating *domain.Rating) RatingResponse {
	return RatingResponse{
		Slug:      rating.Slug().String(),
		User:      rating.UserID(),
		Pool:      rating.PoolSlug().String(),
		Value:     rating.Value().Int(),
		CreatedAt: rating.CreatedAt(),
	}
}

func NewRatingListResponse(ratings []*domain.Rating) []RatingResponse {
	responses := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, NewRatingResponse(rating))
	}
	return responses
}

// UserResponse はユーザー1件のレスポンスボディ
// パスワードハッシュは決して含めない
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID(),
		Email:     user.Email(),
		Username:  user.Username(),
		IsAdmin:   user.IsAdmin(),
		CreatedAt: user.CreatedAt(),
	}
}

func NewUserListResponse(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

// FileUploadResponse はアップロード済みファイルのメタデータ
type FileUploadResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func NewFileUploadResponse(upload *domain.FileUpload) FileUploadResponse {
	return FileUploadResponse{
		ID:          upload.ID(),
		FileName:    upload.FileName(),
		ContentType: upload.ContentType(),
		Size:        upload.Size(),
		UploadedBy:  upload.UploadedBy(),
		UploadedAt:  upload.UploadedAt(),
	}
}

func NewFileUploadListResponse(uploads []*domain.FileUpload) []FileUploadResponse {
	responses := make([]FileUploadResponse, 0, len(uploads))
	for _, upload := range uploads {
		responses = append(responses, NewFileUploadResponse(upload))
	}
	return responses
}
