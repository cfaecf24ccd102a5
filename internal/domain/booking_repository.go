//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_booking_repository.go -package=domain
package domain

import (
	"context"

	"github.com/google/uuid"
)

// BookingRepository は予約の永続化を担う
// Saveは同一 (user, pool) の予約が既に存在する場合にErrBookingExistsを返す
// 一覧系はいずれも作成日時の降順で返す
type BookingRepository interface {
	FindBySlug(ctx context.Context, slug Slug) (*Booking, error)
	FindAll(ctx context.Context) ([]*Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Booking, error)
	Save(ctx context.Context, booking *Booking) error
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, slug Slug) error
}
