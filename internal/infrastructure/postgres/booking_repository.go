package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/poolbook/internal/domain"
)

type BookingRepositoryImpl struct {
	dao *BookingDAO
}

func NewBookingRepository(pool PoolInterface) domain.BookingRepository {
	return &BookingRepositoryImpl{
		dao: NewBookingDAO(pool),
	}
}

func (r *BookingRepositoryImpl) FindBySlug(ctx context.Context, slug domain.Slug) (*domain.Booking, error) {
	row, err := r.dao.FindBySlug(ctx, slug.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return bookingRowToDomain(row)
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Booking, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return bookingRowsToDomain(rows)
}

func (r *BookingRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	rows, err := r.dao.FindByUserID(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	return bookingRowsToDomain(rows)
}

// Save は予約を保存する
// (user, pool) から導出されるスラッグのユニーク制約違反は
// domain.ErrBookingExistsに変換され、二重予約の検出に使われる
func (r *BookingRepositoryImpl) Save(ctx context.Context, booking *domain.Booking) error {
	err := r.dao.Insert(ctx, bookingDomainToRow(booking))
	if _, ok := uniqueViolation(err); ok {
		return domain.ErrBookingExists
	}
	return err
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *domain.Booking) error {
	err := r.dao.Update(ctx, bookingDomainToRow(booking))
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, slug domain.Slug) error {
	err := r.dao.Delete(ctx, slug.String())
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func bookingRowToDomain(row *BookingRow) (*domain.Booking, error) {
	slug, err := domain.NewSlug(row.Slug)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(row.UserID)
	if err != nil {
		return nil, err
	}

	poolSlug, err := domain.NewSlug(row.PoolSlug)
	if err != nil {
		return nil, err
	}

	var updatedBy *uuid.UUID
	if row.UpdatedBy != nil {
		id, err := uuid.Parse(*row.UpdatedBy)
		if err != nil {
			return nil, err
		}
		updatedBy = &id
	}

	return domain.ReconstructBooking(slug, userID, poolSlug, row.CreatedAt, updatedBy, row.UpdatedAt), nil
}

func bookingRowsToDomain(rows []*BookingRow) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(rows))
	for _, row := range rows {
		booking, err := bookingRowToDomain(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func bookingDomainToRow(booking *domain.Booking) *BookingRow {
	var updatedBy *string
	if booking.UpdatedBy() != nil {
		s := booking.UpdatedBy().String()
		updatedBy = &s
	}

	return &BookingRow{
		Slug:      booking.Slug().String(),
		UserID:    booking.UserID().String(),
		PoolSlug:  booking.PoolSlug().String(),
		CreatedAt: booking.CreatedAt(),
		UpdatedBy: updatedBy,
		UpdatedAt: booking.UpdatedAt(),
	}
}
