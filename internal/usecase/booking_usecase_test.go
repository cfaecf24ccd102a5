package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/usecase"
	mock_domain "github.com/na2na-p/poolbook/tests/domain"
)

func mustIdentity(t *testing.T, userID uuid.UUID, username string, isAdmin bool) domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(userID, username, username+"@example.com", isAdmin)
	if err != nil {
		t.Fatalf("NewIdentity() failed: %v", err)
	}
	return identity
}

func mustSlug(t *testing.T, value string) domain.Slug {
	t.Helper()
	slug, err := domain.NewSlug(value)
	if err != nil {
		t.Fatalf("NewSlug() failed: %v", err)
	}
	return slug
}

func fixedTimeContext(t *testing.T, fixed time.Time) context.Context {
	t.Helper()
	tid := uuid.NewString()
	ctx := testid.WithValue(context.Background(), tid)
	ctxtimetest.SetFixedNow(t, ctx, fixed)
	return ctx
}

func testPool(t *testing.T, slug string) *domain.Pool {
	t.Helper()
	createdAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return domain.ReconstructPool(mustSlug(t, slug), "Test Pool",
		uuid.MustParse("33333333-3333-3333-3333-333333333333"), createdAt, nil, createdAt, nil)
}

func TestBookingUseCase_Create(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixedTime := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	type fields struct {
		bookingRepo func(ctrl *gomock.Controller) domain.BookingRepository
		poolRepo    func(ctrl *gomock.Controller) domain.PoolRepository
	}
	type args struct {
		identity func(t *testing.T) domain.Identity
		poolSlug string
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr error
	}{
		{
			name: "正常系: 認証済みユーザーが予約を作成できる",
			fields: fields{
				bookingRepo: func(ctrl *gomock.Controller) domain.BookingRepository {
					mock := mock_domain.NewMockBookingRepository(ctrl)
					mock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
					return mock
				},
				poolRepo: func(ctrl *gomock.Controller) domain.PoolRepository {
					mock := mock_domain.NewMockPoolRepository(ctrl)
					mock.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(testPool(t, "olympic-pool"), nil)
					return mock
				},
			},
			args: args{
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
				poolSlug: "olympic-pool",
			},
		},
		{
			name: "異常系: 匿名ユーザーは予約を作成できない",
			fields: fields{
				bookingRepo: func(ctrl *gomock.Controller) domain.BookingRepository {
					return mock_domain.NewMockBookingRepository(ctrl)
				},
				poolRepo: func(ctrl *gomock.Controller) domain.PoolRepository {
					return mock_domain.NewMockPoolRepository(ctrl)
				},
			},
			args: args{
				identity: func(t *testing.T) domain.Identity { return domain.AnonymousIdentity() },
				poolSlug: "olympic-pool",
			},
			wantErr: usecase.ErrAuthenticationRequired,
		},
		{
			name: "異常系: 存在しないプールへの予約はエラーになる",
			fields: fields{
				bookingRepo: func(ctrl *gomock.Controller) domain.BookingRepository {
					return mock_domain.NewMockBookingRepository(ctrl)
				},
				poolRepo: func(ctrl *gomock.Controller) domain.PoolRepository {
					mock := mock_domain.NewMockPoolRepository(ctrl)
					mock.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
					return mock
				},
			},
			args: args{
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
				poolSlug: "ghost-pool",
			},
			wantErr: usecase.ErrPoolNotFound,
		},
		{
			name: "異常系: 二重予約はErrBookingExistsが返る",
			fields: fields{
				bookingRepo: func(ctrl *gomock.Controller) domain.BookingRepository {
					mock := mock_domain.NewMockBookingRepository(ctrl)
					mock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrBookingExists)
					return mock
				},
				poolRepo: func(ctrl *gomock.Controller) domain.PoolRepository {
					mock := mock_domain.NewMockPoolRepository(ctrl)
					mock.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(testPool(t, "olympic-pool"), nil)
					return mock
				},
			},
			args: args{
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
				poolSlug: "olympic-pool",
			},
			wantErr: domain.ErrBookingExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := usecase.NewBookingUseCase(tt.fields.bookingRepo(ctrl), tt.fields.poolRepo(ctrl))

			ctx := fixedTimeContext(t, fixedTime)
			booking, err := uc.Create(ctx, tt.args.identity(t), mustSlug(t, tt.args.poolSlug))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if booking.UserID() != ownerID {
				t.Errorf("UserID() = %v, want %v", booking.UserID(), ownerID)
			}
			if !booking.CreatedAt().Equal(fixedTime) {
				t.Errorf("CreatedAt() = %v, want %v", booking.CreatedAt(), fixedTime)
			}
		})
	}
}

func TestBookingUseCase_Get(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	storedBooking := func(t *testing.T) *domain.Booking {
		t.Helper()
		return domain.ReconstructBooking(
			mustSlug(t, "alice-olympic-pool"), ownerID, mustSlug(t, "olympic-pool"),
			createdAt, nil, createdAt,
		)
	}

	tests := []struct {
		name     string
		identity func(t *testing.T) domain.Identity
		wantErr  error
	}{
		{
			name:     "正常系: 所有者は自分の予約を取得できる",
			identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
		},
		{
			name:     "異常系: 他人の予約は取得できない",
			identity: func(t *testing.T) domain.Identity { return mustIdentity(t, otherID, "bob", false) },
			wantErr:  usecase.ErrForbidden,
		},
		{
			name:     "異常系: 匿名ユーザーは取得できない",
			identity: func(t *testing.T) domain.Identity { return domain.AnonymousIdentity() },
			wantErr:  usecase.ErrAuthenticationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookingRepo := mock_domain.NewMockBookingRepository(ctrl)
			bookingRepo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(storedBooking(t), nil)
			poolRepo := mock_domain.NewMockPoolRepository(ctrl)

			uc := usecase.NewBookingUseCase(bookingRepo, poolRepo)

			booking, err := uc.Get(context.Background(), tt.identity(t), mustSlug(t, "alice-olympic-pool"))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if booking.UserID() != ownerID {
				t.Errorf("UserID() = %v, want %v", booking.UserID(), ownerID)
			}
		})
	}
}

func TestBookingUseCase_ListOwn(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("正常系: 自分の予約のみが返る", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		own := domain.ReconstructBooking(
			mustSlug(t, "alice-olympic-pool"), ownerID, mustSlug(t, "olympic-pool"),
			createdAt, nil, createdAt,
		)
		bookingRepo := mock_domain.NewMockBookingRepository(ctrl)
		bookingRepo.EXPECT().FindByUserID(gomock.Any(), ownerID).Return([]*domain.Booking{own}, nil)

		uc := usecase.NewBookingUseCase(bookingRepo, mock_domain.NewMockPoolRepository(ctrl))

		bookings, err := uc.ListOwn(context.Background(), mustIdentity(t, ownerID, "alice", false))
		if err != nil {
			t.Fatalf("ListOwn() failed: %v", err)
		}
		if len(bookings) != 1 || bookings[0].UserID() != ownerID {
			t.Errorf("ListOwn() = %v, want single booking owned by %v", bookings, ownerID)
		}
	})

	t.Run("異常系: 匿名ユーザーはErrAuthenticationRequiredになる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := usecase.NewBookingUseCase(
			mock_domain.NewMockBookingRepository(ctrl),
			mock_domain.NewMockPoolRepository(ctrl),
		)

		_, err := uc.ListOwn(context.Background(), domain.AnonymousIdentity())
		if !errors.Is(err, usecase.ErrAuthenticationRequired) {
			t.Fatalf("want error %v, but got %v", usecase.ErrAuthenticationRequired, err)
		}
	})

	t.Run("異常系: 一般ユーザーは全件一覧を閲覧できない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := usecase.NewBookingUseCase(
			mock_domain.NewMockBookingRepository(ctrl),
			mock_domain.NewMockPoolRepository(ctrl),
		)

		_, err := uc.List(context.Background(), mustIdentity(t, ownerID, "alice", false))
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("want error %v, but got %v", usecase.ErrForbidden, err)
		}
	})
}

func TestBookingUseCase_Delete(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("正常系: 所有者は自分の予約を削除できる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stored := domain.ReconstructBooking(
			mustSlug(t, "alice-olympic-pool"), ownerID, mustSlug(t, "olympic-pool"),
			createdAt, nil, createdAt,
		)
		bookingRepo := mock_domain.NewMockBookingRepository(ctrl)
		bookingRepo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(stored, nil)
		bookingRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		uc := usecase.NewBookingUseCase(bookingRepo, mock_domain.NewMockPoolRepository(ctrl))

		if err := uc.Delete(context.Background(), mustIdentity(t, ownerID, "alice", false), mustSlug(t, "alice-olympic-pool")); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
	})

	t.Run("異常系: 他人の予約は削除できない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stored := domain.ReconstructBooking(
			mustSlug(t, "alice-olympic-pool"), ownerID, mustSlug(t, "olympic-pool"),
			createdAt, nil, createdAt,
		)
		bookingRepo := mock_domain.NewMockBookingRepository(ctrl)
		bookingRepo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(stored, nil)

		uc := usecase.NewBookingUseCase(bookingRepo, mock_domain.NewMockPoolRepository(ctrl))

		err := uc.Delete(context.Background(), mustIdentity(t, otherID, "bob", false), mustSlug(t, "alice-olympic-pool"))
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("want error %v, but got %v", usecase.ErrForbidden, err)
		}
	})
}
