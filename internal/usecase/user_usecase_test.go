package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/usecase"
	mock_domain "github.com/na2na-p/poolbook/tests/domain"
)

func TestUserUseCase_List(t *testing.T) {
	adminID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	memberID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	t.Run("正常系: 管理者は全ユーザーを一覧できる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mock_domain.NewMockUserRepository(ctrl)
		ctx := context.Background()

		users := []*domain.User{
			storedUser(t, memberID, "alice@example.com", "alice", "s3cretpass"),
		}
		userRepo.EXPECT().FindAll(ctx).Return(users, nil)

		uc := usecase.NewUserUseCase(userRepo)
		admin := mustIdentity(t, adminID, "admin", true)

		got, err := uc.List(ctx, admin)
		if err != nil {
			t.Fatalf("List() failed: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len(users) = %d, want 1", len(got))
		}
	})

	t.Run("異常系: 一般ユーザーによる一覧は禁止", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mock_domain.NewMockUserRepository(ctrl)

		uc := usecase.NewUserUseCase(userRepo)
		member := mustIdentity(t, memberID, "alice", false)

		_, err := uc.List(context.Background(), member)
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("want error %v, but got %v", usecase.ErrForbidden, err)
		}
	})

	t.Run("異常系: 匿名アクセスは認証エラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mock_domain.NewMockUserRepository(ctrl)

		uc := usecase.NewUserUseCase(userRepo)

		_, err := uc.List(context.Background(), domain.AnonymousIdentity())
		if !errors.Is(err, usecase.ErrAuthenticationRequired) {
			t.Fatalf("want error %v, but got %v", usecase.ErrAuthenticationRequired, err)
		}
	})
}

func TestUserUseCase_Get(t *testing.T) {
	memberID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	t.Run("正常系: 匿名でも個別のユーザーを参照できる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mock_domain.NewMockUserRepository(ctrl)
		ctx := context.Background()

		stored := storedUser(t, otherID, "bob@example.com", "bob", "s3cretpass")
		userRepo.EXPECT().FindByID(ctx, otherID).Return(stored, nil)

		uc := usecase.NewUserUseCase(userRepo)

		got, err := uc.Get(ctx, domain.AnonymousIdentity(), otherID)
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if got.Username() != "bob" {
			t.Errorf("Username() = %q, want %q", got.Username(), "bob")
		}
	})

	t.Run("異常系: 存在しないユーザーはErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mock_domain.NewMockUserRepository(ctrl)
		ctx := context.Background()

		ghostID := uuid.MustParse("99999999-9999-9999-9999-999999999999")
		userRepo.EXPECT().FindByID(ctx, ghostID).Return(nil, domain.ErrNotFound)

		uc := usecase.NewUserUseCase(userRepo)
		member := mustIdentity(t, memberID, "alice", false)

		_, err := uc.Get(ctx, member, ghostID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want error %v, but got %v", domain.ErrNotFound, err)
		}
	})
}
