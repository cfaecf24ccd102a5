package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/infrastructure/postgres"
)

func TestUserRepositoryImpl_Save(t *testing.T) {
	userID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	user := domain.ReconstructUser(
		userID, "alice@example.com", "alice",
		"$2a$10$abcdefghijklmnopqrstuv", false, createdAt,
	)

	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{
			name: "正常系: ユーザーの保存に成功",
		},
		{
			name:       "異常系: メールアドレス重複はErrEmailTakenに変換される",
			constraint: "users_email_key",
			wantErr:    domain.ErrEmailTaken,
		},
		{
			name:       "異常系: ユーザー名重複はErrUsernameTakenに変換される",
			constraint: "users_username_key",
			wantErr:    domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("pgxmock.NewPool() failed: %v", err)
			}
			defer mock.Close()

			expect := mock.ExpectExec(`INSERT INTO users`).
				WithArgs(
					userID.String(),
					"alice@example.com",
					"alice",
					pgxmock.AnyArg(),
					false,
					pgxmock.AnyArg(),
				)
			if tt.constraint != "" {
				expect.WillReturnError(&pgconn.PgError{
					Code:           "23505",
					ConstraintName: tt.constraint,
				})
			} else {
				expect.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			repo := postgres.NewUserRepository(mock)

			err = repo.Save(context.Background(), user)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	t.Run("異常系: 未登録のメールアドレスはErrNotFoundになる", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool() failed: %v", err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, email, username, password_hash, is_admin, created_at\s+FROM users`).
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		_, err = repo.FindByEmail(context.Background(), "ghost@example.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want error %v, but got %v", domain.ErrNotFound, err)
		}
	})
}
