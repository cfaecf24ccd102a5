package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/infrastructure/postgres"
)

func TestPoolRepositoryImpl_FindBySlug(t *testing.T) {
	adminID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	createdAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	columns := []string{"slug", "name", "created_by", "created_at", "updated_by", "updated_at", "average_rating"}

	t.Run("正常系: 評価ありのプールは平均値が設定される", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool() failed: %v", err)
		}
		defer mock.Close()

		avg := 4.5
		rows := pgxmock.NewRows(columns).
			AddRow("olympic-pool", "Olympic Pool", adminID.String(), createdAt, (*string)(nil), createdAt, &avg)
		mock.ExpectQuery(`SELECT p.slug, p.name, p.created_by`).
			WithArgs("olympic-pool").
			WillReturnRows(rows)

		repo := postgres.NewPoolRepository(mock)

		pool, err := repo.FindBySlug(context.Background(), mustSlug(t, "olympic-pool"))
		if err != nil {
			t.Fatalf("FindBySlug() failed: %v", err)
		}
		if pool.AverageRating() == nil || *pool.AverageRating() != avg {
			t.Errorf("AverageRating() = %v, want %v", pool.AverageRating(), avg)
		}
		if pool.Name() != "Olympic Pool" {
			t.Errorf("Name() = %q, want %q", pool.Name(), "Olympic Pool")
		}
	})

	t.Run("正常系: 評価なしのプールは平均値がnilになる", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool() failed: %v", err)
		}
		defer mock.Close()

		rows := pgxmock.NewRows(columns).
			AddRow("kiddie-pool", "Kiddie Pool", adminID.String(), createdAt, (*string)(nil), createdAt, (*float64)(nil))
		mock.ExpectQuery(`SELECT p.slug, p.name, p.created_by`).
			WithArgs("kiddie-pool").
			WillReturnRows(rows)

		repo := postgres.NewPoolRepository(mock)

		pool, err := repo.FindBySlug(context.Background(), mustSlug(t, "kiddie-pool"))
		if err != nil {
			t.Fatalf("FindBySlug() failed: %v", err)
		}
		if pool.AverageRating() != nil {
			t.Errorf("AverageRating() = %v, want nil", pool.AverageRating())
		}
	})
}

func TestPoolRepositoryImpl_Save(t *testing.T) {
	adminID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	createdAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	pool := domain.ReconstructPool(
		mustSlug(t, "olympic-pool"), "Olympic Pool", adminID, createdAt, nil, createdAt, nil,
	)

	t.Run("異常系: スラッグ重複はErrPoolExistsに変換される", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool() failed: %v", err)
		}
		defer mock.Close()

		mock.ExpectExec(`INSERT INTO pools`).
			WithArgs(
				"olympic-pool",
				"Olympic Pool",
				adminID.String(),
				pgxmock.AnyArg(),
				pgxmock.AnyArg(),
				pgxmock.AnyArg(),
			).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "pools_pkey",
			})

		repo := postgres.NewPoolRepository(mock)

		err = repo.Save(context.Background(), pool)
		if !errors.Is(err, domain.ErrPoolExists) {
			t.Fatalf("want error %v, but got %v", domain.ErrPoolExists, err)
		}
	})
}
