package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/poolbook/internal/domain"
)

type RatingRepositoryImpl struct {
	dao *RatingDAO
}

func NewRatingRepository(pool PoolInterface) domain.RatingRepository {
	return &RatingRepositoryImpl{
		dao: NewRatingDAO(pool),
	}
}

func (r *RatingRepositoryImpl) FindBySlug(ctx context.Context, slug domain.Slug) (*domain.Rating, error) {
	row, err := r.dao.FindBySlug(ctx, slug.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ratingRowToDomain(row)
}

func (r *RatingRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Rating, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ratingRowsToDomain(rows)
}

func (r *RatingRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Rating, error) {
	rows, err := r.dao.FindByUserID(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	return ratingRowsToDomain(rows)
}

// Save は評価を保存する
// スラッグのユニーク制約違反はdomain.ErrRatingExistsに変換される
func (r *RatingRepositoryImpl) Save(ctx context.Context, rating *domain.Rating) error {
	err := r.dao.Insert(ctx, ratingDomainToRow(rating))
	if _, ok := uniqueViolation(err); ok {
		return domain.ErrRatingExists
	}
	return err
}

func (r *RatingRepositoryImpl) Update(ctx context.Context, rating *domain.Rating) error {
	err := r.dao.Update(ctx, ratingDomainToRow(rating))
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func (r *RatingRepositoryImpl) Delete(ctx context.Context, slug domain.Slug) error {
	err := r.dao.Delete(ctx, slug.String())
	if errors.Is(err, errNoRowsUpdated) {
		return domain.ErrNotFound
	}
	return err
}

func ratingRowToDomain(row *RatingRow) (*domain.Rating, error) {
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

	value, err := domain.NewRatingValue(row.Value)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructRating(slug, userID, poolSlug, value, row.CreatedAt), nil
}

func ratingRowsToDomain(rows []*RatingRow) ([]*domain.Rating, error) {
	ratings := make([]*domain.Rating, 0, len(rows))
	for _, row := range rows {
		rating, err := ratingRowToDomain(row)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func ratingDomainToRow(rating *domain.Rating) *RatingRow {
	return &RatingRow{
		Slug:      rating.Slug().String(),
		UserID:    rating.UserID().String(),
		PoolSlug:  rating.PoolSlug().String(),
		Value:     rating.Value().Int(),
		CreatedAt: rating.CreatedAt(),
	}
}
