package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/poolbook/internal/domain"
)

const (
	usersEmailConstraint    = "users_email_key"
	usersUsernameConstraint = "users_username_key"
)

type UserRepositoryImpl struct {
	dao *UserDAO
}

func NewUserRepository(pool PoolInterface) domain.UserRepository {
	return &UserRepositoryImpl{
		dao: NewUserDAO(pool),
	}
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row, err := r.dao.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userRowToDomain(row)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userRowToDomain(row)
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		user, err := userRowToDomain(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Save は新規ユーザーを保存する
// email / username のユニーク制約違反は登録フローの検証エラーとして
// 専用のエラーに変換される
func (r *UserRepositoryImpl) Save(ctx context.Context, user *domain.User) error {
	err := r.dao.Insert(ctx, userDomainToRow(user))
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case usersEmailConstraint:
			return domain.ErrEmailTaken
		case usersUsernameConstraint:
			return domain.ErrUsernameTaken
		}
	}
	return err
}

func userRowToDomain(row *UserRow) (*domain.User, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructUser(id, row.Email, row.Username, row.PasswordHash, row.IsAdmin, row.CreatedAt), nil
}

func userDomainToRow(user *domain.User) *UserRow {
	return &UserRow{
		ID:           user.ID().String(),
		Email:        user.Email(),
		Username:     user.Username(),
		PasswordHash: user.PasswordHash().String(),
		IsAdmin:      user.IsAdmin(),
		CreatedAt:    user.CreatedAt(),
	}
}
