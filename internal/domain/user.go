package domain

import (
	"context"
	"net/mail"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)

// User は登録済みユーザーを表すエンティティ
type User struct {
	id           uuid.UUID
	email        string
	username     string
	passwordHash PasswordHash
	isAdmin      bool
	createdAt    time.Time
}

// NewUser は新規ユーザーを作成する
// 管理者フラグは登録フローからは常にfalseで、昇格は運用側の操作でのみ行う
func NewUser(ctx context.Context, email, username string, passwordHash PasswordHash) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		isAdmin:      false,
		createdAt:    ctxtime.Now(ctx),
	}, nil
}

// ReconstructUser は永続化済みのレコードからUserを復元する
func ReconstructUser(id uuid.UUID, email, username, passwordHash string, isAdmin bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		username:     username,
		passwordHash: ReconstructPasswordHash(passwordHash),
		isAdmin:      isAdmin,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() PasswordHash {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Identity はこのユーザーの認証済みIdentityを返す
func (u *User) Identity() (Identity, error) {
	return NewIdentity(u.id, u.username, u.email, u.isAdmin)
}
