package domain

import "github.com/google/uuid"

// Identity はリクエストを実行している呼び出し元を表す値オブジェクト
// 認証ミドルウェアで生成され、リクエストのライフタイムの間は不変
type Identity struct {
	userID          uuid.UUID
	username        string
	email           string
	isAdmin         bool
	isAuthenticated bool
}

// NewIdentity は認証済みのIdentityを作成する
func NewIdentity(userID uuid.UUID, username, email string, isAdmin bool) (Identity, error) {
	if userID == uuid.Nil {
		return Identity{}, ErrEmptyUserID
	}
	if username == "" {
		return Identity{}, ErrEmptyUsername
	}
	return Identity{
		userID:          userID,
		username:        username,
		email:           email,
		isAdmin:         isAdmin,
		isAuthenticated: true,
	}, nil
}

// AnonymousIdentity は未認証の呼び出し元を表すIdentityを返す
func AnonymousIdentity() Identity {
	return Identity{}
}

func (i Identity) UserID() uuid.UUID {
	return i.userID
}

func (i Identity) Username() string {
	return i.username
}

func (i Identity) Email() string {
	return i.email
}

func (i Identity) IsAdmin() bool {
	return i.isAdmin
}

func (i Identity) IsAuthenticated() bool {
	return i.isAuthenticated
}

// Owns は対象リソースの所有者が自分自身かどうかを判定する
func (i Identity) Owns(ownerID uuid.UUID) bool {
	return i.isAuthenticated && i.userID == ownerID
}
