package domain

import "golang.org/x/crypto/bcrypt"

const minPasswordLength = 8

// PasswordHash はbcryptでハッシュ化されたパスワードを表す値オブジェクト
// 平文パスワードはこの型の生成時にのみ扱い、永続化や露出はハッシュのみ
type PasswordHash struct {
	value string
}

// NewPasswordHash は平文パスワードを検証してハッシュ化する
func NewPasswordHash(plain string) (PasswordHash, error) {
	if plain == "" {
		return PasswordHash{}, ErrEmptyPassword
	}
	if len(plain) < minPasswordLength {
		return PasswordHash{}, ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{value: string(hashed)}, nil
}

// ReconstructPasswordHash は永続化済みのハッシュからPasswordHashを復元する
func ReconstructPasswordHash(hashed string) PasswordHash {
	return PasswordHash{value: hashed}
}

// Verify は平文パスワードがこのハッシュと一致するかどうかを判定する
func (p PasswordHash) Verify(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.value), []byte(plain)) == nil
}

func (p PasswordHash) String() string {
	return p.value
}
