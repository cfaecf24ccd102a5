package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// slugPattern はURLで使用可能なスラッグの形式
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug はリソースをURLで一意に識別するスラッグを表す値オブジェクト
type Slug struct {
	value string
}

// NewSlug は文字列からSlugを作成する
func NewSlug(value string) (Slug, error) {
	if value == "" || !slugPattern.MatchString(value) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: value}, nil
}

// Slugify は任意の名前からスラッグを導出する
func Slugify(name string) (Slug, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return NewSlug(strings.Trim(b.String(), "-"))
}

// OwnerPoolSlug はユーザーIDとプールスラッグから予約・評価のスラッグを導出する
// (user, pool) の組ごとに一意になるため、このスラッグのユニーク制約が
// 「1ユーザー1プール1予約」の不変条件を兼ねる
// ユーザー名は `_` や `.` を含められるためスラッグ化すると別ユーザー同士で
// 衝突しうる。UUIDは固定長かつスラッグと同じ文字集合なので衝突しない
func OwnerPoolSlug(userID uuid.UUID, pool Slug) (Slug, error) {
	return NewSlug(userID.String() + "-" + pool.String())
}

func (s Slug) String() string {
	return s.value
}

// Equals は2つのスラッグが一致するかどうかを判定する
func (s Slug) Equals(other Slug) bool {
	return s.value == other.value
}
