package usecase

import "github.com/na2na-p/poolbook/internal/domain"

// authorize はアクセスポリシーの判定結果をユースケース層のエラーへ変換する
// 拒否理由はHTTP境界で401/403の選択に使われる
func authorize(kind domain.ResourceKind, action domain.Action, identity domain.Identity, owner *domain.OwnerRef) error {
	decision := domain.Decide(kind, action, identity, owner)
	if decision.Allowed() {
		return nil
	}
	if decision.Reason() == domain.DenyUnauthenticated {
		return ErrAuthenticationRequired
	}
	return ErrForbidden
}
