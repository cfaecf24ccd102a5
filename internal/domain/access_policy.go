package domain

import "github.com/google/uuid"

// ResourceKind はアクセス制御の対象となるリソース種別
type ResourceKind string

const (
	KindPool       ResourceKind = "pool"
	KindBooking    ResourceKind = "booking"
	KindRating     ResourceKind = "rating"
	KindUser       ResourceKind = "user"
	KindFileUpload ResourceKind = "fileupload"
)

// Action はリソースに対する操作種別
type Action string

const (
	ActionList     Action = "list"
	ActionCreate   Action = "create"
	ActionRetrieve Action = "retrieve"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	// ActionListOwn は自分のレコードのみを対象とする一覧操作
	// (recent_bookings / user_ratings)。ActionListの「全件一覧」とは別の操作
	ActionListOwn Action = "list_own"
)

// DenyReason は拒否理由。HTTP境界での401/403の選択に使う
type DenyReason int

const (
	// DenyUnauthenticated は未認証の呼び出しに対する拒否 (401相当)
	DenyUnauthenticated DenyReason = iota + 1
	// DenyForbidden は認証済みだが権限がない呼び出しに対する拒否 (403相当)
	DenyForbidden
)

// Decision はアクセス可否の判定結果
type Decision struct {
	allowed bool
	reason  DenyReason
}

func allow() Decision {
	return Decision{allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{allowed: false, reason: reason}
}

func (d Decision) Allowed() bool {
	return d.allowed
}

// Reason は拒否理由を返す。許可されている場合の値は意味を持たない
func (d Decision) Reason() DenyReason {
	return d.reason
}

// OwnerRef は対象リソースの所有者への参照
// 所有者の概念がない操作 (create / list) では不要
type OwnerRef struct {
	UserID uuid.UUID
}

// requirement は操作を許可するために呼び出し元が満たすべき条件
type requirement int

const (
	requireAnyone requirement = iota
	requireAuthenticated
	requireOwner
	requireAdmin
)

// policyTable は (リソース種別, 操作) ごとの要求条件
// 1エントリ1ルールで、評価順序に依存する分岐は存在しない
var policyTable = map[ResourceKind]map[Action]requirement{
	KindPool: {
		ActionList:     requireAnyone,
		ActionCreate:   requireAdmin,
		ActionRetrieve: requireAnyone,
		ActionUpdate:   requireAdmin,
		ActionDelete:   requireAdmin,
	},
	KindBooking: {
		ActionList:     requireAdmin,
		ActionCreate:   requireAuthenticated,
		ActionRetrieve: requireOwner,
		ActionUpdate:   requireOwner,
		ActionDelete:   requireOwner,
		ActionListOwn:  requireAuthenticated,
	},
	KindRating: {
		ActionList:     requireAdmin,
		ActionCreate:   requireAuthenticated,
		ActionRetrieve: requireOwner,
		ActionUpdate:   requireOwner,
		ActionDelete:   requireOwner,
		ActionListOwn:  requireAuthenticated,
	},
	KindUser: {
		ActionList:     requireAdmin,
		ActionRetrieve: requireAnyone,
	},
	KindFileUpload: {
		ActionList:     requireAdmin,
		ActionCreate:   requireAdmin,
		ActionRetrieve: requireAdmin,
		ActionUpdate:   requireAdmin,
		ActionDelete:   requireAdmin,
	},
}

// Decide は呼び出し元のIdentityが (kind, action) を実行できるかを判定する純粋関数
// ownerは対象リソースの所有者。所有者の概念がない操作ではnilでよい
func Decide(kind ResourceKind, action Action, identity Identity, owner *OwnerRef) Decision {
	actions, ok := policyTable[kind]
	if !ok {
		return deny(DenyForbidden)
	}
	req, ok := actions[action]
	if !ok {
		// テーブルにない操作はフェイルクローズ
		if !identity.IsAuthenticated() {
			return deny(DenyUnauthenticated)
		}
		return deny(DenyForbidden)
	}

	switch req {
	case requireAnyone:
		return allow()
	case requireAuthenticated:
		if !identity.IsAuthenticated() {
			return deny(DenyUnauthenticated)
		}
		return allow()
	case requireAdmin:
		if !identity.IsAuthenticated() {
			return deny(DenyUnauthenticated)
		}
		if !identity.IsAdmin() {
			return deny(DenyForbidden)
		}
		return allow()
	case requireOwner:
		if !identity.IsAuthenticated() {
			return deny(DenyUnauthenticated)
		}
		if owner == nil || !identity.Owns(owner.UserID) {
			return deny(DenyForbidden)
		}
		return allow()
	default:
		return deny(DenyForbidden)
	}
}
