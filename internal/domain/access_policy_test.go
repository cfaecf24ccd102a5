package domain_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/na2na-p/poolbook/internal/domain"
)

func mustIdentity(t *testing.T, userID uuid.UUID, username string, isAdmin bool) domain.Identity {
	t.Helper()
	identity, err := domain.NewIdentity(userID, username, username+"@example.com", isAdmin)
	if err != nil {
		t.Fatalf("NewIdentity() failed: %v", err)
	}
	return identity
}

func TestDecide(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	adminID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	anonymous := domain.AnonymousIdentity()

	type args struct {
		kind     domain.ResourceKind
		action   domain.Action
		identity func(t *testing.T) domain.Identity
		owner    *domain.OwnerRef
	}
	type want struct {
		allowed bool
		reason  domain.DenyReason
	}
	tests := []struct {
		name string
		args args
		want want
	}{
		{
			name: "正常系: 匿名ユーザーでもプール一覧は閲覧できる",
			args: args{
				kind:     domain.KindPool,
				action:   domain.ActionList,
				identity: func(t *testing.T) domain.Identity { return anonymous },
			},
			want: want{allowed: true},
		},
		{
			name: "正常系: 匿名ユーザーでもプール詳細は閲覧できる",
			args: args{
				kind:     domain.KindPool,
				action:   domain.ActionRetrieve,
				identity: func(t *testing.T) domain.Identity { return anonymous },
			},
			want: want{allowed: true},
		},
		{
			name: "異常系: 匿名ユーザーはプールを作成できない",
			args: args{
				kind:     domain.KindPool,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return anonymous },
			},
			want: want{allowed: false, reason: domain.DenyUnauthenticated},
		},
		{
			name: "異常系: 一般ユーザーはプールを作成できない",
			args: args{
				kind:     domain.KindPool,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "正常系: 管理者はプールを作成できる",
			args: args{
				kind:     domain.KindPool,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, adminID, "admin", true) },
			},
			want: want{allowed: true},
		},
		{
			name: "正常系: 認証済みユーザーは予約を作成できる",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: true},
		},
		{
			name: "異常系: 匿名ユーザーは予約を作成できない",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return anonymous },
			},
			want: want{allowed: false, reason: domain.DenyUnauthenticated},
		},
		{
			name: "異常系: 一般ユーザーは予約の全件一覧を閲覧できない",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionList,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "正常系: 認証済みユーザーは自分の予約一覧を閲覧できる",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionListOwn,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: true},
		},
		{
			name: "正常系: 所有者は自分の予約を取得できる",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionRetrieve,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
				owner:    &domain.OwnerRef{UserID: ownerID},
			},
			want: want{allowed: true},
		},
		{
			name: "異常系: 他人の予約は取得できない",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionRetrieve,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, otherID, "bob", false) },
				owner:    &domain.OwnerRef{UserID: ownerID},
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "異常系: 所有者情報がない場合は所有者限定の操作を拒否する",
			args: args{
				kind:     domain.KindBooking,
				action:   domain.ActionUpdate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
				owner:    nil,
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "正常系: 認証済みユーザーは評価を作成できる",
			args: args{
				kind:     domain.KindRating,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: true},
		},
		{
			name: "異常系: 匿名ユーザーは評価を作成できない",
			args: args{
				kind:     domain.KindRating,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return anonymous },
			},
			want: want{allowed: false, reason: domain.DenyUnauthenticated},
		},
		{
			name: "正常系: 所有者は自分の評価を削除できる",
			args: args{
				kind:     domain.KindRating,
				action:   domain.ActionDelete,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
				owner:    &domain.OwnerRef{UserID: ownerID},
			},
			want: want{allowed: true},
		},
		{
			name: "正常系: 匿名ユーザーでもユーザー詳細は閲覧できる",
			args: args{
				kind:     domain.KindUser,
				action:   domain.ActionRetrieve,
				identity: func(t *testing.T) domain.Identity { return anonymous },
			},
			want: want{allowed: true},
		},
		{
			name: "異常系: 一般ユーザーはユーザー一覧を閲覧できない",
			args: args{
				kind:     domain.KindUser,
				action:   domain.ActionList,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "異常系: ユーザーに対する作成操作はテーブルになくフェイルクローズする",
			args: args{
				kind:     domain.KindUser,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "異常系: 未知のリソース種別は拒否する",
			args: args{
				kind:     domain.ResourceKind("unknown"),
				action:   domain.ActionList,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, adminID, "admin", true) },
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "異常系: 一般ユーザーはファイルアップロードを作成できない",
			args: args{
				kind:     domain.KindFileUpload,
				action:   domain.ActionCreate,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, ownerID, "alice", false) },
			},
			want: want{allowed: false, reason: domain.DenyForbidden},
		},
		{
			name: "正常系: 管理者はファイルアップロードの一覧を閲覧できる",
			args: args{
				kind:     domain.KindFileUpload,
				action:   domain.ActionList,
				identity: func(t *testing.T) domain.Identity { return mustIdentity(t, adminID, "admin", true) },
			},
			want: want{allowed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := domain.Decide(tt.args.kind, tt.args.action, tt.args.identity(t), tt.args.owner)

			if decision.Allowed() != tt.want.allowed {
				t.Fatalf("Allowed() = %v, want %v", decision.Allowed(), tt.want.allowed)
			}
			if !tt.want.allowed && decision.Reason() != tt.want.reason {
				t.Errorf("Reason() = %v, want %v", decision.Reason(), tt.want.reason)
			}
		})
	}
}

func TestIdentity_Owns(t *testing.T) {
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	t.Run("正常系: 自分が所有者であればtrueを返す", func(t *testing.T) {
		identity := mustIdentity(t, ownerID, "alice", false)
		if !identity.Owns(ownerID) {
			t.Error("Owns() = false, want true")
		}
	})

	t.Run("異常系: 匿名ユーザーは何も所有しない", func(t *testing.T) {
		if domain.AnonymousIdentity().Owns(ownerID) {
			t.Error("Owns() = true, want false")
		}
	})
}
