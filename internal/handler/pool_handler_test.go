package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/handler"
	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/usecase"
	mock_usecase "github.com/na2na-p/poolbook/tests/usecase"
)

func testPools(t *testing.T, n int) []*domain.Pool {
	t.Helper()
	adminID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	createdAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	pools := make([]*domain.Pool, 0, n)
	for i := 0; i < n; i++ {
		pools = append(pools, domain.ReconstructPool(
			testSlug(t, fmt.Sprintf("pool-%d", i)),
			fmt.Sprintf("Pool %d", i),
			adminID, createdAt, nil, createdAt, nil,
		))
	}
	return pools
}

func TestPoolHandler_List(t *testing.T) {
	t.Run("正常系: pageなしは全件を素の配列で返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mock_usecase.NewMockPoolUseCaseInterface(ctrl)
		mock.EXPECT().List(gomock.Any(), gomock.Any()).Return(testPools(t, 15), nil).Times(1)

		c, rec := newJSONContext(t, http.MethodGet, "/pools", nil, nil)

		h := handler.NewPoolHandler(mock, testPageSize)
		if err := h.List(c); err != nil {
			middleware.CustomHTTPErrorHandler(err, c)
		}

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var got []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスボディのパースに失敗しました: %v", err)
		}
		if len(got) != 15 {
			t.Errorf("len(results) = %d, want 15", len(got))
		}
	})

	t.Run("正常系: page指定時はエンベロープで返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mock_usecase.NewMockPoolUseCaseInterface(ctrl)
		mock.EXPECT().List(gomock.Any(), gomock.Any()).Return(testPools(t, 15), nil).Times(1)

		c, rec := newJSONContext(t, http.MethodGet, "/pools?page=2", nil, nil)

		h := handler.NewPoolHandler(mock, testPageSize)
		if err := h.List(c); err != nil {
			middleware.CustomHTTPErrorHandler(err, c)
		}

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		got := decodeBody(t, rec)
		if got["count"] != float64(15) {
			t.Errorf("count = %v, want 15", got["count"])
		}
		if got["next"] != nil {
			t.Errorf("next = %v, want nil", got["next"])
		}
		if got["previous"] == nil {
			t.Error("previous = nil, want a URL")
		}
		results, ok := got["results"].([]interface{})
		if !ok {
			t.Fatalf("results has unexpected type %T", got["results"])
		}
		if len(results) != 5 {
			t.Errorf("len(results) = %d, want 5", len(results))
		}
	})

	t.Run("異常系: 範囲外のページは404でInvalid page.を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mock_usecase.NewMockPoolUseCaseInterface(ctrl)
		mock.EXPECT().List(gomock.Any(), gomock.Any()).Return(testPools(t, 15), nil).Times(1)

		c, rec := newJSONContext(t, http.MethodGet, "/pools?page=99", nil, nil)

		h := handler.NewPoolHandler(mock, testPageSize)
		if err := h.List(c); err != nil {
			middleware.CustomHTTPErrorHandler(err, c)
		}

		if diff := cmp.Diff(http.StatusNotFound, rec.Code); diff != "" {
			t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
		}
		want := map[string]interface{}{"detail": "Invalid page."}
		if diff := cmp.Diff(want, decodeBody(t, rec)); diff != "" {
			t.Errorf("レスポンスボディが一致しません (-want +got):\n%s", diff)
		}
	})
}

func TestPoolHandler_Create(t *testing.T) {
	t.Run("異常系: 一般ユーザーによる作成は403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mock_usecase.NewMockPoolUseCaseInterface(ctrl)
		mock.EXPECT().Create(gomock.Any(), gomock.Any(), "Olympic Pool").
			Return(nil, usecase.ErrForbidden).Times(1)

		identity := testIdentity(t)
		c, rec := newJSONContext(t, http.MethodPost, "/pools", map[string]interface{}{"name": "Olympic Pool"}, &identity)

		h := handler.NewPoolHandler(mock, testPageSize)
		if err := h.Create(c); err != nil {
			middleware.CustomHTTPErrorHandler(err, c)
		}

		if diff := cmp.Diff(http.StatusForbidden, rec.Code); diff != "" {
			t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
		}
		want := map[string]interface{}{"detail": "You do not have permission to perform this action."}
		if diff := cmp.Diff(want, decodeBody(t, rec)); diff != "" {
			t.Errorf("レスポンスボディが一致しません (-want +got):\n%s", diff)
		}
	})

	t.Run("異常系: 匿名ユーザーによる作成は401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mock_usecase.NewMockPoolUseCaseInterface(ctrl)
		mock.EXPECT().Create(gomock.Any(), gomock.Any(), "Olympic Pool").
			Return(nil, usecase.ErrAuthenticationRequired).Times(1)

		c, rec := newJSONContext(t, http.MethodPost, "/pools", map[string]interface{}{"name": "Olympic Pool"}, nil)

		h := handler.NewPoolHandler(mock, testPageSize)
		if err := h.Create(c); err != nil {
			middleware.CustomHTTPErrorHandler(err, c)
		}

		if diff := cmp.Diff(http.StatusUnauthorized, rec.Code); diff != "" {
			t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
		}
		want := map[string]interface{}{"detail": "Authentication credentials were not provided."}
		if diff := cmp.Diff(want, decodeBody(t, rec)); diff != "" {
			t.Errorf("レスポンスボディが一致しません (-want +got):\n%s", diff)
		}
	})
}
