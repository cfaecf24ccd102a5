package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/na2na-p/poolbook/internal/handler"
)

func TestHealthHandler(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodGet, "/healthz", nil, nil)

	if err := handler.HealthHandler(c); err != nil {
		t.Fatalf("HealthHandler() failed: %v", err)
	}

	if diff := cmp.Diff(http.StatusOK, rec.Code); diff != "" {
		t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
	}
	want := map[string]interface{}{"status": "healthy"}
	if diff := cmp.Diff(want, decodeBody(t, rec)); diff != "" {
		t.Errorf("レスポンスボディが一致しません (-want +got):\n%s", diff)
	}
}
