//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func GetHealthzEndpoint() string {
	return fmt.Sprintf("%s/healthz", GetBaseEndpoint())
}

func GetReadyzEndpoint() string {
	return fmt.Sprintf("%s/readyz", GetBaseEndpoint())
}

func TestHealthzEndpoint_Get(t *testing.T) {
	if err := SetupE2EEnvironment(); err != nil {
		t.Fatalf("E2E環境のセットアップに失敗: %v", err)
	}

	type want struct {
		statusCode int
		body       map[string]string
	}
	tests := []struct {
		name string
		want want
	}{
		{
			name: "正常系: ヘルスチェックが成功し、healthy状態が返る",
			want: want{
				statusCode: http.StatusOK,
				body: map[string]string{
					"status": "healthy",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &http.Client{Timeout: 30 * time.Second}
			resp, err := client.Get(GetHealthzEndpoint())
			if err != nil {
				t.Fatalf("リクエストの送信に失敗: %v", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != tt.want.statusCode {
				t.Errorf("ステータスコードが一致しません: got=%d want=%d", resp.StatusCode, tt.want.statusCode)
			}

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("レスポンスボディの読み込みに失敗: %v", err)
			}

			var body map[string]string
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("レスポンスボディのデコードに失敗: %v", err)
			}

			if diff := cmp.Diff(tt.want.body, body); diff != "" {
				t.Errorf("レスポンスボディが一致しません (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadyzEndpoint_Get(t *testing.T) {
	if err := SetupE2EEnvironment(); err != nil {
		t.Fatalf("E2E環境のセットアップに失敗: %v", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(GetReadyzEndpoint())
	if err != nil {
		t.Fatalf("リクエストの送信に失敗: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("ステータスコードが一致しません: got=%d want=%d", resp.StatusCode, http.StatusOK)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("レスポンスボディのデコードに失敗: %v", err)
	}

	if body["status"] != "ready" {
		t.Errorf("status が一致しません: got=%v want=ready", body["status"])
	}
}
