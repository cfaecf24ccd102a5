package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/poolbook/internal/handler"
	"github.com/na2na-p/poolbook/internal/usecase"
	mock_handler "github.com/na2na-p/poolbook/tests/handler"
)

func TestReadyzHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		usecase        func(ctrl *gomock.Controller) handler.ReadinessUseCaseInterface
		wantStatusCode int
		wantBodyJSON   map[string]interface{}
	}{
		{
			name: "正常系: 全ての依存サービスが正常",
			usecase: func(ctrl *gomock.Controller) handler.ReadinessUseCaseInterface {
				mock := mock_handler.NewMockReadinessUseCaseInterface(ctrl)
				mock.EXPECT().Execute(gomock.Any()).Return([]usecase.HealthCheckResult{
					{Name: "postgres", Healthy: true},
					{Name: "redis", Healthy: true},
				}, nil).Times(1)
				return mock
			},
			wantStatusCode: http.StatusOK,
			wantBodyJSON: map[string]interface{}{
				"status": "ready",
				"details": []interface{}{
					map[string]interface{}{"name": "postgres", "healthy": true},
					map[string]interface{}{"name": "redis", "healthy": true},
				},
			},
		},
		{
			name: "異常系: 依存サービスの一部が異常な場合は503",
			usecase: func(ctrl *gomock.Controller) handler.ReadinessUseCaseInterface {
				mock := mock_handler.NewMockReadinessUseCaseInterface(ctrl)
				mock.EXPECT().Execute(gomock.Any()).Return([]usecase.HealthCheckResult{
					{Name: "postgres", Healthy: true},
					{Name: "redis", Healthy: false, Error: errors.New("connection refused")},
				}, usecase.ErrHealthCheckFailed).Times(1)
				return mock
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantBodyJSON: map[string]interface{}{
				"status": "not ready",
				"details": []interface{}{
					map[string]interface{}{"name": "postgres", "healthy": true},
					map[string]interface{}{"name": "redis", "healthy": false, "error": "connection refused"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, rec := newJSONContext(t, http.MethodGet, "/readyz", nil, nil)

			h := handler.NewReadyzHandler(tt.usecase(ctrl))

			if err := h.Handle(c); err != nil {
				t.Fatalf("Handle() failed: %v", err)
			}

			if diff := cmp.Diff(tt.wantStatusCode, rec.Code); diff != "" {
				t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantBodyJSON, decodeBody(t, rec)); diff != "" {
				t.Errorf("レスポンスボディが一致しません (-want +got):\n%s", diff)
			}
		})
	}
}
