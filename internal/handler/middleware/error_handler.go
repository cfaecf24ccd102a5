package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError はHTTPステータスとクライアント向けメッセージを持つエラー
// Errは内部ログ用の原因エラーで、レスポンスには含めない
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// CustomHTTPErrorHandler はハンドラから返されたエラーをJSONレスポンスに変換する
// ストレージ層の生のエラーメッセージがクライアントへ漏れることはない
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	var statusCode int
	var message string
	var originalErr error

	var appErr *AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		statusCode = appErr.StatusCode
		message = appErr.Message
		originalErr = appErr.Err
	case errors.As(err, &httpErr):
		statusCode = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(statusCode)
		}
		originalErr = err
	default:
		statusCode = http.StatusInternalServerError
		message = "internal server error"
		originalErr = err
	}

	logAttrs := []any{
		"request_id", requestID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
	}
	if originalErr != nil {
		logAttrs = append(logAttrs, "error", originalErr)
	}

	if statusCode >= 500 {
		slog.Error("server error", logAttrs...)
	} else if statusCode >= 400 {
		slog.Warn("client error", logAttrs...)
	}

	if jsonErr := c.JSON(statusCode, map[string]string{"detail": message}); jsonErr != nil {
		slog.Error("failed to send error response",
			"request_id", requestID,
			"status_code", statusCode,
			"error", jsonErr,
		)
	}
}
