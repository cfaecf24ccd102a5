package handler

import (
	"errors"
	"net/http"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/usecase"
)

// mapUseCaseError はユースケース層のエラーをHTTPステータス付きの
// AppErrorへ変換する。二重予約・二重評価はハンドラ側で専用ボディを
// 返すため、ここへは到達させないこと
func mapUseCaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrAuthenticationRequired):
		return middleware.NewAppError(http.StatusUnauthorized, "Authentication credentials were not provided.", err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(http.StatusForbidden, "You do not have permission to perform this action.", err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(http.StatusUnauthorized, "Invalid email or password.", err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(http.StatusUnauthorized, "Refresh token is invalid or expired.", err)
	case errors.Is(err, usecase.ErrPoolNotFound):
		return middleware.NewAppError(http.StatusBadRequest, "Pool does not exist.", err)
	case errors.Is(err, domain.ErrNotFound):
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	case errors.Is(err, domain.ErrEmailTaken):
		return middleware.NewAppError(http.StatusBadRequest, "A user with this email already exists.", err)
	case errors.Is(err, domain.ErrUsernameTaken):
		return middleware.NewAppError(http.StatusBadRequest, "A user with this username already exists.", err)
	case errors.Is(err, domain.ErrPoolExists):
		return middleware.NewAppError(http.StatusBadRequest, "A pool with this name already exists.", err)
	case errors.Is(err, domain.ErrInvalidRating):
		return middleware.NewAppError(http.StatusBadRequest, "Rating value must be between 1 and 5.", err)
	case errors.Is(err, domain.ErrInvalidSlug):
		return middleware.NewAppError(http.StatusBadRequest, "Invalid slug.", err)
	case errors.Is(err, domain.ErrPasswordTooShort):
		return middleware.NewAppError(http.StatusBadRequest, "Password must be at least 8 characters.", err)
	case errors.Is(err, domain.ErrInvalidEmail):
		return middleware.NewAppError(http.StatusBadRequest, "Invalid email address.", err)
	case errors.Is(err, domain.ErrInvalidUsername):
		return middleware.NewAppError(http.StatusBadRequest, "Invalid username.", err)
	default:
		return middleware.NewAppError(http.StatusInternalServerError, "internal server error", err)
	}
}
