package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/handler/response"
	"github.com/na2na-p/poolbook/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCaseInterface
}

func NewAuthHandler(authUseCase usecase.AuthUseCaseInterface) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	User    response.UserResponse `json:"user"`
	Refresh string                `json:"refresh"`
	Access  string                `json:"access"`
}

// Register は新規ユーザーを作成し、トークンペアとともに返す
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	user, pair, err := h.authUseCase.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Status:  "success",
		Message: "User created successfully",
		User:    response.NewUserResponse(user),
		Refresh: pair.Refresh,
		Access:  pair.Access,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User    response.UserResponse `json:"user"`
	Refresh string                `json:"refresh"`
	Access  string                `json:"access"`
}

// Login は認証に成功したユーザーへトークンペアを発行する
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	user, pair, err := h.authUseCase.Login(ctx, req.Email, req.Password)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		User:    response.NewUserResponse(user),
		Refresh: pair.Refresh,
		Access:  pair.Access,
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// Refresh はリフレッシュトークンをローテーションし、新しいペアを返す
func (h *AuthHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	_, pair, err := h.authUseCase.Refresh(ctx, req.Refresh)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, refreshResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
	})
}
