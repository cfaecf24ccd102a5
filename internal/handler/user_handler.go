package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/handler/response"
	"github.com/na2na-p/poolbook/internal/usecase"
)

type UserHandler struct {
	userUseCase usecase.UserUseCaseInterface
	pageSize    int
}

func NewUserHandler(userUseCase usecase.UserUseCaseInterface, pageSize int) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		pageSize:    pageSize,
	}
}

// List は全ユーザーを返す。管理者のみが実行できる
func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	users, err := h.userUseCase.List(ctx, identity)
	if err != nil {
		return mapUseCaseError(err)
	}

	results := response.NewUserListResponse(users)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

// Get は単一ユーザーの公開プロフィールを返す
func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	user, err := h.userUseCase.Get(ctx, identity, id)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewUserResponse(user))
}
