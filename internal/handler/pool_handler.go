package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/handler/response"
	"github.com/na2na-p/poolbook/internal/usecase"
)

type PoolHandler struct {
	poolUseCase usecase.PoolUseCaseInterface
	pageSize    int
}

func NewPoolHandler(poolUseCase usecase.PoolUseCaseInterface, pageSize int) *PoolHandler {
	return &PoolHandler{
		poolUseCase: poolUseCase,
		pageSize:    pageSize,
	}
}

type poolRequest struct {
	Name string `json:"name"`
}

// List は全プールを返す。誰でも閲覧できる
func (h *PoolHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	pools, err := h.poolUseCase.List(ctx, identity)
	if err != nil {
		return mapUseCaseError(err)
	}

	results := response.NewPoolListResponse(pools)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *PoolHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	pool, err := h.poolUseCase.Get(ctx, identity, slug)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewPoolResponse(pool))
}

// Create は管理者のみが実行できる
func (h *PoolHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	var req poolRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	pool, err := h.poolUseCase.Create(ctx, identity, req.Name)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusCreated, response.NewPoolResponse(pool))
}

// Update は管理者のみが実行できる
func (h *PoolHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	var req poolRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	pool, err := h.poolUseCase.Update(ctx, identity, slug, req.Name)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewPoolResponse(pool))
}

// Delete は管理者のみが実行できる
func (h *PoolHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	if err := h.poolUseCase.Delete(ctx, identity, slug); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
