package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/poolbook/internal/domain"
	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/handler/response"
	"github.com/na2na-p/poolbook/internal/usecase"
)

type RatingHandler struct {
	ratingUseCase usecase.RatingUseCaseInterface
	pageSize      int
}

func NewRatingHandler(ratingUseCase usecase.RatingUseCaseInterface, pageSize int) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
		pageSize:      pageSize,
	}
}

type ratingCreateRequest struct {
	Pool  string `json:"pool"`
	Value int    `json:"value"`
}

type ratingUpdateRequest struct {
	Value int `json:"value"`
}

// List は全評価を返す。管理者のみが実行できる
func (h *RatingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	ratings, err := h.ratingUseCase.List(ctx, identity)
	if err != nil {
		return mapUseCaseError(err)
	}

	results := response.NewRatingListResponse(ratings)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

// UserRatings は呼び出したユーザー自身の評価のみを返す
func (h *RatingHandler) UserRatings(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	ratings, err := h.ratingUseCase.ListOwn(ctx, identity)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthenticationRequired) {
			return middleware.NewAppError(http.StatusUnauthorized, "User not known", err)
		}
		return mapUseCaseError(err)
	}

	results := response.NewRatingListResponse(ratings)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *RatingHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	rating, err := h.ratingUseCase.Get(ctx, identity, slug)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewRatingResponse(rating))
}

// Create は認証済みユーザー自身の評価を作成する
// 既に同じプールを評価済みの場合は専用の409相当ボディを返す
func (h *RatingHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	var req ratingCreateRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	poolSlug, err := domain.NewSlug(req.Pool)
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Invalid pool slug.", err)
	}

	rating, err := h.ratingUseCase.Create(ctx, identity, poolSlug, req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrRatingExists) {
			return response.SendRatingConflict(c)
		}
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusCreated, response.NewRatingResponse(rating))
}

// Update は評価の所有者のみが実行できる
func (h *RatingHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	var req ratingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	rating, err := h.ratingUseCase.Update(ctx, identity, slug, req.Value)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewRatingResponse(rating))
}

// Delete は評価の所有者のみが実行できる
func (h *RatingHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	if err := h.ratingUseCase.Delete(ctx, identity, slug); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
