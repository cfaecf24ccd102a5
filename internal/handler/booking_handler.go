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

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCaseInterface
	pageSize       int
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCaseInterface, pageSize int) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		pageSize:       pageSize,
	}
}

type bookingRequest struct {
	Pool string `json:"pool"`
}

// List は全予約を返す。管理者のみが実行できる
func (h *BookingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	bookings, err := h.bookingUseCase.List(ctx, identity)
	if err != nil {
		return mapUseCaseError(err)
	}

	results := response.NewBookingListResponse(bookings)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

// RecentBookings は呼び出したユーザー自身の予約のみを返す
func (h *BookingHandler) RecentBookings(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	bookings, err := h.bookingUseCase.ListOwn(ctx, identity)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthenticationRequired) {
			return middleware.NewAppError(http.StatusUnauthorized, "User not known", err)
		}
		return mapUseCaseError(err)
	}

	results := response.NewBookingListResponse(bookings)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *BookingHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	booking, err := h.bookingUseCase.Get(ctx, identity, slug)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewBookingResponse(booking))
}

// Create は認証済みユーザー自身の予約を作成する
// 既に同じプールを予約済みの場合は専用の409相当ボディを返す
func (h *BookingHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Malformed request body.", err)
	}

	poolSlug, err := domain.NewSlug(req.Pool)
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Invalid pool slug.", err)
	}

	booking, err := h.bookingUseCase.Create(ctx, identity, poolSlug)
	if err != nil {
		if errors.Is(err, domain.ErrBookingExists) {
			return response.SendBookingConflict(c)
		}
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusCreated, response.NewBookingResponse(booking))
}

// Update は予約の所有者のみが実行できる
func (h *BookingHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	booking, err := h.bookingUseCase.Update(ctx, identity, slug)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewBookingResponse(booking))
}

// Delete は予約の所有者のみが実行できる
func (h *BookingHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	slug, err := domain.NewSlug(c.Param("slug"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	if err := h.bookingUseCase.Delete(ctx, identity, slug); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
