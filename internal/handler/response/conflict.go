package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 二重予約・二重評価の際にクライアントへ返す文言
// 外部から観測されるボディであり、キーの大文字小文字も
// リソースごとに異なるまま固定されている
const (
	bookingConflictKey     = "Integrity error"
	bookingConflictMessage = "You have already booked this pool. Request an update if required"

	ratingConflictKey     = "Integrity Error"
	ratingConflictMessage = "Already rated! request update to make changes"
)

// SendBookingConflict は予約のユニーク制約違反を構造化エラーとして返す
func SendBookingConflict(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		bookingConflictKey: bookingConflictMessage,
	})
}

// SendRatingConflict は評価のユニーク制約違反を構造化エラーとして返す
func SendRatingConflict(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		ratingConflictKey: ratingConflictMessage,
	})
}
