package response

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginatedResponse はページ指定時のレスポンスエンベロープ
type PaginatedResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// ErrInvalidPage はページ番号が不正または範囲外の場合に返すHTTPエラー
var ErrInvalidPage = echo.NewHTTPError(http.StatusNotFound, "Invalid page.")

// Paginate は?page=が指定されている場合にitemsをページに切り出して
// エンベロープを返す。指定がない場合はpaginated=falseで全件を返す
func Paginate[T any](c echo.Context, items []T, pageSize int) (envelope *PaginatedResponse, paginated bool, err error) {
	pageParam := c.QueryParam("page")
	if pageParam == "" {
		return nil, false, nil
	}

	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		return nil, false, ErrInvalidPage
	}

	count := len(items)
	start := (page - 1) * pageSize
	if start >= count && !(page == 1 && count == 0) {
		return nil, false, ErrInvalidPage
	}

	end := start + pageSize
	if end > count {
		end = count
	}

	var next, previous *string
	if end < count {
		u := pageURL(c, page+1)
		next = &u
	}
	if page > 1 {
		u := pageURL(c, page-1)
		previous = &u
	}

	return &PaginatedResponse{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  items[start:end],
	}, true, nil
}

func pageURL(c echo.Context, page int) string {
	req := c.Request()

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := *req.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return scheme + "://" + req.Host + u.String()
}
