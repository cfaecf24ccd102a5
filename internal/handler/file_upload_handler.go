package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/handler/response"
	"github.com/na2na-p/poolbook/internal/usecase"
)

type FileUploadHandler struct {
	fileUploadUseCase usecase.FileUploadUseCaseInterface
	pageSize          int
}

func NewFileUploadHandler(fileUploadUseCase usecase.FileUploadUseCaseInterface, pageSize int) *FileUploadHandler {
	return &FileUploadHandler{
		fileUploadUseCase: fileUploadUseCase,
		pageSize:          pageSize,
	}
}

// List はアップロード済みファイルのメタデータ一覧を返す。管理者のみ
func (h *FileUploadHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	uploads, err := h.fileUploadUseCase.List(ctx, identity)
	if err != nil {
		return mapUseCaseError(err)
	}

	results := response.NewFileUploadListResponse(uploads)
	envelope, paginated, err := response.Paginate(c, results, h.pageSize)
	if err != nil {
		return err
	}
	if paginated {
		return c.JSON(http.StatusOK, envelope)
	}
	return c.JSON(http.StatusOK, results)
}

// Get はファイル本体をストリームで返す
func (h *FileUploadHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	upload, body, err := h.fileUploadUseCase.Get(ctx, identity, id)
	if err != nil {
		return mapUseCaseError(err)
	}
	defer func() {
		_ = body.Close()
	}()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+upload.FileName()+`"`)
	return c.Stream(http.StatusOK, upload.ContentType(), body)
}

// Create はmultipartボディのファイルをオブジェクトストレージへ保存する
func (h *FileUploadHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Multipart field 'file' is required.", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Failed to read uploaded file.", err)
	}
	defer func() {
		_ = src.Close()
	}()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	upload, err := h.fileUploadUseCase.Create(ctx, identity, fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusCreated, response.NewFileUploadResponse(upload))
}

// Update はmultipartボディのファイルで本体とメタデータを差し替える
func (h *FileUploadHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Multipart field 'file' is required.", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Failed to read uploaded file.", err)
	}
	defer func() {
		_ = src.Close()
	}()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	upload, err := h.fileUploadUseCase.Update(ctx, identity, id, fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, response.NewFileUploadResponse(upload))
}

// Delete はメタデータとオブジェクト本体を削除する
func (h *FileUploadHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.CurrentIdentity(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "Not found.", err)
	}

	if err := h.fileUploadUseCase.Delete(ctx, identity, id); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
