package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theyard/fanpass/internal/api/metrics"
	"github.com/theyard/fanpass/internal/core/domain"
	"github.com/theyard/fanpass/internal/core/ports"
)

// UploadHandler handles admin file uploads.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/admin/upload (multipart field "file").
//
// @Summary      Upload an image (JPEG/PNG/WebP/GIF, max 10MB)
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Router       /api/admin/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer f.Close()

	path, err := h.service.Store(c.Request().Context(), fh.Filename, fh.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUploadTooLarge):
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds 10MB limit")
		case errors.Is(err, domain.ErrUnsupportedFileType):
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported file type")
		}
		return err
	}

	metrics.UploadsTotal.Inc()
	return c.JSON(http.StatusCreated, uploadResponse{Path: path})
}
