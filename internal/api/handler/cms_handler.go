package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theyard/fanpass/internal/api/metrics"
	"github.com/theyard/fanpass/internal/core/ports"
)

// CMSHandler handles the admin content endpoints.
type CMSHandler struct {
	service ports.CMSService
}

func NewCMSHandler(service ports.CMSService) *CMSHandler {
	return &CMSHandler{service: service}
}

// Get handles GET /api/admin/cms, seeding defaults on first access.
//
// @Summary      Fetch the CMS document
// @Tags         admin
// @Produce      json
// @Success      200  {object}  cmsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/cms [get]
func (h *CMSHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cmsResponse{CMS: doc})
}

// Put handles PUT /api/admin/cms: wholesale replace, server stamps version
// and updatedAt.
//
// @Summary      Replace the CMS document
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      cmsUpdateRequest  true  "Full CMS document"
// @Success      200   {object}  cmsResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/cms [put]
func (h *CMSHandler) Put(c echo.Context) error {
	var req cmsUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.CMS == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cms document is required")
	}

	doc, err := h.service.Update(c.Request().Context(), req.CMS)
	if err != nil {
		return err
	}

	metrics.CMSWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, cmsResponse{CMS: doc})
}

// Reset handles POST /api/admin/cms/reset.
//
// @Summary      Restore the default CMS document
// @Tags         admin
// @Produce      json
// @Success      200  {object}  cmsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/cms/reset [post]
func (h *CMSHandler) Reset(c echo.Context) error {
	doc, err := h.service.Reset(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.CMSWritesTotal.WithLabelValues("reset").Inc()
	return c.JSON(http.StatusOK, cmsResponse{CMS: doc})
}
