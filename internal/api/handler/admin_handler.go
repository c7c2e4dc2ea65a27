package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/theyard/fanpass/internal/api/metrics"
	"github.com/theyard/fanpass/internal/api/middleware"
	"github.com/theyard/fanpass/internal/core/domain"
	"github.com/theyard/fanpass/internal/core/ports"
)

// AdminHandler handles admin session management and the pass listing.
type AdminHandler struct {
	auth       ports.AuthService
	passes     ports.PassService
	sessionTTL time.Duration
}

func NewAdminHandler(auth ports.AuthService, passes ports.PassService, sessionTTL time.Duration) *AdminHandler {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &AdminHandler{auth: auth, passes: passes, sessionTTL: sessionTTL}
}

// Login handles POST /api/admin/login.
//
// @Summary      Authenticate as admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin password"
// @Success      200   {object}  successResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Logout handles DELETE /api/admin/login by expiring the session cookie.
//
// @Summary      End the admin session
// @Tags         admin
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/admin/login [delete]
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListPasses handles GET /api/admin/passes.
//
// @Summary      List all passes, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {object}  passListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/passes [get]
func (h *AdminHandler) ListPasses(c echo.Context) error {
	passes, err := h.passes.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, passListResponse{Passes: passes})
}
