package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/theyard/fanpass/internal/api/metrics"
	"github.com/theyard/fanpass/internal/core/domain"
	"github.com/theyard/fanpass/internal/core/ports"
)

// PassHandler handles the public pass endpoints.
type PassHandler struct {
	service ports.PassService
}

func NewPassHandler(service ports.PassService) *PassHandler {
	return &PassHandler{service: service}
}

// Create handles POST /api/passes.
//
// @Summary      Create (or regenerate) the device's fan pass
// @Tags         passes
// @Accept       json
// @Produce      json
// @Param        body  body      createPassRequest  true  "Signup form fields"
// @Success      201   {object}  passResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/passes [post]
func (h *PassHandler) Create(c echo.Context) error {
	start := time.Now()

	var req createPassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	anonID, _ := c.Get("anon_id").(string)

	// A malformed photo data URL is tolerated: the renderer substitutes the
	// placeholder scene for anything it cannot decode.
	photo, _ := decodeDataURL(req.PhotoDataURL)

	var exported []byte
	if req.PNGDataURL != "" {
		var err error
		if exported, err = decodeDataURL(req.PNGDataURL); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid card image data")
		}
	}

	pass, err := h.service.Create(c.Request().Context(), ports.CreatePassInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
		AnonID:      anonID,
		Photo:       photo,
		ExportedPNG: exported,
		IP:          c.RealIP(),
		UserAgent:   c.Request().UserAgent(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPass) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	metrics.PassesCreatedTotal.WithLabelValues(string(pass.Category)).Inc()
	metrics.PassCreateDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusCreated, passResponse{Pass: pass})
}

// Get handles GET /api/passes?anonId=; the query parameter wins over the
// cookie so the admin panel can inspect a specific device.
//
// @Summary      Fetch the device's pass and flow state
// @Tags         passes
// @Produce      json
// @Param        anonId  query     string  false  "Anonymous device id (cookie used when omitted)"
// @Success      200     {object}  passViewResponse
// @Router       /api/passes [get]
func (h *PassHandler) Get(c echo.Context) error {
	anonID := c.QueryParam("anonId")
	if anonID == "" {
		anonID, _ = c.Get("anon_id").(string)
	}

	view, err := h.service.Get(c.Request().Context(), anonID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, passViewResponse{
		Pass:  view.Pass,
		State: string(view.State),
	})
}

// Card handles GET /api/passes/card.png, serving the stored export.
//
// @Summary      Download the device's card image
// @Tags         passes
// @Produce      png
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /api/passes/card.png [get]
func (h *PassHandler) Card(c echo.Context) error {
	anonID, _ := c.Get("anon_id").(string)

	view, err := h.service.Get(c.Request().Context(), anonID)
	if err != nil {
		return err
	}
	if view.Pass == nil || len(view.Pass.ExportedImage) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no card for this device")
	}

	return c.Blob(http.StatusOK, "image/png", view.Pass.ExportedImage)
}

// decodeDataURL extracts the payload of a base64 data URL
// ("data:image/png;base64,...."). A bare base64 string is accepted too.
func decodeDataURL(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[idx+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}
