package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const anonCookieTTL = 365 * 24 * time.Hour

// AnonID resolves the device's anonymous id from its cookie, issuing a fresh
// UUID (and setting the cookie) on first visit. The id is stashed in the
// request context under "anon_id".
func AnonID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(AnonCookie); err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     AnonCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(anonCookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set("anon_id", id)
			return next(c)
		}
	}
}
