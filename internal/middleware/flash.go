package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const FlashCookieName = "crm_flash"

// Flash is a one-shot status message shown on the next rendered page
// after a redirect.
type Flash struct {
	Kind    string // "success", "danger", ...
	Message string
}

type flashKey struct{}

// SetFlash queues a flash message for the next request.
func SetFlash(c echo.Context, kind, message string) {
	c.SetCookie(&http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ReadFlash reads the pending flash cookie, clears it, and adds the
// message to the request context for the page layout to render.
func ReadFlash() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(FlashCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			// One-shot: clear the cookie regardless of parse success
			c.SetCookie(&http.Cookie{
				Name:     FlashCookieName,
				Value:    "",
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteStrictMode,
				MaxAge:   -1,
			})

			raw, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				return next(c)
			}
			kind, message, ok := strings.Cut(raw, "|")
			if !ok {
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), flashKey{}, Flash{Kind: kind, Message: message})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetFlash retrieves the flash message from context.
func GetFlash(ctx context.Context) (Flash, bool) {
	f, ok := ctx.Value(flashKey{}).(Flash)
	return f, ok
}
