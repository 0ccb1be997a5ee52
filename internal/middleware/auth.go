package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuth validates the session cookie against the store and adds
// the authenticated session to the request context. Unauthenticated
// requests are redirected to the login page.
func RequireAuth(store SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			sess, ok := store.Get(cookie.Value)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}

			ctx := WithUser(c.Request().Context(), sess)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// IdentifySession resolves the session cookie when present and adds
// the session to the request context, but never redirects. Pages that
// render for both logged-in and logged-out visitors use this instead
// of RequireAuth.
func IdentifySession(store SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				if sess, ok := store.Get(cookie.Value); ok {
					ctx := WithUser(c.Request().Context(), sess)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects sessions without the admin flag. Must run after
// RequireAuth. Non-admin users are sent home with a warning flash.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := CurrentUser(c.Request().Context())
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			if !sess.IsAdmin {
				SetFlash(c, "danger", "You do not have permission to view this page.")
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}
