package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/Vipin-hari/CRM/internal/version"
)

// Context keys
type userKey struct{}
type versionKey struct{}

// WithUser returns a context carrying the authenticated session. The
// session is threaded through the request context explicitly; there is
// no ambient login state.
func WithUser(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, userKey{}, sess)
}

// CurrentUser retrieves the authenticated session from context.
func CurrentUser(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(userKey{}).(Session)
	return sess, ok
}

// Version adds the app version to the request context.
func Version() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), versionKey{}, version.Version)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetVersion retrieves the version from context.
func GetVersion(ctx context.Context) string {
	if v, ok := ctx.Value(versionKey{}).(string); ok {
		return v
	}
	return version.Version
}
