package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Vipin-hari/CRM/internal/middleware"
)

// Helper to create echo context with request/response
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Dummy handler that returns 200 OK
func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ============================================================================
// RequireAuth Tests
// ============================================================================

func TestRequireAuth(t *testing.T) {
	store := middleware.NewMemorySessionStore(0)

	t.Run("allows request with valid session cookie", func(t *testing.T) {
		token := store.Create(7, "john", false)
		defer store.Delete(token)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.AddCookie(&http.Cookie{
			Name:  middleware.SessionCookieName,
			Value: token,
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := middleware.RequireAuth(store)
		handler := mw(func(c echo.Context) error {
			sess, ok := middleware.CurrentUser(c.Request().Context())
			if !ok {
				t.Error("expected session in request context")
			}
			if sess.UserID != 7 || sess.Username != "john" {
				t.Errorf("unexpected session: %+v", sess)
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("redirects to login without cookie", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/customers")

		mw := middleware.RequireAuth(store)
		handler := mw(okHandler)

		if err := handler(c); err != nil {
			t.Fatalf("expected no error (redirect), got %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %s", loc)
		}
	})

	t.Run("redirects with invalid cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.AddCookie(&http.Cookie{
			Name:  middleware.SessionCookieName,
			Value: "no-such-session",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := middleware.RequireAuth(store)
		handler := mw(okHandler)

		if err := handler(c); err != nil {
			t.Fatalf("expected no error (redirect), got %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
	})
}

// ============================================================================
// IdentifySession Tests
// ============================================================================

func TestIdentifySession(t *testing.T) {
	store := middleware.NewMemorySessionStore(0)

	t.Run("valid cookie populates context without redirecting", func(t *testing.T) {
		token := store.Create(3, "carol", true)
		defer store.Delete(token)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{
			Name:  middleware.SessionCookieName,
			Value: token,
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := middleware.IdentifySession(store)
		handler := mw(func(c echo.Context) error {
			sess, ok := middleware.CurrentUser(c.Request().Context())
			if !ok {
				t.Error("expected session in request context")
			}
			if sess.UserID != 3 || sess.Username != "carol" || !sess.IsAdmin {
				t.Errorf("unexpected session: %+v", sess)
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("no cookie falls through anonymously", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/")

		mw := middleware.IdentifySession(store)
		handler := mw(func(c echo.Context) error {
			if _, ok := middleware.CurrentUser(c.Request().Context()); ok {
				t.Error("expected no session in request context")
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("stale cookie falls through anonymously", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{
			Name:  middleware.SessionCookieName,
			Value: "no-such-session",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := middleware.IdentifySession(store)
		handler := mw(func(c echo.Context) error {
			if _, ok := middleware.CurrentUser(c.Request().Context()); ok {
				t.Error("expected no session for stale cookie")
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})
}

// ============================================================================
// RequireAdmin Tests
// ============================================================================

func TestRequireAdmin(t *testing.T) {
	t.Run("allows admin session", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/admin/customers")
		ctx := middleware.WithUser(c.Request().Context(), middleware.Session{UserID: 1, Username: "admin", IsAdmin: true})
		c.SetRequest(c.Request().WithContext(ctx))

		mw := middleware.RequireAdmin()
		handler := mw(okHandler)

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("redirects non-admin home with warning flash", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/admin/customers")
		ctx := middleware.WithUser(c.Request().Context(), middleware.Session{UserID: 2, Username: "user"})
		c.SetRequest(c.Request().WithContext(ctx))

		mw := middleware.RequireAdmin()
		handler := mw(okHandler)

		if err := handler(c); err != nil {
			t.Fatalf("expected no error (redirect), got %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("expected redirect to /, got %s", loc)
		}

		// A warning flash must have been queued
		found := false
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == middleware.FlashCookieName && ck.Value != "" {
				found = true
			}
		}
		if !found {
			t.Error("expected flash cookie to be set")
		}
	})

	t.Run("redirects to login when no session in context", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/admin/customers")

		mw := middleware.RequireAdmin()
		handler := mw(okHandler)

		if err := handler(c); err != nil {
			t.Fatalf("expected no error (redirect), got %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %s", loc)
		}
	})
}

// ============================================================================
// Session Store Tests
// ============================================================================

func TestMemorySessionStore(t *testing.T) {
	t.Run("creates session with user identity", func(t *testing.T) {
		store := middleware.NewMemorySessionStore(0)
		token := store.Create(42, "admin", true)

		if token == "" {
			t.Error("expected non-empty session token")
		}

		// UUID format: 8-4-4-4-12 = 36 chars
		if len(token) != 36 {
			t.Errorf("expected UUID format (36 chars), got %d chars", len(token))
		}

		sess, ok := store.Get(token)
		if !ok {
			t.Fatal("expected session to exist")
		}
		if sess.UserID != 42 || sess.Username != "admin" || !sess.IsAdmin {
			t.Errorf("unexpected session: %+v", sess)
		}
		if !sess.ExpiresAt.After(sess.CreatedAt) {
			t.Error("expected ExpiresAt to be after CreatedAt")
		}
	})

	t.Run("creates unique tokens", func(t *testing.T) {
		store := middleware.NewMemorySessionStore(0)
		id1 := store.Create(1, "a", false)
		id2 := store.Create(1, "a", false)

		if id1 == id2 {
			t.Error("expected unique session tokens")
		}
	})

	t.Run("returns false for non-existent session", func(t *testing.T) {
		store := middleware.NewMemorySessionStore(0)
		if _, ok := store.Get("non-existent"); ok {
			t.Error("expected session to not exist")
		}
	})

	t.Run("expired session treated as missing", func(t *testing.T) {
		store := middleware.NewMemorySessionStore(time.Nanosecond)
		token := store.Create(1, "a", false)

		time.Sleep(time.Millisecond)

		if _, ok := store.Get(token); ok {
			t.Error("expected expired session to be gone")
		}
	})

	t.Run("delete removes session", func(t *testing.T) {
		store := middleware.NewMemorySessionStore(0)
		token := store.Create(1, "a", false)

		store.Delete(token)

		if _, ok := store.Get(token); ok {
			t.Error("expected session to not exist after delete")
		}

		// Should not panic
		store.Delete("non-existent")
	})
}

// ============================================================================
// Flash Tests
// ============================================================================

func TestFlash(t *testing.T) {
	t.Run("set then read round trip", func(t *testing.T) {
		// First request: queue the flash
		c1, rec1 := newContext(http.MethodPost, "/customer/create")
		middleware.SetFlash(c1, "success", "Customer created successfully!")

		cookies := rec1.Result().Cookies()
		if len(cookies) == 0 {
			t.Fatal("expected flash cookie to be set")
		}

		// Second request: carry the cookie, middleware surfaces the flash
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec2 := httptest.NewRecorder()
		c2 := e.NewContext(req, rec2)

		mw := middleware.ReadFlash()
		handler := mw(func(c echo.Context) error {
			f, ok := middleware.GetFlash(c.Request().Context())
			if !ok {
				t.Fatal("expected flash in context")
			}
			if f.Kind != "success" {
				t.Errorf("expected kind 'success', got %q", f.Kind)
			}
			if f.Message != "Customer created successfully!" {
				t.Errorf("unexpected message %q", f.Message)
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c2); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// The middleware must clear the cookie (one-shot)
		cleared := false
		for _, ck := range rec2.Result().Cookies() {
			if ck.Name == middleware.FlashCookieName && ck.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Error("expected flash cookie to be cleared")
		}
	})

	t.Run("no cookie means no flash", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/customers")

		mw := middleware.ReadFlash()
		handler := mw(func(c echo.Context) error {
			if _, ok := middleware.GetFlash(c.Request().Context()); ok {
				t.Error("expected no flash")
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestGetFlash(t *testing.T) {
	t.Run("returns false for empty context", func(t *testing.T) {
		if _, ok := middleware.GetFlash(context.Background()); ok {
			t.Error("expected no flash for empty context")
		}
	})
}

// ============================================================================
// CSRF Middleware Tests
// ============================================================================

func TestCSRF(t *testing.T) {
	t.Run("copies token from echo context to request context", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/")

		// Simulate Echo's CSRF middleware setting the token
		c.Set("csrf", "test-csrf-token-12345")

		mw := middleware.CSRF()
		handler := mw(func(c echo.Context) error {
			token := middleware.GetCSRF(c.Request().Context())
			if token != "test-csrf-token-12345" {
				t.Errorf("expected 'test-csrf-token-12345', got %q", token)
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("handles missing csrf token gracefully", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/")

		mw := middleware.CSRF()
		handler := mw(func(c echo.Context) error {
			if token := middleware.GetCSRF(c.Request().Context()); token != "" {
				t.Errorf("expected empty token, got %q", token)
			}
			return c.String(http.StatusOK, "OK")
		})

		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

// ============================================================================
// Version Middleware Tests
// ============================================================================

func TestVersion(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")

	mw := middleware.Version()
	handler := mw(func(c echo.Context) error {
		if v := middleware.GetVersion(c.Request().Context()); v == "" {
			t.Error("expected version to be set")
		}
		return c.String(http.StatusOK, "OK")
	})

	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
