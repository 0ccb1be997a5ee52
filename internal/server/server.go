package server

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	mwecho "github.com/labstack/echo/v4/middleware"
	mwsvc "github.com/Vipin-hari/CRM/internal/middleware"

	"github.com/Vipin-hari/CRM/internal/backup"
	"github.com/Vipin-hari/CRM/internal/config"
	"github.com/Vipin-hari/CRM/internal/customer"
	"github.com/Vipin-hari/CRM/internal/demodata"
	"github.com/Vipin-hari/CRM/internal/interaction"
	"github.com/Vipin-hari/CRM/internal/sale"
	"github.com/Vipin-hari/CRM/internal/sqlite"
	"github.com/Vipin-hari/CRM/internal/ticket"
	"github.com/Vipin-hari/CRM/internal/user"

	adminhttp "github.com/Vipin-hari/CRM/internal/http/admin"
	webhttp "github.com/Vipin-hari/CRM/internal/http/web"
)

type Server struct {
	Echo *echo.Echo
	HTTP *http.Server
	DB   *sqlx.DB
}

func Build(cfg *config.Config) (*Server, error) {
	//
	// Database
	//
	isNewDB := false
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		isNewDB = true
		log.Printf("Creating database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	} else {
		log.Printf("Opening database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	}
	db, err := sqlx.Connect("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, err
	}

	// WAL mode is only required once after creating the database, but
	// doesn't hurt to set it each time
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}

	// Foreign key support is required each time the database is open and
	// is required by the program for cascade deletes
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		return nil, err
	}

	// Verify foreign keys are supported and enabled
	var fkEnabled int
	if err := db.QueryRow(`PRAGMA foreign_keys;`).Scan(&fkEnabled); err != nil {
		return nil, errors.New("SQLite foreign key support check failed: " + err.Error())
	}
	if fkEnabled != 1 {
		return nil, errors.New("SQLite foreign keys not supported (requires SQLite 3.6.19+ compiled without SQLITE_OMIT_FOREIGN_KEY)")
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		return nil, err
	}

	// Load demo data if requested and database is new
	if cfg.DemoMode && isNewDB {
		if err := demodata.Load(db.DB); err != nil {
			return nil, errors.New("failed to load demo data: " + err.Error())
		}
		log.Print("Demo data loaded")
	}

	//
	// Domain services
	//
	customerSvc := customer.NewService(db)
	saleSvc := sale.NewService(db)
	interactionSvc := interaction.NewService(db)
	ticketSvc := ticket.NewService(db)
	userSvc := user.NewService(db)
	backupSvc := backup.NewService(db, cfg.DBPath)

	sessions := mwsvc.NewMemorySessionStore(cfg.SessionTTL)

	//
	// Handlers
	//
	webHandler := webhttp.NewHandler(
		customerSvc,
		saleSvc,
		interactionSvc,
		ticketSvc,
		userSvc,
		sessions,
		cfg.SessionTTL,
	)
	adminHandler := adminhttp.NewHandler(customerSvc, saleSvc, backupSvc)

	//
	// Echo
	//
	e := echo.New()
	e.HideBanner = true

	// Health endpoints
	e.GET("/livez", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/readyz", func(c echo.Context) error {
		if err := db.Ping(); err != nil {
			return c.String(http.StatusServiceUnavailable, "DB not ready")
		}
		return c.String(http.StatusOK, "Ready")
	})

	// Middleware
	e.Use(mwecho.Logger())
	e.Use(mwecho.Recover())

	csrf := mwecho.CSRFWithConfig(mwecho.CSRFConfig{
		TokenLookup:    "form:csrf,header:X-CSRF-Token",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/livez") || strings.HasPrefix(c.Path(), "/readyz")
		},
	})

	// Public pages (login, register, dashboard). Sessions are resolved
	// when present so the chrome reflects the logged-in user, but
	// nothing here redirects to /login.
	publicGroup := e.Group("")
	publicGroup.Use(mwsvc.Version())
	publicGroup.Use(mwsvc.IdentifySession(sessions))
	publicGroup.Use(mwsvc.ReadFlash())
	publicGroup.Use(csrf)
	publicGroup.Use(mwsvc.CSRF()) // Copy CSRF token to request context for templates
	webhttp.RegisterPublicRoutes(publicGroup, webHandler)

	// Session-protected pages
	sessionGroup := e.Group("")
	sessionGroup.Use(mwsvc.Version())
	sessionGroup.Use(mwsvc.ReadFlash())
	sessionGroup.Use(mwsvc.RequireAuth(sessions))
	sessionGroup.Use(csrf)
	sessionGroup.Use(mwsvc.CSRF())
	webhttp.RegisterRoutes(sessionGroup, webHandler)

	// Admin pages
	adminGroup := e.Group("")
	adminGroup.Use(mwsvc.Version())
	adminGroup.Use(mwsvc.ReadFlash())
	adminGroup.Use(mwsvc.RequireAuth(sessions))
	adminGroup.Use(mwsvc.RequireAdmin())
	adminGroup.Use(csrf)
	adminGroup.Use(mwsvc.CSRF())
	adminhttp.RegisterRoutes(adminGroup, adminHandler)

	//
	// HTTP server
	//
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		Echo: e,
		HTTP: srv,
		DB:   db,
	}, nil
}
