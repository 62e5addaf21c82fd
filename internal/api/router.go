package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hrkit/vacation-api/internal/api/handler"
	"github.com/hrkit/vacation-api/internal/api/middleware"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

// RouterConfig carries everything the HTTP layer needs. Redis may be nil.
type RouterConfig struct {
	DB         *sql.DB
	Redis      *redis.Client
	Tokens     ports.TokenService
	Users      ports.UserService
	Vacations  ports.VacationService
	CORSOrigin string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       3600,
	}))
	e.Use(echoprometheus.NewMiddleware("vacation_api"))
	// Token parsing is global and non-rejecting: handlers enforce their own
	// auth so unknown actions can 404 first.
	e.Use(middleware.Auth(cfg.Tokens))

	// --- Resource dispatch tables ---
	users := handler.NewUserHandler(cfg.Users).Table()
	e.Any("/users", users.Handle)
	e.Any("/users/:segment", users.Handle)
	e.Any("/users/:segment/:param", users.Handle)

	vacations := handler.NewVacationHandler(cfg.Vacations).Table()
	e.Any("/vacations", vacations.Handle)
	e.Any("/vacations/:segment", vacations.Handle)
	e.Any("/vacations/:segment/:param", vacations.Handle)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
