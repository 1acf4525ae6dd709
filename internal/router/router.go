package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/room-escape-reservation/internal/config"
	"github.com/iliyamo/room-escape-reservation/internal/handler"
	"github.com/iliyamo/room-escape-reservation/internal/middleware"
)

// Handlers groups everything the routes dispatch to.
type Handlers struct {
	Reservations *handler.ReservationHandler
	Times        *handler.TimeHandler
	Themes       *handler.ThemeHandler
	Members      *handler.MemberHandler
	Health       echo.HandlerFunc
}

// Options carries the cross-cutting settings.  Redis may be nil, which
// disables the response cache and the rate limiter.
type Options struct {
	JWTSecret string
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Log       *zap.Logger
}

// New builds the echo instance with the error handler, validator,
// global middleware and every route registered.
func New(h Handlers, opt Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(opt.Log)
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(opt.Log))
	e.Use(middleware.NewTokenBucket(opt.RateLimit, opt.Redis, opt.Log))

	RegisterRoutes(e, h.Health)
	RegisterAuth(e, h.Members, opt.JWTSecret)
	RegisterCatalog(e, h.Times, h.Themes, opt)
	RegisterReservations(e, h.Reservations, opt.JWTSecret)
	RegisterAdmin(e, h.Reservations, h.Members, opt.JWTSecret)
	return e
}

// RegisterRoutes registers the health check.
func RegisterRoutes(e *echo.Echo, health echo.HandlerFunc) {
	e.GET("/healthz", health)
}

// RegisterAuth registers signup, login and logout.  Only /login/check
// needs a token.
func RegisterAuth(e *echo.Echo, m *handler.MemberHandler, jwtSecret string) {
	e.POST("/members", m.Signup)
	e.POST("/login", m.Login)
	e.POST("/logout", m.Logout)
	e.GET("/login/check", m.Check, middleware.JWTAuth(jwtSecret))
}
