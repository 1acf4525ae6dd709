package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/handler"
	"github.com/iliyamo/room-escape-reservation/internal/middleware"
)

// RegisterCatalog registers the time slot and theme endpoints.  Listing
// is cached in Redis per group; any successful write to a group drops
// that group's cached responses.  The availability view depends on
// reservations and is never cached.
func RegisterCatalog(e *echo.Echo, times *handler.TimeHandler, themes *handler.ThemeHandler, opt Options) {
	tg := e.Group("/times", middleware.InvalidateCache(opt.Cache, opt.Redis, "times", opt.Log))
	tg.GET("", times.FindAll, middleware.NewRedisCache(opt.Cache, opt.Redis, "times"))
	tg.GET("/filter", times.FindAvailability)
	tg.POST("", times.Create)
	tg.DELETE("/:id", times.Delete)

	thg := e.Group("/themes", middleware.InvalidateCache(opt.Cache, opt.Redis, "themes", opt.Log))
	thg.GET("", themes.FindAll, middleware.NewRedisCache(opt.Cache, opt.Redis, "themes"))
	thg.POST("", themes.Create)
	thg.DELETE("/:id", themes.Delete)
}
