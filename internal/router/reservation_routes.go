package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/handler"
	"github.com/iliyamo/room-escape-reservation/internal/middleware"
)

// RegisterReservations registers the member-facing reservation
// endpoints.  Everything except the full listing requires a token.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string) {
	auth := middleware.JWTAuth(jwtSecret)

	e.GET("/reservations", h.FindAll)
	e.GET("/reservations-mine", h.FindMine, auth)
	e.POST("/reservations", h.Create, auth)
	e.POST("/reservations/waiting", h.CreateWaiting, auth)
	e.DELETE("/reservations/:id", h.Delete, auth)
}

// RegisterAdmin registers the /admin endpoints.  All of them require a
// valid token and the ADMIN role.
func RegisterAdmin(e *echo.Echo, r *handler.ReservationHandler, m *handler.MemberHandler, jwtSecret string) {
	g := e.Group(
		"/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	g.GET("/reservations", r.Search)
	g.POST("/reservations", r.CreateForMember)
	g.GET("/members", m.FindAll)
}
