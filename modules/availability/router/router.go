package router

import (
	"meetsync/core/middleware"
	"meetsync/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles unavailability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

// NewAvailabilityRouter creates a new router
func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{AvailabilityController: availabilityController}
}

// Setup registers unavailability routes
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	event := e.Group("/api/events/:public_id")
	event.POST("/availability", r.AvailabilityController.Add)
	event.DELETE("/availability", r.AvailabilityController.Remove)
	event.DELETE("/my-availability", r.AvailabilityController.ClearMine)
}
