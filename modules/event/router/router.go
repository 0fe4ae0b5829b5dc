package router

import (
	"meetsync/core/middleware"
	"meetsync/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	events := e.Group("/api/events")
	events.GET("", r.EventController.ListEvents)
	events.POST("", r.EventController.CreateEvent)
	events.GET("/:public_id", r.EventController.GetEventDetails)
}
