package controller

import (
	"net/http"

	"meetsync/core/controller"
	"meetsync/core/errors"
	"meetsync/modules/event/dto"
	"meetsync/modules/event/service"

	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

// NewEventController creates a new controller
func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// CreateEvent handles POST /api/events
func (c *EventController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.JSON(ctx, http.StatusOK, result)
}

// ListEvents handles GET /api/events
func (c *EventController) ListEvents(ctx echo.Context) error {
	result, appErr := c.EventService.ListEvents(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.JSON(ctx, http.StatusOK, result)
}

// GetEventDetails handles GET /api/events/:public_id
func (c *EventController) GetEventDetails(ctx echo.Context) error {
	publicID := ctx.Param("public_id")

	result, appErr := c.EventService.GetEventDetails(ctx.Request().Context(), publicID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.JSON(ctx, http.StatusOK, result)
}
