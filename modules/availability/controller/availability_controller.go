package controller

import (
	"net/http"

	"meetsync/core/controller"
	"meetsync/core/errors"
	"meetsync/modules/availability/dto"
	"meetsync/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// AvailabilityController handles unavailability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityController creates a new controller
func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// Add handles POST /api/events/:public_id/availability
func (c *AvailabilityController) Add(ctx echo.Context) error {
	publicID := ctx.Param("public_id")

	var req dto.MutateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AvailabilityService.AddUnavailability(ctx.Request().Context(), publicID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Remove handles DELETE /api/events/:public_id/availability
func (c *AvailabilityController) Remove(ctx echo.Context) error {
	publicID := ctx.Param("public_id")

	var req dto.MutateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AvailabilityService.RemoveUnavailability(ctx.Request().Context(), publicID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.NoContent(ctx)
}

// ClearMine handles DELETE /api/events/:public_id/my-availability
func (c *AvailabilityController) ClearMine(ctx echo.Context) error {
	publicID := ctx.Param("public_id")

	var req dto.ClearRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AvailabilityService.ClearUnavailability(ctx.Request().Context(), publicID, req.UserID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.NoContent(ctx)
}
