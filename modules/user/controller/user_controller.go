package controller

import (
	"net/http"
	"strings"

	"meetsync/core/controller"
	"meetsync/core/errors"
	"meetsync/modules/user/dto"
	"meetsync/modules/user/service"

	"github.com/labstack/echo/v4"
)

// UserController handles user HTTP requests
type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

// NewUserController creates a new controller
func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

// Login handles POST /api/users/login
func (c *UserController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Name must not be empty")
	}

	result, appErr := c.UserService.LoginOrRegister(ctx.Request().Context(), name)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.JSON(ctx, http.StatusOK, result)
}
