package router

import (
	"meetsync/core/middleware"
	"meetsync/modules/user/controller"

	"github.com/labstack/echo/v4"
)

// UserRouter handles user routes
type UserRouter struct {
	UserController *controller.UserController
}

// NewUserRouter creates a new router
func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

// Setup registers user routes
func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	users := e.Group("/api/users")
	users.POST("/login", r.UserController.Login)
}
