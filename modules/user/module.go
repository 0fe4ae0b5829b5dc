package user

import (
	"meetsync/core/database"
	"meetsync/core/middleware"
	"meetsync/modules/user/controller"
	"meetsync/modules/user/repository"
	"meetsync/modules/user/router"
	"meetsync/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user module and registers routes. The returned
// service is consumed by the availability module for existence checks.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.UserServiceInterface {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)
	rtr := router.NewUserRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
