package availability

import (
	"meetsync/core/database"
	"meetsync/core/middleware"
	"meetsync/modules/availability/controller"
	"meetsync/modules/availability/repository"
	"meetsync/modules/availability/router"
	"meetsync/modules/availability/service"
	eventservice "meetsync/modules/event/service"
	userservice "meetsync/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes
func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	users userservice.UserServiceInterface,
	events eventservice.EventServiceInterface,
) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo, users, events)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
}
