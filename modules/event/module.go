package event

import (
	"context"
	"time"

	"meetsync/core/database"
	"meetsync/core/logger"
	"meetsync/core/middleware"
	availabilityrepo "meetsync/modules/availability/repository"
	"meetsync/modules/event/controller"
	"meetsync/modules/event/repository"
	"meetsync/modules/event/router"
	"meetsync/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The returned
// service is consumed by the availability module to resolve public ids.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.EventServiceInterface {
	repo := repository.NewEventRepository(db)
	aggregator := availabilityrepo.NewAvailabilityRepository(db)
	svc := service.NewEventService(repo, aggregator)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}

// SeedDemo inserts a demo event on a completely fresh install so the UI
// has something to show
func SeedDemo(ctx context.Context, db database.IDatabase) error {
	repo := repository.NewEventRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	description := "witam"
	earliest := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, "grill u Janka", &description, earliest, latest)
	if err != nil {
		return err
	}

	logger.Info("Seeded demo event", "public_id", created.PublicID)
	return nil
}
