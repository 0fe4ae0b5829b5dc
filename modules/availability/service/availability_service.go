package service

import (
	"context"
	"time"

	"meetsync/core/constants"
	"meetsync/core/errors"
	"meetsync/core/logger"
	"meetsync/modules/availability/dto"
	"meetsync/modules/availability/repository"
	eventservice "meetsync/modules/event/service"
	userservice "meetsync/modules/user/service"
)

// AvailabilityService applies unavailability mutations for one
// (event, user) pair. Every mutation validates the user and resolves the
// event public id before touching the store.
type AvailabilityService struct {
	repo   repository.AvailabilityRepositoryInterface
	users  userservice.UserServiceInterface
	events eventservice.EventServiceInterface
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	AddUnavailability(ctx context.Context, publicID string, req *dto.MutateRequest) *errors.AppError
	RemoveUnavailability(ctx context.Context, publicID string, req *dto.MutateRequest) *errors.AppError
	ClearUnavailability(ctx context.Context, publicID string, userID int64) *errors.AppError
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	users userservice.UserServiceInterface,
	events eventservice.EventServiceInterface,
) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo, users: users, events: events}
}

// AddUnavailability marks every (day, tag) cell of the requested range as
// unavailable for the user. Idempotent: repeating the call changes nothing.
func (s *AvailabilityService) AddUnavailability(ctx context.Context, publicID string, req *dto.MutateRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	eventID, start, end, appErr := s.resolve(ctx, publicID, req)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.Add(ctx, eventID, req.UserID, ExpandRange(start, end, req.TimesOfDay)); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save unavailability", err)
	}

	logger.Info("AvailabilityService:AddUnavailability",
		"event_id", eventID, "user_id", req.UserID,
		"start", req.StartDate, "end", req.EndDate)
	return nil
}

// RemoveUnavailability clears every (day, tag) cell of the requested
// range. Cells that were never marked are skipped silently.
func (s *AvailabilityService) RemoveUnavailability(ctx context.Context, publicID string, req *dto.MutateRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	eventID, start, end, appErr := s.resolve(ctx, publicID, req)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.Remove(ctx, eventID, req.UserID, ExpandRange(start, end, req.TimesOfDay)); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove unavailability", err)
	}

	return nil
}

// ClearUnavailability wipes the user's entire selection within the event
func (s *AvailabilityService) ClearUnavailability(ctx context.Context, publicID string, userID int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.users.ValidateUser(ctx, userID); appErr != nil {
		return appErr
	}
	eventID, appErr := s.events.ResolvePublicID(ctx, publicID)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.Clear(ctx, eventID, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to clear unavailability", err)
	}

	return nil
}

// resolve runs the shared mutation preamble: user exists, event public id
// resolves, dates parse. Nothing is written when any step fails.
func (s *AvailabilityService) resolve(ctx context.Context, publicID string, req *dto.MutateRequest) (int64, time.Time, time.Time, *errors.AppError) {
	if appErr := s.users.ValidateUser(ctx, req.UserID); appErr != nil {
		return 0, time.Time{}, time.Time{}, appErr
	}

	eventID, appErr := s.events.ResolvePublicID(ctx, publicID)
	if appErr != nil {
		return 0, time.Time{}, time.Time{}, appErr
	}

	start, err := time.Parse(constants.DateFormat, req.StartDate)
	if err != nil {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid start_date, expected YYYY-MM-DD", err)
	}
	end, err := time.Parse(constants.DateFormat, req.EndDate)
	if err != nil {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid end_date, expected YYYY-MM-DD", err)
	}

	return eventID, start, end, nil
}
