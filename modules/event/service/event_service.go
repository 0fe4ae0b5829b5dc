package service

import (
	"context"
	"time"

	"meetsync/core/constants"
	"meetsync/core/errors"
	"meetsync/modules/event/dto"
	"meetsync/modules/event/repository"
)

// UnavailabilityAggregator produces the per-day, per-time-of-day map of
// unavailable participant names for one event. Implemented by the
// availability module's repository.
type UnavailabilityAggregator interface {
	AggregateByEvent(ctx context.Context, eventID int64) (map[string]map[string]string, error)
}

// EventService handles event business logic
type EventService struct {
	repo       repository.EventRepositoryInterface
	aggregator UnavailabilityAggregator
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	ListEvents(ctx context.Context) ([]dto.EventResponse, *errors.AppError)
	GetEventDetails(ctx context.Context, publicID string) (*dto.EventDetailsResponse, *errors.AppError)
	ResolvePublicID(ctx context.Context, publicID string) (int64, *errors.AppError)
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, aggregator UnavailabilityAggregator) EventServiceInterface {
	return &EventService{repo: repo, aggregator: aggregator}
}

// CreateEvent creates a new event with a fresh public id
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event name must not be empty", nil)
	}

	earliest, err := time.Parse(constants.DateFormat, req.Earliest)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid earliest date, expected YYYY-MM-DD", err)
	}
	latest, err := time.Parse(constants.DateFormat, req.Latest)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid latest date, expected YYYY-MM-DD", err)
	}

	created, repoErr := s.repo.Create(ctx, req.Name, req.Description, earliest, latest)
	if repoErr != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", repoErr)
	}

	return dto.ToEventResponse(created), nil
}

// ListEvents returns every event, newest created first
func (s *EventService) ListEvents(ctx context.Context) ([]dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list events", err)
	}

	result := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *dto.ToEventResponse(&e))
	}

	return result, nil
}

// GetEventDetails returns the event plus its aggregated unavailability
func (s *EventService) GetEventDetails(ctx context.Context, publicID string) (*dto.EventDetailsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No such event", nil)
	}

	details, err := s.aggregator.AggregateByEvent(ctx, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to aggregate unavailability", err)
	}

	return &dto.EventDetailsResponse{
		Event:                 *dto.ToEventResponse(event),
		UnavailabilityDetails: details,
	}, nil
}

// ResolvePublicID maps a public id to the internal event id. Pure lookup,
// no side effects.
func (s *EventService) ResolvePublicID(ctx context.Context, publicID string) (int64, *errors.AppError) {
	event, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return 0, errors.NewAppError(errors.ErrNotFound, "No such event", nil)
	}
	return event.ID, nil
}
