package repository

import (
	"context"
	"database/sql"
	"time"

	"meetsync/core/database"
	"meetsync/core/logger"
	"meetsync/core/utils"
	"meetsync/modules/event/entity"
)

// EventRepository handles event database operations
type EventRepository struct {
	DB database.IDatabase
}

// NewEventRepository creates a new repository instance
func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	Create(ctx context.Context, name string, description *string, earliest, latest time.Time) (*entity.Event, error)
	List(ctx context.Context) ([]entity.Event, error)
	FindByPublicID(ctx context.Context, publicID string) (*entity.Event, error)
	Count(ctx context.Context) (int64, error)
}

func (r *EventRepository) Create(ctx context.Context, name string, description *string, earliest, latest time.Time) (*entity.Event, error) {
	query := `
		INSERT INTO events (public_id, name, description, earliest, latest)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, public_id, name, description, earliest, latest, created_at
	`

	publicID := utils.GeneratePublicID()

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query, publicID, name, description, earliest, latest)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) List(ctx context.Context) ([]entity.Event, error) {
	query := `
		SELECT id, public_id, name, description, earliest, latest, created_at
		FROM events
		ORDER BY created_at DESC, id DESC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query)
	if err != nil {
		logger.Error("EventRepository:List", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) FindByPublicID(ctx context.Context, publicID string) (*entity.Event, error) {
	query := `
		SELECT id, public_id, name, description, earliest, latest, created_at
		FROM events
		WHERE public_id = ?
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, publicID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:FindByPublicID", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM events`

	var count int64
	err := r.DB.GetContext(ctx, &count, query)
	if err != nil {
		logger.Error("EventRepository:Count", err)
		return 0, err
	}

	return count, nil
}
