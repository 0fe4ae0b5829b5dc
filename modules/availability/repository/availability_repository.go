package repository

import (
	"context"
	"iter"
	"time"

	"meetsync/core/constants"
	"meetsync/core/database"
	"meetsync/core/logger"
	"meetsync/modules/availability/entity"
)

// AvailabilityRepository handles unavailability database operations
type AvailabilityRepository struct {
	DB database.IDatabase
}

// NewAvailabilityRepository creates a new repository instance
func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	Add(ctx context.Context, eventID, userID int64, pairs iter.Seq[entity.SlotPair]) error
	Remove(ctx context.Context, eventID, userID int64, pairs iter.Seq[entity.SlotPair]) error
	Clear(ctx context.Context, eventID, userID int64) error
	AggregateByEvent(ctx context.Context, eventID int64) (map[string]map[string]string, error)
}

// Add inserts every expanded (day, tag) pair for one (event, user) inside
// a single transaction: all pairs commit or none do. Pairs already present
// are silently skipped.
func (r *AvailabilityRepository) Add(ctx context.Context, eventID, userID int64, pairs iter.Seq[entity.SlotPair]) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:Add:Begin", err)
		return err
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO unavailabilities (event_id, user_id, day, time_of_day)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`)

	for pair := range pairs {
		if _, err := tx.ExecContext(ctx, query, eventID, userID, pair.Day, pair.TimeOfDay); err != nil {
			logger.Error("AvailabilityRepository:Add", err)
			return err
		}
	}

	return tx.Commit()
}

// Remove deletes every expanded (day, tag) pair for one (event, user)
// inside a single transaction. Absent pairs are not an error.
func (r *AvailabilityRepository) Remove(ctx context.Context, eventID, userID int64, pairs iter.Seq[entity.SlotPair]) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:Remove:Begin", err)
		return err
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		DELETE FROM unavailabilities
		WHERE event_id = ? AND user_id = ? AND day = ? AND time_of_day = ?
	`)

	for pair := range pairs {
		if _, err := tx.ExecContext(ctx, query, eventID, userID, pair.Day, pair.TimeOfDay); err != nil {
			logger.Error("AvailabilityRepository:Remove", err)
			return err
		}
	}

	return tx.Commit()
}

// Clear deletes every slot a user holds within one event, regardless of
// date range
func (r *AvailabilityRepository) Clear(ctx context.Context, eventID, userID int64) error {
	query := `DELETE FROM unavailabilities WHERE event_id = ? AND user_id = ?`

	if err := r.DB.ExecContext(ctx, query, eventID, userID); err != nil {
		logger.Error("AvailabilityRepository:Clear", err)
		return err
	}
	return nil
}

type aggregateRow struct {
	Day       time.Time `db:"day"`
	TimeOfDay string    `db:"time_of_day"`
	Name      string    `db:"name"`
}

// AggregateByEvent returns day -> time-of-day -> comma-joined names of
// every unavailable user, from one query. Slots nobody holds are absent
// (sparse map: absent means everyone is free). Names are joined in name
// order so the output is stable across calls.
func (r *AvailabilityRepository) AggregateByEvent(ctx context.Context, eventID int64) (map[string]map[string]string, error) {
	query := `
		SELECT u.day, u.time_of_day, us.name
		FROM unavailabilities u
		JOIN users us ON u.user_id = us.id
		WHERE u.event_id = ?
		ORDER BY u.day, u.time_of_day, us.name
	`

	var rows []aggregateRow
	if err := r.DB.SelectContext(ctx, &rows, query, eventID); err != nil {
		logger.Error("AvailabilityRepository:AggregateByEvent", err)
		return nil, err
	}

	details := make(map[string]map[string]string)
	for _, row := range rows {
		day := row.Day.Format(constants.DateFormat)
		if details[day] == nil {
			details[day] = make(map[string]string)
		}
		if existing, ok := details[day][row.TimeOfDay]; ok {
			details[day][row.TimeOfDay] = existing + "," + row.Name
		} else {
			details[day][row.TimeOfDay] = row.Name
		}
	}

	return details, nil
}
