package entity

import "time"

// Event is a scheduling event with an inclusive [Earliest, Latest] date
// range. Addressed externally by PublicID only; immutable once created.
type Event struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Earliest    time.Time `db:"earliest"`
	Latest      time.Time `db:"latest"`
	CreatedAt   time.Time `db:"created_at"`
}
