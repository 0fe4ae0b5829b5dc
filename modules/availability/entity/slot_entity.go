package entity

import "time"

// Slot is one unavailability tuple: this user is unavailable on this day
// during this time-of-day bucket for this event. At most one row exists
// per (event, user, day, time_of_day).
type Slot struct {
	EventID   int64     `db:"event_id"`
	UserID    int64     `db:"user_id"`
	Day       time.Time `db:"day"`
	TimeOfDay string    `db:"time_of_day"`
}

// SlotPair is one (day, time-of-day) cell of an expanded date range.
// Time-of-day is a free-form tag string ("morning", "evening", ...), not
// a closed enum.
type SlotPair struct {
	Day       time.Time
	TimeOfDay string
}
