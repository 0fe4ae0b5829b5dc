package service

import (
	"iter"
	"time"

	"meetsync/modules/availability/entity"
)

// ExpandRange turns an inclusive [start, end] date range crossed with the
// requested time-of-day tags into individual (day, tag) pairs, day-major:
// each day is paired with every tag, in caller order, before the next day.
//
// The sequence is restartable and lazy; nothing is materialized up front.
// When start is after end it is empty, which makes such a request a plain
// no-op rather than an error. Repeated tags are not deduplicated - the
// store treats inserts as idempotent and deletes as no-ops on absence, so
// the duplicates are harmless.
func ExpandRange(start, end time.Time, timesOfDay []string) iter.Seq[entity.SlotPair] {
	start = truncateToDay(start)
	end = truncateToDay(end)

	return func(yield func(entity.SlotPair) bool) {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			for _, tod := range timesOfDay {
				if !yield(entity.SlotPair{Day: day, TimeOfDay: tod}) {
					return
				}
			}
		}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
