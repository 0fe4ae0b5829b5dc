package service

import (
	"testing"
	"time"

	"meetsync/modules/availability/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func collect(start, end time.Time, tags []string) []entity.SlotPair {
	var pairs []entity.SlotPair
	for pair := range ExpandRange(start, end, tags) {
		pairs = append(pairs, pair)
	}
	return pairs
}

func TestExpandRange_DayMajorOrder(t *testing.T) {
	pairs := collect(day(2025, 7, 10), day(2025, 7, 12), []string{"morning", "evening"})

	want := []entity.SlotPair{
		{Day: day(2025, 7, 10), TimeOfDay: "morning"},
		{Day: day(2025, 7, 10), TimeOfDay: "evening"},
		{Day: day(2025, 7, 11), TimeOfDay: "morning"},
		{Day: day(2025, 7, 11), TimeOfDay: "evening"},
		{Day: day(2025, 7, 12), TimeOfDay: "morning"},
		{Day: day(2025, 7, 12), TimeOfDay: "evening"},
	}

	if len(pairs) != len(want) {
		t.Fatalf("Expected %d pairs, got %d", len(want), len(pairs))
	}
	for i := range want {
		if !pairs[i].Day.Equal(want[i].Day) || pairs[i].TimeOfDay != want[i].TimeOfDay {
			t.Errorf("Pair %d: expected %v/%s, got %v/%s",
				i, want[i].Day, want[i].TimeOfDay, pairs[i].Day, pairs[i].TimeOfDay)
		}
	}
}

func TestExpandRange_StartAfterEnd(t *testing.T) {
	pairs := collect(day(2025, 7, 12), day(2025, 7, 10), []string{"morning"})
	if len(pairs) != 0 {
		t.Fatalf("Expected empty expansion when start > end, got %d pairs", len(pairs))
	}
}

func TestExpandRange_SingleDay(t *testing.T) {
	pairs := collect(day(2025, 7, 10), day(2025, 7, 10), []string{"afternoon"})
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
}

func TestExpandRange_NoTags(t *testing.T) {
	pairs := collect(day(2025, 7, 10), day(2025, 7, 12), nil)
	if len(pairs) != 0 {
		t.Fatalf("Expected no pairs without tags, got %d", len(pairs))
	}
}

func TestExpandRange_DuplicateTagsKept(t *testing.T) {
	pairs := collect(day(2025, 7, 10), day(2025, 7, 10), []string{"morning", "morning"})
	if len(pairs) != 2 {
		t.Fatalf("Expected duplicate tags to be kept, got %d pairs", len(pairs))
	}
}

func TestExpandRange_Restartable(t *testing.T) {
	seq := ExpandRange(day(2025, 7, 10), day(2025, 7, 11), []string{"morning"})

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != 2 || second != 2 {
		t.Fatalf("Expected the sequence to be restartable (2 pairs twice), got %d then %d", first, second)
	}
}

func TestExpandRange_EarlyBreak(t *testing.T) {
	count := 0
	for range ExpandRange(day(2025, 1, 1), day(2025, 12, 31), []string{"morning"}) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("Expected early break after 3 pairs, got %d", count)
	}
}
