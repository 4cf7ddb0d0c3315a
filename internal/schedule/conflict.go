// Package schedule places training sessions on the calendar and detects
// overlaps between them. Every session occupies a fixed 90-minute slot.
package schedule

import (
	"fmt"
	"time"

	"incentivehub/internal/model"
)

const sessionLayout = "2006-01-02 15:04"

// Combine parses a session's date ("2006-01-02") and time of day ("15:04")
// into its start timestamp.
func Combine(date, timeOfDay string) (time.Time, error) {
	start, err := time.Parse(sessionLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid session date/time %q %q: %w", date, timeOfDay, err)
	}
	return start, nil
}

// Overlaps reports whether two sessions starting at the given instants
// overlap. Slots are closed-open intervals, so a session starting exactly
// when another ends does not overlap it.
func Overlaps(a, b time.Time) bool {
	aEnd := a.Add(model.TrainingDuration)
	bEnd := b.Add(model.TrainingDuration)
	return a.Before(bEnd) && aEnd.After(b)
}

// HasConflict reports whether a candidate slot overlaps any of the given
// approved sessions. The session identified by excludeID is skipped so a
// record under review is not compared against itself; approved sessions
// whose stored date/time no longer parse are skipped as well.
func HasConflict(date, timeOfDay string, approved []model.TrainingRequest, excludeID string) (bool, error) {
	start, err := Combine(date, timeOfDay)
	if err != nil {
		return false, err
	}

	for _, session := range approved {
		if session.ID == excludeID {
			continue
		}
		other, err := Combine(session.Date, session.Time)
		if err != nil {
			continue
		}
		if Overlaps(start, other) {
			return true, nil
		}
	}
	return false, nil
}
