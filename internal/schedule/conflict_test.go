package schedule

import (
	"testing"
	"time"

	"incentivehub/internal/model"
)

func at(t *testing.T, date, timeOfDay string) time.Time {
	t.Helper()
	start, err := Combine(date, timeOfDay)
	if err != nil {
		t.Fatalf("Combine(%q, %q): %v", date, timeOfDay, err)
	}
	return start
}

func TestCombine(t *testing.T) {
	start := at(t, "2024-03-11", "10:30")
	if start.Hour() != 10 || start.Minute() != 30 || start.Day() != 11 {
		t.Errorf("start = %v", start)
	}

	if _, err := Combine("11/03/2024", "10:30"); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := Combine("2024-03-11", "25:99"); err == nil {
		t.Error("expected error for malformed time")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same start", at(t, "2024-03-11", "09:00"), at(t, "2024-03-11", "09:00"), true},
		{"one hour apart overlaps", at(t, "2024-03-11", "09:00"), at(t, "2024-03-11", "10:00"), true},
		{"touching slots do not overlap", at(t, "2024-03-11", "09:00"), at(t, "2024-03-11", "10:30"), false},
		{"well apart", at(t, "2024-03-11", "09:00"), at(t, "2024-03-11", "14:00"), false},
		{"different days", at(t, "2024-03-11", "09:00"), at(t, "2024-03-12", "09:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	approved := []model.TrainingRequest{
		{ID: "t1", Date: "2024-03-11", Time: "09:00", Status: model.StatusApproved},
		{ID: "t2", Date: "2024-03-11", Time: "14:00", Status: model.StatusApproved},
		{ID: "bad", Date: "not-a-date", Time: "09:00", Status: model.StatusApproved},
	}

	tests := []struct {
		name      string
		date      string
		timeOfDay string
		exclude   string
		want      bool
	}{
		{"overlapping slot", "2024-03-11", "10:00", "", true},
		{"touching slot is free", "2024-03-11", "10:30", "", false},
		{"free afternoon gap", "2024-03-11", "11:00", "", false},
		{"own record excluded", "2024-03-11", "09:00", "t1", false},
		{"other day is free", "2024-03-12", "09:00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasConflict(tt.date, tt.timeOfDay, approved, tt.exclude)
			if err != nil {
				t.Fatalf("HasConflict: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasConflict(%s %s) = %v, want %v", tt.date, tt.timeOfDay, got, tt.want)
			}
		})
	}
}

func TestHasConflictRejectsMalformedCandidate(t *testing.T) {
	if _, err := HasConflict("not-a-date", "10:00", nil, ""); err == nil {
		t.Error("expected error for malformed candidate slot")
	}
}
