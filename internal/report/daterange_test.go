package report

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInRange(t *testing.T) {
	from := day(2024, time.March, 10)
	to := day(2024, time.March, 20)

	tests := []struct {
		name string
		date time.Time
		r    Range
		want bool
	}{
		{"no bounds passes everything", day(1999, time.January, 1), Range{}, true},
		{"inside window", day(2024, time.March, 15), Range{From: &from, To: &to}, true},
		{"on lower bound", day(2024, time.March, 10), Range{From: &from, To: &to}, true},
		{"on upper bound", day(2024, time.March, 20), Range{From: &from, To: &to}, true},
		{"before window", day(2024, time.March, 9), Range{From: &from, To: &to}, false},
		{"after window", day(2024, time.March, 21), Range{From: &from, To: &to}, false},
		{"only lower bound", day(2024, time.December, 31), Range{From: &from}, true},
		{"only upper bound", day(2024, time.January, 1), Range{To: &to}, true},
		{"time of day ignored on upper bound", time.Date(2024, time.March, 20, 23, 59, 0, 0, time.UTC), Range{From: &from, To: &to}, true},
		{"zero date fails a present bound", time.Time{}, Range{From: &from}, false},
		{"zero date passes without bounds", time.Time{}, Range{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.date, tt.r); got != tt.want {
				t.Errorf("InRange(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	from := day(2024, time.March, 10)
	dates := []time.Time{
		day(2024, time.March, 12),
		day(2024, time.March, 1), // out
		day(2024, time.March, 10),
		day(2024, time.March, 30),
	}

	got := Filter(dates, Range{From: &from}, func(t time.Time) time.Time { return t })

	want := []time.Time{dates[0], dates[2], dates[3]}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFilterNoBoundsReturnsInput(t *testing.T) {
	dates := []time.Time{day(2024, time.March, 12), {}}
	got := Filter(dates, Range{}, func(t time.Time) time.Time { return t })
	if len(got) != 2 {
		t.Fatalf("got %d records, want all 2 back", len(got))
	}
}
