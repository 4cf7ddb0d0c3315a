package report

import (
	"testing"
	"time"
)

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{day(2024, time.January, 1), "Semana 1"},
		{day(2024, time.March, 15), "Semana 11"},
		// Dec 31 2024 is a Tuesday, ISO week 1 of 2025.
		{day(2024, time.December, 31), "Semana 1"},
	}
	for _, tt := range tests {
		if got := WeekLabel(tt.date); got != tt.want {
			t.Errorf("WeekLabel(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(day(2024, time.September, 5)); got != "Septiembre" {
		t.Errorf("MonthName = %q, want Septiembre", got)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"pending", "Pendiente"},
		{"approved", "Aprobado"},
		{"rejected", "Rechazado"},
		{"completed", "Completado"},
		{"archived", "archived"}, // unknown passes through
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(day(2024, time.March, 5)); got != "05/03/2024" {
		t.Errorf("FormatDate = %q, want 05/03/2024", got)
	}
}
