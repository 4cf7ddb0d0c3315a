package report

import (
	"fmt"
	"time"

	"incentivehub/internal/model"
)

// Display strings follow the Spanish locale of the program.

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var statusLabels = map[string]string{
	model.StatusPending:   "Pendiente",
	model.StatusApproved:  "Aprobado",
	model.StatusRejected:  "Rechazado",
	model.StatusCompleted: "Completado",
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// MonthName returns the capitalized month name for the date.
func MonthName(t time.Time) string {
	return monthNames[t.Month()-1]
}

// WeekLabel renders the ISO week of the date as "Semana N". Week 1 is the
// week containing the year's first Thursday; weeks start on Monday.
func WeekLabel(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("Semana %d", week)
}

// StatusLabel translates a status constant to its display string. Unknown
// values pass through unchanged.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
