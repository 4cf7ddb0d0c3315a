package schedule

import (
	"time"

	"incentivehub/internal/model"

	"go.uber.org/zap"
)

// EventColors is the visual triple applied to a calendar event.
type EventColors struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

var statusColors = map[string]EventColors{
	model.StatusPending:  {Background: "#FEF3C7", Border: "#F59E0B", Text: "#92400E"},
	model.StatusApproved: {Background: "#D1FAE5", Border: "#10B981", Text: "#065F46"},
	model.StatusRejected: {Background: "#FEE2E2", Border: "#EF4444", Text: "#991B1B"},
}

// Event is a training session rendered for the calendar view.
type Event struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Status string      `json:"status"`
	Colors EventColors `json:"colors"`
}

// ToEvents maps trainings to calendar events. Records whose date/time do not
// parse are logged and dropped from the calendar; they stay untouched in the
// store. Output order carries no meaning.
func ToEvents(trainings []model.TrainingRequest) []Event {
	events := make([]Event, 0, len(trainings))
	for _, t := range trainings {
		start, err := Combine(t.Date, t.Time)
		if err != nil {
			zap.L().Warn("skipping training with unparseable slot",
				zap.String("id", t.ID),
				zap.String("date", t.Date),
				zap.String("time", t.Time),
			)
			continue
		}
		events = append(events, Event{
			ID:     t.ID,
			Title:  t.Topic,
			Start:  start,
			End:    start.Add(model.TrainingDuration),
			Status: t.Status,
			Colors: statusColors[t.Status],
		})
	}
	return events
}
