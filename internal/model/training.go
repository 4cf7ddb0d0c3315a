package model

import "time"

// TrainingDuration is the fixed length of every training session.
const TrainingDuration = 90 * time.Minute

// TrainingRequest is a seller-requested training session.
// Lifecycle: pending -> approved | rejected. Approval assigns trainer,
// duration and meeting URL and is gated by the schedule conflict check;
// rejection assigns comments.
//
// Date ("2006-01-02") and Time ("15:04") are kept as entered so malformed
// submissions stay in the store even when they cannot be placed on the
// calendar.
type TrainingRequest struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Seller      UserRef   `json:"seller"`
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Trainer     string    `json:"trainer,omitempty"`
	Duration    int       `json:"duration,omitempty"` // minutes
	MeetingURL  string    `json:"meeting_url,omitempty"`
	Comments    string    `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
