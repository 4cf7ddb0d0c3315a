package model

// Record status constants. Transitions are one-directional: a record leaves
// pending exactly once and decided states are terminal.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed" // sales only
)

// Decided reports whether a status is terminal.
func Decided(status string) bool {
	return status != StatusPending
}
