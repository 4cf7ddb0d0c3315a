package model

import "time"

// Audit action constants.
const (
	ActionApprovePurchase      = "APPROVE_PURCHASE"
	ActionRejectPurchase       = "REJECT_PURCHASE"
	ActionApproveTraining      = "APPROVE_TRAINING"
	ActionRejectTraining       = "REJECT_TRAINING"
	ActionApproveRewardRequest = "APPROVE_REWARD_REQUEST"
	ActionRejectRewardRequest  = "REJECT_REWARD_REQUEST"
	ActionCompleteSale         = "COMPLETE_SALE"
)

// AuditEntry records who decided what and when for review actions.
type AuditEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name,omitempty"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
