package model

import "time"

// Reward is a catalog entry redeemable for points.
type Reward struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"` // cost per unit
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RewardRequest is a pending redemption of a single reward unit. Points and
// the user fields are captured at request time and never re-read from the
// catalog or the user directory.
// Lifecycle: pending -> approved | rejected.
type RewardRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserStore   string    `json:"user_store"`
	RewardID    string    `json:"reward_id"`
	RewardName  string    `json:"reward_name"`
	Points      int       `json:"points"`
	Stock       int       `json:"stock"` // always 1, single-unit redemption
	RequestDate time.Time `json:"request_date"`
	Status      string    `json:"status"`
	Comments    string    `json:"comments,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
