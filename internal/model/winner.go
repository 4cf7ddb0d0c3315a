package model

import "time"

// Winner is a gallery entry fetched from the remote winners feed.
type Winner struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Name       string    `json:"name"`
	Store      string    `json:"store"`
	RewardName string    `json:"reward_name"`
	Points     int       `json:"points"`
	Photo      string    `json:"photo"`
}
