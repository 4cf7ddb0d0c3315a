package model

import "time"

// Product is a catalog entry. Points is the per-unit reward value earned by
// selling the product. Stock is the reference baseline used to compute the
// difference when a stock snapshot is recorded; it is not a live inventory
// count.
type Product struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // unique catalog code
	Model     string    `json:"model"`
	Type      string    `json:"type"`
	Points    int       `json:"points"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
