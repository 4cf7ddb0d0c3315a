package model

import "time"

// SaleItem is one product line inside a sale or purchase record. Points is
// the reward value captured at record creation (quantity x catalog points at
// the time), so later catalog edits do not change history.
type SaleItem struct {
	ProductID string `json:"product_id"`
	Model     string `json:"model"`
	Quantity  int    `json:"quantity"`
	Points    int    `json:"points"`
}

// Sale is a seller-logged sale. Lifecycle: pending -> completed.
type Sale struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Seller    UserRef    `json:"seller"`
	Products  []SaleItem `json:"products"`
	Status    string     `json:"status"` // pending, completed
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Purchase is a seller-logged purchase from a distributor.
// Lifecycle: pending -> approved | rejected.
type Purchase struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Seller    UserRef    `json:"seller"`
	Invoice   string     `json:"invoice"`
	Products  []SaleItem `json:"products"`
	Status    string     `json:"status"`
	Comments  string     `json:"comments,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
