package model

import "time"

// StockItem is one product line inside a stock snapshot. Difference is
// computed once at snapshot creation as CurrentStock minus the catalog
// baseline stock of the product.
type StockItem struct {
	ProductID    string `json:"product_id"`
	Model        string `json:"model"`
	CurrentStock int    `json:"current_stock"`
	Difference   int    `json:"difference"`
}

// StockSnapshot is a seller-submitted weekly inventory count.
type StockSnapshot struct {
	ID        string      `json:"id"`
	Date      time.Time   `json:"date"`
	Seller    UserRef     `json:"seller"`
	Products  []StockItem `json:"products"`
	CreatedAt time.Time   `json:"created_at"`
}
