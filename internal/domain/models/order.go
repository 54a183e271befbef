package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a normalized Etsy receipt.
//
// Normalization rules (applied by the data source):
//   - Amount is a non-negative decimal; missing or malformed grandtotal → 0.
//   - Buyer is "Customer #<id>", or "Guest" when the buyer id is absent.
//   - Items defaults to a single "Order items" placeholder when the receipt
//     carries no transactions.
//   - Time is the receipt creation time; the zero value marks a receipt whose
//     timestamp could not be parsed.
type Order struct {
	ID     int64           `json:"id" example:"1"`
	Amount decimal.Decimal `json:"amount" example:"45.99"`
	Buyer  string          `json:"buyer" example:"Customer #1234"`
	Time   time.Time       `json:"time"`
	Items  []string        `json:"items"`
}
