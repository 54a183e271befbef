package models

import "github.com/shopspring/decimal"

func init() {
	// Dashboard payloads carry amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
