package models

// ShopInfo describes the Etsy shop as returned by the upstream shop resource
// (or the mock fixture). JSON keys match the upstream field names so the shop
// block passes through to the dashboard unchanged.
type ShopInfo struct {
	Name           string `json:"shop_name" example:"Your Amazing Etsy Shop"`
	TotalSales     int    `json:"total_sales" example:"1247"`
	TotalFavorites int    `json:"total_favorites" example:"892"`
}
