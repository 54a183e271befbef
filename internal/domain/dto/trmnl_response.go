package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmendes/etsypulse/internal/domain/models"
)

const (
	trmnlTitle = "🛍️ ETSY DASHBOARD"

	// The trmnl device renders a fixed layout with five sale rows; the
	// response always carries all five slots so the template never has to
	// iterate.
	saleSlots = 5

	// Item titles shown per sale row.
	slotItems = 2

	clockLayout = "15:04"
)

// TrmnlResponse is the flattened JSON projection for the trmnl e-ink display.
//
// The display client has no templating capability beyond plain field
// substitution, so every value is a pre-formatted string and the five sale
// slots are unrolled into numbered top-level fields.
type TrmnlResponse struct {
	Title          string  `json:"title" example:"🛍️ ETSY DASHBOARD"`
	ShopName       string  `json:"shop_name" example:"Your Amazing Etsy Shop"`
	Alert          *string `json:"alert" example:"🔔 3 NEW SALES TODAY!"`
	TodayRevenue   string  `json:"today_revenue" example:"$147.49"`
	TodaySales     string  `json:"today_sales" example:"3"`
	MonthlyRevenue string  `json:"monthly_revenue" example:"$2890.45"`
	TotalSales     string  `json:"total_sales" example:"1247"`

	Sale1Amount string `json:"sale1_amount" example:"$45.99"`
	Sale1Items  string `json:"sale1_items" example:"Custom Coffee Mug, Sticker Pack"`
	Sale1Time   string `json:"sale1_time" example:"2h ago"`
	HasSale1    bool   `json:"has_sale1" example:"true"`

	Sale2Amount string `json:"sale2_amount"`
	Sale2Items  string `json:"sale2_items"`
	Sale2Time   string `json:"sale2_time"`
	HasSale2    bool   `json:"has_sale2"`

	Sale3Amount string `json:"sale3_amount"`
	Sale3Items  string `json:"sale3_items"`
	Sale3Time   string `json:"sale3_time"`
	HasSale3    bool   `json:"has_sale3"`

	Sale4Amount string `json:"sale4_amount"`
	Sale4Items  string `json:"sale4_items"`
	Sale4Time   string `json:"sale4_time"`
	HasSale4    bool   `json:"has_sale4"`

	Sale5Amount string `json:"sale5_amount"`
	Sale5Items  string `json:"sale5_items"`
	Sale5Time   string `json:"sale5_time"`
	HasSale5    bool   `json:"has_sale5"`

	HasSales      bool   `json:"has_sales" example:"true"`
	LastUpdated   string `json:"last_updated" example:"14:05"`
	StatusMessage string `json:"status_message" example:"🎉 Great sales today!"`
}

// saleSlot is the intermediate form of one display row before unrolling.
type saleSlot struct {
	amount string
	items  string
	age    string
	filled bool
}

// NewTrmnlResponse flattens a Dashboard into the trmnl display shape.
//
// Orders are taken in the sequence received (earliest first as delivered by
// the upstream) and truncated to the five available slots; leftover slots keep
// empty strings and a false presence flag.
func NewTrmnlResponse(d *models.Dashboard, now time.Time) TrmnlResponse {
	var slots [saleSlots]saleSlot
	for i, o := range d.Orders {
		if i >= saleSlots {
			break
		}
		titles := o.Items
		if len(titles) > slotItems {
			titles = titles[:slotItems]
		}
		slots[i] = saleSlot{
			amount: formatMoney(o.Amount),
			items:  strings.Join(titles, ", "),
			age:    relativeAge(o.Time, now),
			filled: true,
		}
	}

	resp := TrmnlResponse{
		Title:          trmnlTitle,
		ShopName:       d.Shop.Name,
		Alert:          salesAlert(d.Stats.TodaySalesCount),
		TodayRevenue:   formatMoney(d.Stats.TodayRevenue),
		TodaySales:     strconv.Itoa(d.Stats.TodaySalesCount),
		MonthlyRevenue: formatMoney(d.Stats.MonthlyRevenue),
		TotalSales:     strconv.Itoa(d.Shop.TotalSales),
		HasSales:       len(d.Orders) > 0,
		LastUpdated:    now.Format(clockLayout),
		StatusMessage:  statusMessage(d.Stats.TodaySalesCount),
	}

	resp.Sale1Amount, resp.Sale1Items, resp.Sale1Time, resp.HasSale1 = slots[0].amount, slots[0].items, slots[0].age, slots[0].filled
	resp.Sale2Amount, resp.Sale2Items, resp.Sale2Time, resp.HasSale2 = slots[1].amount, slots[1].items, slots[1].age, slots[1].filled
	resp.Sale3Amount, resp.Sale3Items, resp.Sale3Time, resp.HasSale3 = slots[2].amount, slots[2].items, slots[2].age, slots[2].filled
	resp.Sale4Amount, resp.Sale4Items, resp.Sale4Time, resp.HasSale4 = slots[3].amount, slots[3].items, slots[3].age, slots[3].filled
	resp.Sale5Amount, resp.Sale5Items, resp.Sale5Time, resp.HasSale5 = slots[4].amount, slots[4].items, slots[4].age, slots[4].filled

	return resp
}

// NewTrmnlErrorResponse is the failure body for GET /trmnl.
//
// The display cannot render an arbitrary error object, so failures keep the
// full DisplayView shape with zeroed figures and an error status message.
func NewTrmnlErrorResponse(now time.Time) TrmnlResponse {
	return TrmnlResponse{
		Title:          trmnlTitle,
		TodayRevenue:   "$0.00",
		TodaySales:     "0",
		MonthlyRevenue: "$0.00",
		TotalSales:     "0",
		LastUpdated:    now.Format(clockLayout),
		StatusMessage:  "⚠️ Unable to reach Etsy",
	}
}

// salesAlert returns nil when there are no sales today, otherwise the
// pluralized banner string.
func salesAlert(count int) *string {
	if count == 0 {
		return nil
	}
	plural := ""
	if count > 1 {
		plural = "S"
	}
	s := fmt.Sprintf("🔔 %d NEW SALE%s TODAY!", count, plural)
	return &s
}

func statusMessage(count int) string {
	if count > 0 {
		return "🎉 Great sales today!"
	}
	return "💪 Keep pushing!"
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// relativeAge renders how long ago t was, relative to now:
// under an hour → "Nm ago", under a day → "Nh ago", older → absolute clock
// time. A zero t means the upstream timestamp was unparseable.
func relativeAge(t, now time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	diff := now.Sub(t)
	if mins := int(diff.Minutes()); mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	if hours := int(diff.Hours()); hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return t.Format(clockLayout)
}
