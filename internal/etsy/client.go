package etsy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmendes/etsypulse/config"
	"github.com/rmendes/etsypulse/internal/domain/models"
)

const (
	shopPath     = "/v3/application/shops/"
	receiptsPath = "/receipts"

	// Upstream page size; pagination beyond the first page is out of scope.
	receiptsLimit = 20

	placeholderItem = "Order items"
)

// UpstreamError reports a non-success status from the Etsy API.
// It carries the offending status code and is never retried.
type UpstreamError struct {
	Resource   string // "shop" or "receipts"
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error: %s returned status %d", e.Resource, e.StatusCode)
}

// rawShop is the subset of the upstream shop resource the dashboard uses.
type rawShop struct {
	ShopName       string `json:"shop_name"`
	TotalSales     int    `json:"total_sales"`
	TotalFavorites int    `json:"total_favorites"`
}

type rawTransaction struct {
	Title string `json:"title"`
}

// rawReceipt mirrors one entry of the receipts listing. Several fields are
// optional upstream; normalization fills the gaps.
type rawReceipt struct {
	ReceiptID         int64            `json:"receipt_id"`
	Grandtotal        string           `json:"grandtotal"`
	CreationTimestamp int64            `json:"creation_timestamp"`
	BuyerUserID       string           `json:"buyer_user_id"`
	Transactions      []rawTransaction `json:"transactions"`
}

type rawReceiptList struct {
	Results []rawReceipt `json:"results"`
}

// LiveSource fetches shop and order data from the Etsy Open API.
//
// Each request triggers two sequential calls: the shop resource first, then
// today's receipts. A failed shop call aborts before the receipts call is
// attempted. The HTTP client carries a bounded timeout from configuration, so
// a stalled upstream cannot hold a request open indefinitely.
type LiveSource struct {
	cfg    config.EtsyConfig
	client *http.Client
	now    func() time.Time // injected in tests
}

// NewLiveSource constructs a source backed by the real Etsy API.
func NewLiveSource(cfg config.EtsyConfig) *LiveSource {
	return &LiveSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		now:    time.Now,
	}
}

// Mode implements DataSource.
func (s *LiveSource) Mode() models.Mode { return models.ModeLive }

// Close releases idle upstream connections. Used as the app cleanup hook.
func (s *LiveSource) Close() {
	s.client.CloseIdleConnections()
}

// FetchShopAndOrders implements DataSource.
func (s *LiveSource) FetchShopAndOrders(ctx context.Context) (models.ShopInfo, []models.Order, error) {
	shop, err := s.fetchShop(ctx)
	if err != nil {
		return models.ShopInfo{}, nil, err
	}

	receipts, err := s.fetchTodaysReceipts(ctx)
	if err != nil {
		return models.ShopInfo{}, nil, err
	}

	orders := make([]models.Order, 0, len(receipts))
	for _, r := range receipts {
		orders = append(orders, normalizeReceipt(r))
	}

	return shop, orders, nil
}

func (s *LiveSource) fetchShop(ctx context.Context) (models.ShopInfo, error) {
	var raw rawShop
	if err := s.getJSON(ctx, "shop", s.cfg.BaseURL+shopPath+s.cfg.ShopID, &raw); err != nil {
		return models.ShopInfo{}, err
	}
	return models.ShopInfo{
		Name:           raw.ShopName,
		TotalSales:     raw.TotalSales,
		TotalFavorites: raw.TotalFavorites,
	}, nil
}

// fetchTodaysReceipts lists the receipts created since local midnight,
// including nested transaction data for the item titles.
func (s *LiveSource) fetchTodaysReceipts(ctx context.Context) ([]rawReceipt, error) {
	q := url.Values{}
	q.Set("min_created", strconv.FormatInt(startOfDay(s.now()).Unix(), 10))
	q.Set("limit", strconv.Itoa(receiptsLimit))
	q.Set("includes", "transactions")

	endpoint := s.cfg.BaseURL + shopPath + s.cfg.ShopID + receiptsPath + "?" + q.Encode()

	var raw rawReceiptList
	if err := s.getJSON(ctx, "receipts", endpoint, &raw); err != nil {
		return nil, err
	}
	return raw.Results, nil
}

// getJSON performs one authenticated GET and decodes the JSON body into out.
func (s *LiveSource) getJSON(ctx context.Context, resource, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	req.Header.Set("x-api-key", s.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", resource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &UpstreamError{Resource: resource, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

// normalizeReceipt maps one raw receipt to the normalized order shape,
// absorbing missing or malformed fields instead of failing the request.
func normalizeReceipt(r rawReceipt) models.Order {
	amount, err := decimal.NewFromString(r.Grandtotal)
	if err != nil || amount.IsNegative() {
		amount = decimal.Zero
	}

	buyer := "Guest"
	if r.BuyerUserID != "" {
		buyer = "Customer #" + r.BuyerUserID
	}

	items := make([]string, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		items = append(items, tx.Title)
	}
	if len(items) == 0 {
		items = []string{placeholderItem}
	}

	var created time.Time
	if r.CreationTimestamp > 0 {
		created = time.Unix(r.CreationTimestamp, 0)
	}

	return models.Order{
		ID:     r.ReceiptID,
		Amount: amount,
		Buyer:  buyer,
		Time:   created,
		Items:  items,
	}
}

// startOfDay returns local midnight of the given instant, matching the
// upstream's min_created expectation (seconds since epoch).
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
