package shipstation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grbod/dashboard/internal/cache"
	"github.com/grbod/dashboard/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://ssapi.shipstation.com"

	// DefaultOrderStatus is the pending-orders filter used by the dashboard.
	DefaultOrderStatus = "awaiting_shipment"
	// DefaultDaysBack bounds the date-range query parameters.
	DefaultDaysBack = 30

	pageSize = 500
)

var ErrMissingCredentials = errors.New("shipstation api key and secret are required")

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("shipstation api error: %s", e.Status)
	}
	return fmt.Sprintf("shipstation api error: %s: %s", e.Status, e.Body)
}

// Client talks to the ShipStation API using a static basic-auth header;
// no token round-trip is required. Fetch results are cached per parameter
// set for the configured TTL.
type Client struct {
	http      *resty.Client
	hasAuth   bool
	orders    *cache.Cache[OrdersResponse]
	shipments *cache.Cache[ShipmentsResponse]
	stores    *cache.Cache[[]Store]
	now       func() time.Time
	logger    *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	key := strings.TrimSpace(cfg.SSClientID)
	secret := strings.TrimSpace(cfg.SSClientSecret)
	hasAuth := key != "" && secret != ""
	if hasAuth {
		httpClient.SetBasicAuth(key, secret)
	}

	return &Client{
		http:      httpClient,
		hasAuth:   hasAuth,
		orders:    cache.New[OrdersResponse](cfg.CacheTTL),
		shipments: cache.New[ShipmentsResponse](cfg.CacheTTL),
		stores:    cache.New[[]Store](cfg.CacheTTL),
		now:       time.Now,
		logger:    logger.Named("shipstation"),
	}
}

// Orders fetches orders filtered by status over the trailing daysBack window.
func (c *Client) Orders(ctx context.Context, status string, daysBack int) (OrdersResponse, error) {
	if !c.hasAuth {
		return OrdersResponse{}, ErrMissingCredentials
	}
	if strings.TrimSpace(status) == "" {
		status = DefaultOrderStatus
	}
	if daysBack <= 0 {
		daysBack = DefaultDaysBack
	}

	key := fmt.Sprintf("orders:%s:%d", status, daysBack)
	if resp, ok := c.orders.Get(key); ok {
		return resp, nil
	}

	start, end := c.dateRange(daysBack)
	query := map[string]string{
		"orderStatus":     status,
		"createDateStart": start,
		"createDateEnd":   end,
		"pageSize":        strconv.Itoa(pageSize),
	}

	var all OrdersResponse
	for page := 1; ; page++ {
		query["page"] = strconv.Itoa(page)

		var resp OrdersResponse
		if err := c.doGet(ctx, "/orders", query, &resp); err != nil {
			c.logger.Error("orders request failed", zap.Error(err))
			return OrdersResponse{}, err
		}

		all.Orders = append(all.Orders, resp.Orders...)
		all.Total = resp.Total
		if page >= resp.Pages || len(resp.Orders) == 0 {
			break
		}
	}

	c.orders.Set(key, all)
	return all, nil
}

// Shipments fetches shipments created over the trailing daysBack window.
func (c *Client) Shipments(ctx context.Context, daysBack int) (ShipmentsResponse, error) {
	if !c.hasAuth {
		return ShipmentsResponse{}, ErrMissingCredentials
	}
	if daysBack <= 0 {
		daysBack = DefaultDaysBack
	}

	key := fmt.Sprintf("shipments:%d", daysBack)
	if resp, ok := c.shipments.Get(key); ok {
		return resp, nil
	}

	start, end := c.dateRange(daysBack)
	query := map[string]string{
		"createDateStart": start,
		"createDateEnd":   end,
		"pageSize":        strconv.Itoa(pageSize),
	}

	var all ShipmentsResponse
	for page := 1; ; page++ {
		query["page"] = strconv.Itoa(page)

		var resp ShipmentsResponse
		if err := c.doGet(ctx, "/shipments", query, &resp); err != nil {
			c.logger.Error("shipments request failed", zap.Error(err))
			return ShipmentsResponse{}, err
		}

		all.Shipments = append(all.Shipments, resp.Shipments...)
		all.Total = resp.Total
		if page >= resp.Pages || len(resp.Shipments) == 0 {
			break
		}
	}

	c.shipments.Set(key, all)
	return all, nil
}

// Stores fetches the store listing used to resolve order store identifiers.
func (c *Client) Stores(ctx context.Context) ([]Store, error) {
	if !c.hasAuth {
		return nil, ErrMissingCredentials
	}

	if stores, ok := c.stores.Get("stores"); ok {
		return stores, nil
	}

	var stores []Store
	if err := c.doGet(ctx, "/stores", nil, &stores); err != nil {
		c.logger.Error("stores request failed", zap.Error(err))
		return nil, err
	}

	c.stores.Set("stores", stores)
	return stores, nil
}

func (c *Client) doGet(ctx context.Context, path string, query map[string]string, result any) error {
	req := c.http.R().SetContext(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("shipstation request: %w", err)
	}
	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}
	return nil
}

func (c *Client) dateRange(daysBack int) (start, end string) {
	today := c.now()
	return today.AddDate(0, 0, -daysBack).Format("2006-01-02"), today.Format("2006-01-02")
}
