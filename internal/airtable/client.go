package airtable

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grbod/dashboard/internal/cache"
	"github.com/grbod/dashboard/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.airtable.com/v0"

var ErrNotConfigured = errors.New("airtable api key, base id and table name are required")

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("airtable api error: %s", e.Status)
	}
	return fmt.Sprintf("airtable api error: %s: %s", e.Status, e.Body)
}

// Client lists procurement records from the spreadsheet-style record
// store, filtered by a formula expression and paginated by offset.
type Client struct {
	http      *resty.Client
	baseID    string
	tableName string
	cache     *cache.Cache[[]Record]
	now       func() time.Time
	logger    *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(cfg.Timeout)

	if strings.TrimSpace(cfg.AirtableAPIKey) != "" {
		httpClient.SetAuthScheme("Bearer")
		httpClient.SetAuthToken(cfg.AirtableAPIKey)
	}

	return &Client{
		http:      httpClient,
		baseID:    strings.TrimSpace(cfg.AirtableBaseID),
		tableName: strings.TrimSpace(cfg.AirtableTableName),
		cache:     cache.New[[]Record](cfg.CacheTTL),
		now:       time.Now,
		logger:    logger.Named("airtable"),
	}
}

// Configured reports whether the client has the credentials to fetch.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.http.Token) != "" && c.baseID != "" && c.tableName != ""
}

// UpcomingPickups lists procurement records whose status is in the pickup
// whitelist and whose ready date falls in the two-week window around now.
func (c *Client) UpcomingPickups(ctx context.Context) ([]Record, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	start, end := TwoWeekRange(c.now())
	formula := PickupFilterFormula(start, end)

	if records, ok := c.cache.Get(formula); ok {
		return records, nil
	}

	c.logger.Info("fetching records", zap.String("formula", formula))

	records, err := c.list(ctx, formula)
	if err != nil {
		c.logger.Error("list request failed", zap.Error(err))
		return nil, err
	}

	c.logger.Info("fetched upcoming pickups", zap.Int("count", len(records)))
	c.cache.Set(formula, records)
	return records, nil
}

func (c *Client) list(ctx context.Context, formula string) ([]Record, error) {
	var records []Record
	offset := ""

	for {
		var resp listResponse
		query := map[string]string{"filterByFormula": formula}
		if offset != "" {
			query["offset"] = offset
		}

		path := fmt.Sprintf("/%s/%s", c.baseID, c.tableName)
		r, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			SetResult(&resp).
			Get(path)
		if err != nil {
			return nil, fmt.Errorf("airtable request: %w", err)
		}
		if r.IsError() {
			return nil, &APIError{
				StatusCode: r.StatusCode(),
				Status:     r.Status(),
				Body:       strings.TrimSpace(r.String()),
			}
		}

		records = append(records, resp.Records...)
		if resp.Offset == "" {
			break
		}
		offset = resp.Offset
	}

	return records, nil
}
