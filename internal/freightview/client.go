package freightview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/grbod/dashboard/internal/cache"
	"github.com/grbod/dashboard/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.freightview.com/v2.0"

	// DefaultStatus is the shipments status filter used by the dashboard.
	DefaultStatus = "picked-up"
)

var (
	ErrMissingCredentials = errors.New("freightview client id and secret are required")
	ErrUnauthorized       = errors.New("freightview unauthorized")
)

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("freightview api error: %s", e.Status)
	}
	return fmt.Sprintf("freightview api error: %s: %s", e.Status, e.Body)
}

// Client talks to the FreightView API. Each shipments fetch exchanges the
// configured client credentials for a bearer token first; successful
// results are cached per status filter for the configured TTL.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	cache        *cache.Cache[Model]
	logger       *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{
		http:         httpClient,
		clientID:     strings.TrimSpace(cfg.FreightViewClientID),
		clientSecret: strings.TrimSpace(cfg.FreightViewClientSecret),
		cache:        cache.New[Model](cfg.CacheTTL),
		logger:       logger.Named("freightview"),
	}
}

// Token exchanges the client credentials for a bearer token.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrMissingCredentials
	}

	payload := map[string]string{
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"grant_type":    "client_credentials",
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&tok).
		Post("/auth/token")
	if err != nil {
		return "", fmt.Errorf("freightview token request: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("auth failed",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", strings.TrimSpace(resp.String())),
		)
		return "", apiErrorFromResponse(resp)
	}
	if strings.TrimSpace(tok.AccessToken) == "" {
		return "", errors.New("freightview token response missing access_token")
	}
	return tok.AccessToken, nil
}

// Shipments fetches shipments filtered by status, returning a cached
// result when one is still within its TTL window.
func (c *Client) Shipments(ctx context.Context, status string) (Model, error) {
	if strings.TrimSpace(status) == "" {
		status = DefaultStatus
	}

	key := "shipments:" + status
	if model, ok := c.cache.Get(key); ok {
		return model, nil
	}

	token, err := c.Token(ctx)
	if err != nil {
		return Model{}, err
	}

	var model Model
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("status", status).
		SetResult(&model).
		Get("/shipments")
	if err != nil {
		return Model{}, fmt.Errorf("freightview shipments request: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("shipments request failed", zap.Int("status_code", resp.StatusCode()))
		return Model{}, apiErrorFromResponse(resp)
	}

	c.cache.Set(key, model)
	return model, nil
}

func apiErrorFromResponse(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       strings.TrimSpace(resp.String()),
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
	}
	return apiErr
}
