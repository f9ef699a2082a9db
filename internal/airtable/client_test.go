package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grbod/dashboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.Config {
	return config.Config{
		AirtableAPIKey:    "key",
		AirtableBaseID:    "appBase",
		AirtableTableName: "Procurement",
		Timeout:           5 * time.Second,
		CacheTTL:          15 * time.Minute,
	}
}

func TestUpcomingPickupsPaginatesAndCaches(t *testing.T) {
	var calls atomic.Int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/appBase/Procurement", r.URL.Path)
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		formula := r.URL.Query().Get("filterByFormula")
		require.True(t, strings.HasPrefix(formula, "AND(OR({Status}='Sent PO'"))
		require.Contains(t, formula, "IS_AFTER({Vendor Ready-Date}")

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("offset") == "" {
			json.NewEncoder(w).Encode(listResponse{
				Records: []Record{{ID: "rec1", Fields: map[string]any{"Vendor": "A"}}},
				Offset:  "page2",
			})
			return
		}
		json.NewEncoder(w).Encode(listResponse{
			Records: []Record{{ID: "rec2", Fields: map[string]any{"Vendor": "B"}}},
		})
	}))
	defer ts.Close()

	c := NewClient(testConfig(), zap.NewNop())
	c.http.SetBaseURL(ts.URL)
	c.now = func() time.Time { return time.Date(2025, 8, 13, 9, 0, 0, 0, time.UTC) }

	records, err := c.UpcomingPickups(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "rec2", records[1].ID)
	assert.Equal(t, int32(2), calls.Load())

	// second fetch inside the TTL window does not hit the server
	_, err = c.UpcomingPickups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestUpcomingPickupsNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.AirtableAPIKey = ""
	c := NewClient(cfg, zap.NewNop())

	_, err := c.UpcomingPickups(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUpcomingPickupsServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(testConfig(), zap.NewNop())
	c.http.SetBaseURL(ts.URL)

	_, err := c.UpcomingPickups(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
