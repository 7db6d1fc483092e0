package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"officex/pkg/logger"
)

// Client fetches recent sales over HTTP for non-critical list views.
//
// This client deliberately degrades instead of failing: any transport or
// decode problem is logged and an empty slice returned, so the consuming
// view still renders. JSON API endpoints keep the strict policy; do not
// reuse this client for them.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a sales client against the given base URL
// (e.g. http://localhost:8080).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RecentSales returns up to limit recent sales, or an empty slice when the
// fetch fails for any reason. Never returns an error.
// The sales endpoint sits behind auth, so the caller's Authorization header
// value is forwarded as-is; an empty authorization is sent without one.
func (c *Client) RecentSales(ctx context.Context, authorization string, limit int) []Sale {
	if limit <= 0 {
		limit = 100
	}

	endpoint := fmt.Sprintf("%s/api/v1/sales?%s", c.baseURL,
		url.Values{"limit": {strconv.Itoa(limit)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Warn(ctx, "sales fetch skipped, bad request", "error", err)
		return []Sale{}
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn(ctx, "sales fetch failed, rendering empty list", "error", err)
		return []Sale{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn(ctx, "sales fetch returned non-2xx, rendering empty list",
			"status", resp.StatusCode,
		)
		return []Sale{}
	}

	var payload struct {
		Items []Sale `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warn(ctx, "sales payload decode failed, rendering empty list", "error", err)
		return []Sale{}
	}
	if payload.Items == nil {
		return []Sale{}
	}
	return payload.Items
}
