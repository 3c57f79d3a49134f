// Package nominatim resolves free-text place names through the
// OpenStreetMap Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/astrarium/natalchart/internal/domain/chart"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Client queries the Nominatim search endpoint, first match only.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds an API client. Nominatim's usage policy requires an
// identifying User-Agent.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve returns the coordinates of the best match for a place name.
func (c *Client) Resolve(ctx context.Context, place string) (chart.Coordinates, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "json")
	query.Set("limit", "1")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return chart.Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chart.Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return chart.Coordinates{}, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return chart.Coordinates{}, fmt.Errorf("read geocode response: %w", err)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return chart.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return chart.Coordinates{}, fmt.Errorf("no match for %q", place)
	}

	return results[0].coordinates()
}

// searchResult is the subset of the Nominatim payload the service
// needs. Coordinates arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (r searchResult) coordinates() (chart.Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return chart.Coordinates{}, fmt.Errorf("parse lat %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return chart.Coordinates{}, fmt.Errorf("parse lon %q: %w", r.Lon, err)
	}
	return chart.Coordinates{Lat: lat, Lon: lon}, nil
}

var _ chart.Geocoder = (*Client)(nil)
