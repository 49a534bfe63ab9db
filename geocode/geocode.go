// SPDX-License-Identifier: GPL-3.0-only

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"coverage-server/commons"
	"coverage-server/coverage"
)

const DefaultTimeout = 10 * time.Second

// Config points at a Nominatim-compatible geocoding service.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client resolves free-text addresses to coordinates, restricted to South
// African results.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = commons.GetEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// Geocode returns the best match for the address. No match is an error:
// the caller has nothing to resolve coverage against.
func (c *Client) Geocode(ctx context.Context, address string) (coverage.Coordinates, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "za")
	requestURL := c.config.BaseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return coverage.Coordinates{}, coverage.WrapError(coverage.CodeGeocodingFailed, "invalid geocoding request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return coverage.Coordinates{}, coverage.WrapError(coverage.CodeGeocodingFailed, "geocoding service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return coverage.Coordinates{}, coverage.NewError(coverage.CodeGeocodingFailed,
			fmt.Sprintf("geocoding service returned %d", resp.StatusCode))
	}

	var matches []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return coverage.Coordinates{}, coverage.WrapError(coverage.CodeGeocodingFailed, "unparseable geocoding response", err)
	}
	if len(matches) == 0 {
		return coverage.Coordinates{}, coverage.NewError(coverage.CodeGeocodingFailed, "no matches for address")
	}

	lat, latErr := strconv.ParseFloat(matches[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(matches[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return coverage.Coordinates{}, coverage.NewError(coverage.CodeGeocodingFailed, "malformed coordinates in geocoding response")
	}
	return coverage.Coordinates{Lat: lat, Lng: lng}, nil
}
