// SPDX-License-Identifier: GPL-3.0-only

package wms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coverage-server/commons"
	"coverage-server/coverage"
)

const (
	// DefaultTimeout bounds a full dual-source check; the upstream
	// geoservers answer in low seconds when healthy.
	DefaultTimeout = 15 * time.Second

	// bboxSizeMeters is the side length of the query window centred on
	// the point. 100m matches the resolution of the published layers.
	bboxSizeMeters = 100

	tileSize     = 256
	queryPixel   = 128
	featureCount = 10

	metersPerDegree = 111320.0
)

// Config describes one provider's geoserver pair.
type Config struct {
	Provider    string
	BusinessURL string
	ConsumerURL string
	Timeout     time.Duration
}

// Client queries one provider's business and consumer WMS endpoints and
// returns the raw per-layer results. Interpretation is left to the caller.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

func (c *Client) Provider() string {
	return c.config.Provider
}

// CheckCoverage queries both sides concurrently, one request per layer.
// Individual layer failures are recorded on the result; the method only
// errors when every single query failed, which means the provider itself
// is unreachable.
func (c *Client) CheckCoverage(ctx context.Context, coords coverage.Coordinates, serviceTypes []coverage.ServiceType) (coverage.DualSourcePayload, error) {
	businessLayers := filterLayers(BusinessLayers, serviceTypes)
	consumerLayers := filterLayers(ConsumerLayers, serviceTypes)
	total := len(businessLayers) + len(consumerLayers)
	if total == 0 {
		return coverage.DualSourcePayload{}, nil
	}

	results := make(chan coverage.LayerResult, total)
	for _, layer := range businessLayers {
		go func(layer Layer) {
			results <- c.queryLayer(ctx, coverage.SourceBusiness, businessWMSURL(c.config.BusinessURL), layer, coords)
		}(layer)
	}
	for _, layer := range consumerLayers {
		go func(layer Layer) {
			results <- c.queryLayer(ctx, coverage.SourceConsumer, c.config.ConsumerURL, layer, coords)
		}(layer)
	}

	var payload coverage.DualSourcePayload
	failures := 0
	for i := 0; i < total; i++ {
		result := <-results
		if !result.OK {
			failures++
			commons.Logger.Debugf("%s layer %s query failed: %s", c.config.Provider, result.Layer, result.Err)
		}
		switch result.Source {
		case coverage.SourceBusiness:
			payload.Business = append(payload.Business, result)
		default:
			payload.Consumer = append(payload.Consumer, result)
		}
	}

	if failures == total {
		return coverage.DualSourcePayload{}, coverage.NewError(
			coverage.CodeServiceUnavailable,
			fmt.Sprintf("all %d coverage layer queries failed for %s", total, c.config.Provider))
	}
	return payload, nil
}

func (c *Client) queryLayer(ctx context.Context, source coverage.Source, baseURL string, layer Layer, coords coverage.Coordinates) coverage.LayerResult {
	result := coverage.LayerResult{
		Layer:       layer.Name,
		ServiceType: layer.ServiceType,
		Source:      source,
	}
	if baseURL == "" {
		result.Err = string(coverage.CodeLayerNotAvailable)
		return result
	}

	requestURL := buildFeatureInfoURL(baseURL, layer.Name, coords)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Err = coverage.WrapError(coverage.CodeWMSRequestFailed, "feature info request failed", err).Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Err = fmt.Sprintf("%s: upstream returned %d", coverage.CodeWMSRequestFailed, resp.StatusCode)
		return result
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		result.Err = err.Error()
		return result
	}

	var featureInfo struct {
		Features []coverage.Feature `json:"features"`
	}
	if err := json.Unmarshal(body, &featureInfo); err != nil {
		result.Err = fmt.Sprintf("%s: unparseable feature info response", coverage.CodeWMSRequestFailed)
		return result
	}

	result.OK = true
	result.Features = featureInfo.Features
	return result
}

// buildFeatureInfoURL assembles a WMS 1.3.0 GetFeatureInfo request for a
// small window centred on the point, querying the centre pixel.
func buildFeatureInfoURL(baseURL, layerName string, coords coverage.Coordinates) string {
	halfLat := (bboxSizeMeters / 2.0) / metersPerDegree
	lngScale := math.Cos(coords.Lat * math.Pi / 180)
	if math.Abs(lngScale) < 0.01 {
		lngScale = 0.01
	}
	halfLng := (bboxSizeMeters / 2.0) / (metersPerDegree * lngScale)

	// CRS:84 keeps axis order lng,lat in version 1.3.0.
	bbox := fmt.Sprintf("%f,%f,%f,%f",
		coords.Lng-halfLng, coords.Lat-halfLat,
		coords.Lng+halfLng, coords.Lat+halfLat,
	)

	params := url.Values{}
	params.Set("SERVICE", "WMS")
	params.Set("VERSION", "1.3.0")
	params.Set("REQUEST", "GetFeatureInfo")
	params.Set("LAYERS", layerName)
	params.Set("QUERY_LAYERS", layerName)
	params.Set("STYLES", "")
	params.Set("CRS", "CRS:84")
	params.Set("BBOX", bbox)
	params.Set("WIDTH", fmt.Sprintf("%d", tileSize))
	params.Set("HEIGHT", fmt.Sprintf("%d", tileSize))
	params.Set("I", fmt.Sprintf("%d", queryPixel))
	params.Set("J", fmt.Sprintf("%d", queryPixel))
	params.Set("FORMAT", "image/png")
	params.Set("INFO_FORMAT", "application/json")
	params.Set("FEATURE_COUNT", fmt.Sprintf("%d", featureCount))
	return baseURL + "?" + params.Encode()
}

// businessWMSURL appends the wms path segment the enterprise geoserver
// expects; the consumer endpoint already includes it.
func businessWMSURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + "/wms"
}
