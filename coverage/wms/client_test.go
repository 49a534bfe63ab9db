// SPDX-License-Identifier: GPL-3.0-only

package wms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"coverage-server/coverage"
)

func TestBuildFeatureInfoURL(t *testing.T) {
	raw := buildFeatureInfoURL("http://example.com/wms", "mtnsi:SUPERSONIC-CONSOLIDATED",
		coverage.Coordinates{Lat: -26.2041, Lng: 28.0473})

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	params := parsed.Query()
	checks := map[string]string{
		"SERVICE":       "WMS",
		"VERSION":       "1.3.0",
		"REQUEST":       "GetFeatureInfo",
		"CRS":           "CRS:84",
		"LAYERS":        "mtnsi:SUPERSONIC-CONSOLIDATED",
		"QUERY_LAYERS":  "mtnsi:SUPERSONIC-CONSOLIDATED",
		"WIDTH":         "256",
		"HEIGHT":        "256",
		"I":             "128",
		"J":             "128",
		"FEATURE_COUNT": "10",
		"INFO_FORMAT":   "application/json",
	}
	for key, want := range checks {
		if got := params.Get(key); got != want {
			t.Errorf("Expected %s=%s, got %s", key, want, got)
		}
	}

	// CRS:84 axis order is lng,lat and the window straddles the point.
	bbox := strings.Split(params.Get("BBOX"), ",")
	if len(bbox) != 4 {
		t.Fatalf("Expected a 4-part BBOX, got %v", bbox)
	}
	if !strings.HasPrefix(bbox[0], "28.04") || !strings.HasPrefix(bbox[1], "-26.20") {
		t.Errorf("Expected lng,lat axis order in BBOX, got %v", bbox)
	}
}

func TestBusinessWMSURL(t *testing.T) {
	if got := businessWMSURL("https://example.com/coverage/dev/v3"); got != "https://example.com/coverage/dev/v3/wms" {
		t.Errorf("Unexpected business URL: %s", got)
	}
	if got := businessWMSURL("https://example.com/coverage/dev/v3/"); got != "https://example.com/coverage/dev/v3/wms" {
		t.Errorf("Expected trailing slash handled, got %s", got)
	}
	if got := businessWMSURL(""); got != "" {
		t.Errorf("Expected empty stays empty, got %s", got)
	}
}

func TestCheckCoverageDualSource(t *testing.T) {
	business := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/wms") {
			t.Errorf("Expected the business request on the wms path, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[{"properties":{"coverage":true,"signal":85}}]}`))
	}))
	defer business.Close()

	consumer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[]}`))
	}))
	defer consumer.Close()

	client := NewClient(Config{
		Provider:    "mtn",
		BusinessURL: business.URL,
		ConsumerURL: consumer.URL,
	})

	payload, err := client.CheckCoverage(context.Background(),
		coverage.Coordinates{Lat: -26.2041, Lng: 28.0473}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Business) != len(BusinessLayers) {
		t.Errorf("Expected %d business layer results, got %d", len(BusinessLayers), len(payload.Business))
	}
	if len(payload.Consumer) != len(ConsumerLayers) {
		t.Errorf("Expected %d consumer layer results, got %d", len(ConsumerLayers), len(payload.Consumer))
	}
	for _, result := range payload.Business {
		if !result.OK {
			t.Errorf("Expected business layer %s to succeed: %s", result.Layer, result.Err)
		}
		if len(result.Features) != 1 {
			t.Errorf("Expected one feature for %s, got %d", result.Layer, len(result.Features))
		}
	}
	for _, result := range payload.Consumer {
		if !result.OK {
			t.Errorf("Expected consumer layer %s to succeed: %s", result.Layer, result.Err)
		}
		if len(result.Features) != 0 {
			t.Errorf("Expected no features for %s", result.Layer)
		}
	}
}

func TestCheckCoverageFiltersLayers(t *testing.T) {
	var mu sync.Mutex
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.Query().Get("LAYERS"))
		mu.Unlock()
		w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{Provider: "mtn", BusinessURL: server.URL, ConsumerURL: server.URL})
	_, err := client.CheckCoverage(context.Background(),
		coverage.Coordinates{Lat: -26.2041, Lng: 28.0473},
		[]coverage.ServiceType{coverage.ServiceFibre})
	if err != nil {
		t.Fatal(err)
	}
	// fibre maps to one business layer and one consumer layer.
	if len(requested) != 2 {
		t.Errorf("Expected two layer queries for fibre, got %v", requested)
	}
}

func TestCheckCoverageAllLayersFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{Provider: "mtn", BusinessURL: server.URL, ConsumerURL: server.URL})
	_, err := client.CheckCoverage(context.Background(),
		coverage.Coordinates{Lat: -26.2041, Lng: 28.0473}, nil)
	if err == nil {
		t.Fatal("Expected an error when every layer query fails")
	}
	typed := coverage.AsError(err)
	if typed.Code != coverage.CodeServiceUnavailable {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %s", typed.Code)
	}
}
