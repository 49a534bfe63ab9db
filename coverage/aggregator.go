// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coverage-server/commons"
)

// Gateway is a live provider adapter. Implementations query the upstream
// geoservice and return the raw dual-source payload without interpreting
// it; reconciliation happens here.
type Gateway interface {
	Provider() string
	CheckCoverage(ctx context.Context, coords Coordinates, serviceTypes []ServiceType) (DualSourcePayload, error)
}

// SpatialStore supplies stored coverage footprints for the second tier.
type SpatialStore interface {
	CoverageFootprints(ctx context.Context, serviceTypes []ServiceType) ([]SpatialRecord, error)
}

// AreaStore supplies named coverage areas for the text fallback tier.
type AreaStore interface {
	CoverageAreas(ctx context.Context) ([]AreaRecord, error)
}

// Geocoder turns a free-text address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// Recorder observes completed checks, for audit rows and event publishing.
// Implementations must not fail the request.
type Recorder interface {
	Record(ctx context.Context, result CoverageResult, address string)
}

// Options tune a single resolution.
type Options struct {
	// ServiceTypes restricts the check; empty means all known types.
	ServiceTypes []ServiceType
	// IncludeSignalStrength keeps per-service signal and speed detail in
	// the result instead of stripping it.
	IncludeSignalStrength bool
	// Address is the free-text address, used only by the text tier.
	Address string
	// HybridSources merges every tier's answers instead of stopping at
	// the first tier that produces one. The first tier to report a
	// service type wins on conflict.
	HybridSources bool
}

// Engine runs the tiered resolution: live provider queries first, stored
// footprints second, text area matching last. A tier that errors is logged
// and skipped, never surfaced; only out-of-bounds coordinates fail a check.
type Engine struct {
	Gateways []Gateway // priority order
	Spatial  SpatialStore
	Areas    AreaStore
	Mappings MappingStore
	Catalog  Catalog
	Geocoder Geocoder
	Cache    *ResultCache
	Recorder Recorder

	now func() time.Time
}

func (e *Engine) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now().UTC()
}

// CheckAddress geocodes the address and resolves coverage at the result.
func (e *Engine) CheckAddress(ctx context.Context, address string, opts Options) (CoverageResult, error) {
	if e.Geocoder == nil {
		return CoverageResult{}, NewError(CodeGeocodingFailed, "geocoding is not configured")
	}
	coords, err := e.Geocoder.Geocode(ctx, address)
	if err != nil {
		return CoverageResult{}, WrapError(CodeGeocodingFailed, "unable to resolve address to coordinates", err)
	}
	opts.Address = address
	return e.Check(ctx, coords, opts)
}

// Check resolves coverage at a coordinate pair. An empty result is a
// success: metadata marks the source tier as none.
func (e *Engine) Check(ctx context.Context, coords Coordinates, opts Options) (CoverageResult, error) {
	validation := ValidateCoordinates(coords)
	if !validation.IsValid {
		boundsErr := NewError(CodeLocationOutOfBounds, "coordinates are outside the serviceable region")
		boundsErr.Warnings = validation.Warnings
		boundsErr.Suggestions = validation.Suggestions
		return CoverageResult{}, boundsErr
	}

	key := CacheKey(coords, opts.ServiceTypes, opts.IncludeSignalStrength, opts.HybridSources)
	if e.Cache != nil {
		if cached, ok := e.Cache.Get(key); ok {
			return cached, nil
		}
	}

	var (
		services []ServiceAvailability
		tier     = TierNone
		provider string
	)
	collect := func(found []ServiceAvailability, foundTier SourceTier, foundProvider string) {
		if len(found) == 0 {
			return
		}
		if tier == TierNone {
			tier = foundTier
			provider = foundProvider
		}
		services = mergeServices(services, found)
	}

	liveServices, liveProvider := e.liveTier(ctx, coords, opts)
	collect(liveServices, TierLive, liveProvider)

	if len(services) == 0 || opts.HybridSources {
		collect(e.spatialTier(ctx, coords, opts), TierSpatial, "")
	}
	if (len(services) == 0 || opts.HybridSources) && opts.Address != "" {
		collect(e.textTier(ctx, opts), TierText, "")
	}

	if services == nil {
		services = []ServiceAvailability{}
	}
	result := CoverageResult{
		RequestID:         uuid.NewString(),
		Coordinates:       coords,
		CoverageAvailable: len(services) > 0,
		Services:          services,
		Location:          LocationMetadata(coords),
		Metadata:          ResultMetadata{Source: tier, Confidence: tierConfidence(tier)},
		Provider:          provider,
		ResolvedAt:        e.clock(),
	}

	if e.Cache != nil {
		e.Cache.Put(key, result)
	}
	if e.Recorder != nil {
		e.Recorder.Record(ctx, result, opts.Address)
	}
	return result, nil
}

// liveTier walks the gateways in priority order and returns the first
// non-empty reconciled answer. Gateway failures are logged and skipped.
func (e *Engine) liveTier(ctx context.Context, coords Coordinates, opts Options) ([]ServiceAvailability, string) {
	for _, gateway := range e.Gateways {
		payload, err := gateway.CheckCoverage(ctx, coords, opts.ServiceTypes)
		if err != nil {
			commons.Logger.Warnf("live coverage query failed for %s: %v", gateway.Provider(), err)
			continue
		}
		services := filterByRequested(ParseDualSource(payload, opts.IncludeSignalStrength), opts.ServiceTypes)
		if len(services) > 0 {
			return services, gateway.Provider()
		}
	}
	return nil, ""
}

func (e *Engine) spatialTier(ctx context.Context, coords Coordinates, opts Options) []ServiceAvailability {
	if e.Spatial == nil {
		return nil
	}
	records, err := e.Spatial.CoverageFootprints(ctx, opts.ServiceTypes)
	if err != nil {
		commons.Logger.Warnf("spatial coverage lookup failed: %v", err)
		return nil
	}
	return matchSpatial(coords, records, commons.Logger.Warnf)
}

func (e *Engine) textTier(ctx context.Context, opts Options) []ServiceAvailability {
	if e.Areas == nil {
		return nil
	}
	areas, err := e.Areas.CoverageAreas(ctx)
	if err != nil {
		commons.Logger.Warnf("text area lookup failed: %v", err)
		return nil
	}
	return filterByRequested(MatchByAddressText(opts.Address, areas), opts.ServiceTypes)
}

// mergeServices appends additions whose service type is not already
// present. Earlier tiers win.
func mergeServices(existing, additions []ServiceAvailability) []ServiceAvailability {
	seen := make(map[ServiceType]bool, len(existing))
	for _, svc := range existing {
		seen[svc.ServiceType] = true
	}
	for _, svc := range additions {
		if seen[svc.ServiceType] {
			continue
		}
		seen[svc.ServiceType] = true
		existing = append(existing, svc)
	}
	return existing
}

func filterByRequested(services []ServiceAvailability, requested []ServiceType) []ServiceAvailability {
	if len(requested) == 0 {
		return services
	}
	wanted := make(map[ServiceType]bool, len(requested))
	for _, t := range requested {
		wanted[t] = true
	}
	filtered := services[:0:0]
	for _, svc := range services {
		if wanted[svc.ServiceType] {
			filtered = append(filtered, svc)
		}
	}
	return filtered
}

func tierConfidence(tier SourceTier) Confidence {
	switch tier {
	case TierLive:
		return ConfidenceHigh
	case TierSpatial:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
