// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// PointInPolygonJSON tests a coordinate against a GeoJSON geometry string.
// Polygon and MultiPolygon geometries are supported; anything else is an
// error so bad rows are visible in logs instead of silently never matching.
func PointInPolygonJSON(polygonJSON string, coords Coordinates) (bool, error) {
	geom, err := geojson.UnmarshalGeometry([]byte(polygonJSON))
	if err != nil {
		return false, fmt.Errorf("decode polygon: %w", err)
	}
	point := orb.Point{coords.Lng, coords.Lat}
	switch g := geom.Geometry().(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, point), nil
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, point), nil
	default:
		return false, fmt.Errorf("unsupported geometry type %q", geom.Type)
	}
}

// SpatialRecord is one stored coverage footprint eligible for
// point-in-polygon matching.
type SpatialRecord struct {
	ServiceType ServiceType
	Polygon     string
}

// matchSpatial returns one availability record per distinct service type
// whose polygon contains the point. Every record is tagged spatial so
// consumers can tell a degraded answer from a live one.
func matchSpatial(coords Coordinates, records []SpatialRecord, warn func(format string, args ...any)) []ServiceAvailability {
	seen := make(map[ServiceType]bool)
	var services []ServiceAvailability
	for _, rec := range records {
		if rec.Polygon == "" || seen[rec.ServiceType] {
			continue
		}
		inside, err := PointInPolygonJSON(rec.Polygon, coords)
		if err != nil {
			if warn != nil {
				warn("skipping coverage area with bad polygon (%s): %v", rec.ServiceType, err)
			}
			continue
		}
		if !inside {
			continue
		}
		seen[rec.ServiceType] = true
		services = append(services, ServiceAvailability{
			ServiceType:        rec.ServiceType,
			Available:          true,
			SourceTier:         TierSpatial,
			ProviderConfidence: ConfidenceMedium,
		})
	}
	return services
}
