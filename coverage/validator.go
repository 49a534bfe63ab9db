// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"fmt"
	"math"

	"coverage-server/commons/geodata"
)

// Validation is the outcome of sanity-checking a coordinate pair against the
// service region. The advisory fields are best-effort and never fail a
// request on their own.
type Validation struct {
	IsValid     bool
	Confidence  Confidence
	Province    string
	NearestCity string
	DistanceKm  float64
	Warnings    []string
	Suggestions []string
}

// ValidateCoordinates fails closed: non-finite components, values outside
// the representable lat/lng domain, and points outside the country bounding
// box are all invalid.
func ValidateCoordinates(coords Coordinates) Validation {
	v := Validation{Confidence: ConfidenceLow}

	if !finiteCoordinates(coords) {
		v.Warnings = append(v.Warnings, "invalid coordinate format")
		v.Suggestions = append(v.Suggestions, "ensure coordinates are valid decimal degrees")
		return v
	}

	if geodata.InCountry(coords.Lat, coords.Lng) {
		v.IsValid = true
		v.Confidence = ConfidenceHigh

		if province, ok := geodata.ProvinceAt(coords.Lat, coords.Lng); ok {
			v.Province = province.Name
			if nearest, ok := geodata.NearestCity(coords.Lat, coords.Lng, province.MajorCities); ok {
				v.NearestCity = nearest.City.Name
				v.DistanceKm = nearest.DistanceKm
				if nearest.DistanceKm > 200 {
					v.Confidence = ConfidenceMedium
					v.Warnings = append(v.Warnings,
						fmt.Sprintf("location is %.1fkm from nearest major city (%s)", nearest.DistanceKm, nearest.City.Name))
				} else if nearest.DistanceKm > 100 {
					v.Warnings = append(v.Warnings,
						fmt.Sprintf("location is %.1fkm from %s", nearest.DistanceKm, nearest.City.Name))
				}
			}
		} else {
			v.Confidence = ConfidenceMedium
			v.Warnings = append(v.Warnings, "unable to determine province for coordinates")
		}

		if geodata.LikelyOffshore(coords.Lat, coords.Lng) {
			v.Confidence = ConfidenceLow
			v.Warnings = append(v.Warnings, "coordinates appear to be offshore - coverage unlikely")
			v.Suggestions = append(v.Suggestions, "verify coordinates are for a land-based location")
		}
		return v
	}

	if neighbor, ok := geodata.NeighborAt(coords.Lat, coords.Lng); ok {
		v.Warnings = append(v.Warnings, fmt.Sprintf("coordinates are in %s, not South Africa", neighbor.Name))
		v.Suggestions = append(v.Suggestions, "coverage checks are only available within South Africa")
		if nearest, ok := geodata.NearestCityCountrywide(coords.Lat, coords.Lng); ok {
			v.Suggestions = append(v.Suggestions,
				fmt.Sprintf("nearest South African city: %s (%.1fkm away)", nearest.City.Name, nearest.DistanceKm))
		}
		return v
	}

	distance := geodata.DistanceToCountryKm(coords.Lat, coords.Lng)
	v.Warnings = append(v.Warnings, fmt.Sprintf("coordinates are %.0fkm from South Africa", distance))
	v.Suggestions = append(v.Suggestions, "coverage checks are only available within South Africa")
	if distance > 1000 {
		v.Suggestions = append(v.Suggestions,
			"try coordinates for major cities: Johannesburg (-26.2041, 28.0473), Cape Town (-33.9249, 18.4241), Durban (-29.8587, 31.0218)")
	}
	return v
}

// LocationMetadata derives the advisory location block from a validation.
// Lookup misses degrade to "unknown" rather than erroring.
func LocationMetadata(coords Coordinates) *LocationInfo {
	v := ValidateCoordinates(coords)
	info := &LocationInfo{
		Province:              "unknown",
		NearestCity:           "unknown",
		PopulationDensityArea: "unknown",
		CoverageLikelihood:    "unknown",
		Confidence:            v.Confidence,
		Warnings:              v.Warnings,
	}
	if info.Warnings == nil {
		info.Warnings = []string{}
	}
	if v.Province != "" {
		info.Province = v.Province
	}
	if v.NearestCity != "" {
		info.NearestCity = v.NearestCity
		info.DistanceKm = v.DistanceKm
		switch {
		case v.DistanceKm < 10:
			info.PopulationDensityArea = "urban"
			info.CoverageLikelihood = "high"
		case v.DistanceKm < 50:
			info.PopulationDensityArea = "suburban"
			info.CoverageLikelihood = "medium"
		default:
			info.PopulationDensityArea = "rural"
			info.CoverageLikelihood = "low"
		}
	}
	return info
}

func finiteCoordinates(coords Coordinates) bool {
	return !math.IsNaN(coords.Lat) && !math.IsNaN(coords.Lng) &&
		!math.IsInf(coords.Lat, 0) && !math.IsInf(coords.Lng, 0) &&
		coords.Lat >= -90 && coords.Lat <= 90 &&
		coords.Lng >= -180 && coords.Lng <= 180
}
