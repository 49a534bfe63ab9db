// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"math"
	"testing"
)

func TestValidateCoordinatesInside(t *testing.T) {
	v := ValidateCoordinates(Coordinates{Lat: -26.2041, Lng: 28.0473})
	if !v.IsValid {
		t.Fatal("Expected Johannesburg to be valid")
	}
	if v.Confidence != ConfidenceHigh {
		t.Errorf("Expected high confidence, got %s", v.Confidence)
	}
	if v.Province != "Gauteng" {
		t.Errorf("Expected Gauteng, got %s", v.Province)
	}
	if v.NearestCity != "Johannesburg" {
		t.Errorf("Expected Johannesburg as nearest city, got %s", v.NearestCity)
	}
}

func TestValidateCoordinatesOutside(t *testing.T) {
	v := ValidateCoordinates(Coordinates{Lat: 51.5074, Lng: -0.1278})
	if v.IsValid {
		t.Fatal("Expected London to be invalid")
	}
	if len(v.Warnings) == 0 {
		t.Error("Expected at least one warning for an out-of-bounds point")
	}
	if len(v.Suggestions) == 0 {
		t.Error("Expected suggestions for an out-of-bounds point")
	}
}

func TestValidateCoordinatesNeighbor(t *testing.T) {
	v := ValidateCoordinates(Coordinates{Lat: -24.6282, Lng: 25.9231})
	if v.IsValid {
		t.Fatal("Expected Gaborone to be invalid")
	}
	found := false
	for _, w := range v.Warnings {
		if w == "coordinates are in Botswana, not South Africa" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a Botswana warning, got %v", v.Warnings)
	}
}

func TestValidateCoordinatesBoundary(t *testing.T) {
	// Boundary values are inclusive on all four edges.
	for _, coords := range []Coordinates{
		{Lat: -22, Lng: 25},
		{Lat: -35, Lng: 25},
		{Lat: -30, Lng: 16},
		{Lat: -30, Lng: 33},
	} {
		if v := ValidateCoordinates(coords); !v.IsValid {
			t.Errorf("Expected boundary point (%v, %v) to be valid", coords.Lat, coords.Lng)
		}
	}
	for _, coords := range []Coordinates{
		{Lat: -21.9999, Lng: 25},
		{Lat: -35.0001, Lng: 25},
		{Lat: -30, Lng: 15.9999},
		{Lat: -30, Lng: 33.0001},
	} {
		if v := ValidateCoordinates(coords); v.IsValid {
			t.Errorf("Expected point just outside boundary (%v, %v) to be invalid", coords.Lat, coords.Lng)
		}
	}
}

func TestValidateCoordinatesNonFinite(t *testing.T) {
	for _, coords := range []Coordinates{
		{Lat: math.NaN(), Lng: 28.0},
		{Lat: -26.0, Lng: math.Inf(1)},
		{Lat: 91, Lng: 28.0},
		{Lat: -26.0, Lng: 181},
	} {
		if v := ValidateCoordinates(coords); v.IsValid {
			t.Errorf("Expected non-finite or out-of-domain coordinates (%v, %v) to be invalid", coords.Lat, coords.Lng)
		}
	}
}

func TestLocationMetadataDegradesToUnknown(t *testing.T) {
	// A valid point right at the country's edge may fall outside every
	// provincial box; the metadata must degrade instead of erroring.
	info := LocationMetadata(Coordinates{Lat: -24.0, Lng: 32.5})
	if info == nil {
		t.Fatal("Expected location metadata")
	}
	if info.Warnings == nil {
		t.Error("Warnings must never be nil")
	}
	if info.Province == "" {
		t.Error("Province must degrade to a non-empty placeholder")
	}
}

func TestLocationMetadataDensityBuckets(t *testing.T) {
	info := LocationMetadata(Coordinates{Lat: -26.2041, Lng: 28.0473})
	if info.PopulationDensityArea != "urban" {
		t.Errorf("Expected urban for central Johannesburg, got %s", info.PopulationDensityArea)
	}
	if info.CoverageLikelihood != "high" {
		t.Errorf("Expected high likelihood for central Johannesburg, got %s", info.CoverageLikelihood)
	}
}
