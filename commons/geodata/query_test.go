// SPDX-License-Identifier: GPL-3.0-only

package geodata

import (
	"math"
	"testing"
)

func TestInCountry(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"johannesburg", -26.2041, 28.0473, true},
		{"cape town", -33.9249, 18.4241, true},
		{"durban", -29.8587, 31.0218, true},
		{"north boundary", -22.0, 25.0, true},
		{"south boundary", -35.0, 20.0, true},
		{"just north of boundary", -21.9999, 25.0, false},
		{"london", 51.5074, -0.1278, false},
		{"harare", -17.8292, 31.0522, false},
	}
	for _, tc := range cases {
		if got := InCountry(tc.lat, tc.lng); got != tc.want {
			t.Errorf("%s: InCountry(%v, %v) = %v, want %v", tc.name, tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestProvinceAt(t *testing.T) {
	province, ok := ProvinceAt(-26.2041, 28.0473)
	if !ok {
		t.Fatal("Expected a province for Johannesburg")
	}
	if province.Name != "Gauteng" {
		t.Errorf("Expected Gauteng for Johannesburg, got %s", province.Name)
	}

	province, ok = ProvinceAt(-33.9249, 18.4241)
	if !ok {
		t.Fatal("Expected a province for Cape Town")
	}
	if province.Name != "Western Cape" {
		t.Errorf("Expected Western Cape for Cape Town, got %s", province.Name)
	}

	if _, ok := ProvinceAt(10.0, 10.0); ok {
		t.Error("Expected no province for a point far outside the country")
	}
}

func TestProvinceAtIsDeterministic(t *testing.T) {
	// Border boxes overlap; repeated lookups must not flap.
	first, ok := ProvinceAt(-26.9, 27.5)
	if !ok {
		t.Fatal("Expected a province for a border point")
	}
	for i := 0; i < 50; i++ {
		again, _ := ProvinceAt(-26.9, 27.5)
		if again.Name != first.Name {
			t.Fatalf("Province lookup flapped: %s then %s", first.Name, again.Name)
		}
	}
}

func TestHaversineKm(t *testing.T) {
	// Johannesburg to Cape Town is roughly 1265km.
	d := HaversineKm(-26.2041, 28.0473, -33.9249, 18.4241)
	if d < 1200 || d > 1330 {
		t.Errorf("Expected ~1265km between Johannesburg and Cape Town, got %.1f", d)
	}

	if d := HaversineKm(-26.2, 28.0, -26.2, 28.0); d != 0 {
		t.Errorf("Expected zero distance for identical points, got %v", d)
	}
}

func TestNearestCityCountrywide(t *testing.T) {
	nearest, ok := NearestCityCountrywide(-33.93, 18.43)
	if !ok {
		t.Fatal("Expected a nearest city")
	}
	if nearest.City.Name != "Cape Town" {
		t.Errorf("Expected Cape Town, got %s", nearest.City.Name)
	}
	if nearest.DistanceKm > 5 {
		t.Errorf("Expected distance under 5km, got %.1f", nearest.DistanceKm)
	}
}

func TestNeighborAt(t *testing.T) {
	neighbor, ok := NeighborAt(-24.6282, 25.9231) // Gaborone
	if !ok {
		t.Fatal("Expected Gaborone to fall in a neighbouring country")
	}
	if neighbor.Name != "Botswana" {
		t.Errorf("Expected Botswana, got %s", neighbor.Name)
	}

	if _, ok := NeighborAt(48.8566, 2.3522); ok {
		t.Error("Expected no neighbour match for Paris")
	}
}

func TestDistanceToCountryKm(t *testing.T) {
	if d := DistanceToCountryKm(-26.2041, 28.0473); d != 0 {
		t.Errorf("Expected zero distance for an interior point, got %v", d)
	}
	d := DistanceToCountryKm(51.5074, -0.1278)
	if d < 5000 {
		t.Errorf("Expected London to be thousands of km away, got %.0f", d)
	}
	if math.IsNaN(d) {
		t.Error("Distance must not be NaN")
	}
}

func TestLikelyOffshore(t *testing.T) {
	if !LikelyOffshore(-34.99, 20.0) {
		t.Error("Expected a point on the southern edge to read as offshore")
	}
	if LikelyOffshore(-26.2041, 28.0473) {
		t.Error("Johannesburg must not read as offshore")
	}
}
