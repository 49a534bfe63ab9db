// SPDX-License-Identifier: GPL-3.0-only

package geodata

import "math"

const earthRadiusKm = 6371.0

// provinceOrder fixes the lookup order so overlapping border boxes resolve
// the same way on every call.
var provinceOrder = []string{"GP", "WC", "KZN", "EC", "FS", "NW", "MP", "LP", "NC"}

func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.South && lat <= b.North && lng >= b.West && lng <= b.East
}

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// InCountry reports whether the point falls inside the service region.
func InCountry(lat, lng float64) bool {
	return CountryBounds.Contains(lat, lng)
}

// ProvinceAt returns the province whose bounding box contains the point.
// Provincial boxes overlap at borders, so the answer is advisory.
func ProvinceAt(lat, lng float64) (Province, bool) {
	for _, code := range provinceOrder {
		p := Provinces[code]
		if p.Bounds.Contains(lat, lng) {
			return p, true
		}
	}
	return Province{}, false
}

// NearestCity finds the closest city out of the given set.
func NearestCity(lat, lng float64, cities []City) (NearestCityResult, bool) {
	var best NearestCityResult
	found := false
	for _, city := range cities {
		d := HaversineKm(lat, lng, city.Lat, city.Lng)
		if !found || d < best.DistanceKm {
			best = NearestCityResult{City: city, DistanceKm: d}
			found = true
		}
	}
	return best, found
}

// NearestCityCountrywide searches every province's major cities.
func NearestCityCountrywide(lat, lng float64) (NearestCityResult, bool) {
	var all []City
	for _, code := range provinceOrder {
		all = append(all, Provinces[code].MajorCities...)
	}
	return NearestCity(lat, lng, all)
}

// NeighborAt returns the neighbouring country containing the point, if any.
func NeighborAt(lat, lng float64) (Bounds, bool) {
	for _, name := range []string{"namibia", "botswana", "zimbabwe", "mozambique", "eswatini", "lesotho"} {
		b := Neighbors[name]
		if b.Contains(lat, lng) {
			return b, true
		}
	}
	return Bounds{}, false
}

// DistanceToCountryKm measures from the point to the nearest edge of the
// country bounding box. Zero for points inside it.
func DistanceToCountryKm(lat, lng float64) float64 {
	clampedLat := math.Max(CountryBounds.South, math.Min(CountryBounds.North, lat))
	clampedLng := math.Max(CountryBounds.West, math.Min(CountryBounds.East, lng))
	return HaversineKm(lat, lng, clampedLat, clampedLng)
}

// offshoreBuffer is roughly 5km expressed in degrees.
const offshoreBuffer = 0.05

// LikelyOffshore flags points hugging the coastal edges of the country box.
func LikelyOffshore(lat, lng float64) bool {
	return lng < CountryBounds.West+offshoreBuffer ||
		lng > CountryBounds.East-offshoreBuffer ||
		lat < CountryBounds.South+offshoreBuffer
}
