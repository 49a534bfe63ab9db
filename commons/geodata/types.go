// SPDX-License-Identifier: GPL-3.0-only

package geodata

// Bounds is a rectangular lat/lng region.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
	Name  string
}

// City is a major population centre used for proximity heuristics.
type City struct {
	Name       string
	Lat        float64
	Lng        float64
	Population int
}

// Province is an administrative region with its bounding box and major cities.
type Province struct {
	Code        string
	Name        string
	Bounds      Bounds
	MajorCities []City
}

// NearestCityResult pairs a city with its haversine distance from a query point.
type NearestCityResult struct {
	City       City
	DistanceKm float64
}
