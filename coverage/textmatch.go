// SPDX-License-Identifier: GPL-3.0-only

package coverage

import "strings"

// AreaRecord is one named coverage area used by the text fallback tier.
type AreaRecord struct {
	Name        string
	City        string
	ServiceType ServiceType
	Polygon     string
}

// MatchByAddressText is the last-resort resolver: case-insensitive
// substring containment between the address and each area's name and city.
// Matching is bidirectional (the area name may appear inside the address,
// or the first address segment inside the area name) because the legacy
// area records were captured inconsistently. Weakest confidence tier.
func MatchByAddressText(address string, areas []AreaRecord) []ServiceAvailability {
	addressLower := strings.ToLower(strings.TrimSpace(address))
	if addressLower == "" {
		return nil
	}
	firstSegment := strings.TrimSpace(strings.SplitN(addressLower, ",", 2)[0])

	seen := make(map[ServiceType]bool)
	var services []ServiceAvailability
	for _, area := range areas {
		areaName := strings.ToLower(strings.TrimSpace(area.Name))
		cityName := strings.ToLower(strings.TrimSpace(area.City))
		if !textAreaMatches(addressLower, firstSegment, areaName, cityName) {
			continue
		}
		if area.ServiceType == "" || seen[area.ServiceType] {
			continue
		}
		seen[area.ServiceType] = true
		services = append(services, ServiceAvailability{
			ServiceType:        area.ServiceType,
			Available:          true,
			SourceTier:         TierText,
			ProviderConfidence: ConfidenceLow,
		})
	}
	return services
}

func textAreaMatches(address, firstSegment, areaName, cityName string) bool {
	if areaName != "" {
		if strings.Contains(address, areaName) {
			return true
		}
		if firstSegment != "" && strings.Contains(areaName, firstSegment) {
			return true
		}
	}
	if cityName != "" {
		if strings.Contains(address, cityName) {
			return true
		}
		if firstSegment != "" && strings.Contains(cityName, firstSegment) {
			return true
		}
	}
	return false
}
