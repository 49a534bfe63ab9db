// SPDX-License-Identifier: GPL-3.0-only

package coverage

import "context"

// TypeMapping is one row of the technical-type → product-category table.
type TypeMapping struct {
	TechnicalType   string
	ProductCategory string
	Priority        int
	Active          bool
}

// MappingStore looks up active mapping rows for a set of technical types,
// ordered by priority ascending.
type MappingStore interface {
	ActiveMappings(ctx context.Context, technicalTypes []string) ([]TypeMapping, error)
}

// MappingOutcome reports how the resolved categories were derived.
type MappingOutcome struct {
	Categories []string
	// Mapped is false when the lookup-miss fallback fired and the input
	// was passed through as categories.
	Mapped bool
}

// MapToCategories translates technical service types into commercial
// product categories.
//
// Backward-compatibility rule: when no mapping rows match, the input is
// treated as already being product categories and returned unchanged. The
// legacy coverage_areas table stores product categories in its service_type
// column, so a lookup miss usually means the caller handed us categories,
// not an error. Callers can tell which interpretation applied via Mapped.
func MapToCategories(ctx context.Context, store MappingStore, technicalTypes []string) (MappingOutcome, error) {
	if len(technicalTypes) == 0 {
		return MappingOutcome{Categories: []string{}, Mapped: false}, nil
	}

	mappings, err := store.ActiveMappings(ctx, technicalTypes)
	if err != nil {
		return MappingOutcome{}, err
	}
	if len(mappings) == 0 {
		return MappingOutcome{Categories: technicalTypes, Mapped: false}, nil
	}

	seen := make(map[string]bool)
	var categories []string
	for _, m := range mappings {
		if seen[m.ProductCategory] {
			continue
		}
		seen[m.ProductCategory] = true
		categories = append(categories, m.ProductCategory)
	}
	return MappingOutcome{Categories: categories, Mapped: true}, nil
}

// PackageableServices splits licensed wireless out of the service list.
// Point-to-point microwave is quoted per site, never sold as a package, so
// it must not drive package selection; the caller surfaces it as a
// requires-quote flag instead.
func PackageableServices(services []ServiceAvailability) (packageable []string, hasLicensedWireless bool) {
	for _, s := range services {
		if !s.Available {
			continue
		}
		if s.ServiceType == ServiceLicensedWireless {
			hasLicensedWireless = true
			continue
		}
		packageable = append(packageable, string(s.ServiceType))
	}
	return packageable, hasLicensedWireless
}
