// SPDX-License-Identifier: GPL-3.0-only

package coverage

import "context"

// Package is one purchasable commercial package. Read-only here; the
// catalog is owned by an external collaborator.
type Package struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	ServiceType     string   `json:"serviceType"`
	ProductCategory string   `json:"productCategory"`
	CustomerType    string   `json:"customerType"`
	SpeedDown       int      `json:"speedDown"`
	SpeedUp         int      `json:"speedUp"`
	Price           float64  `json:"price"`
	PromotionPrice  *float64 `json:"promotionPrice,omitempty"`
	PromotionMonths *int     `json:"promotionMonths,omitempty"`
	Features        []string `json:"features"`
}

// Catalog fetches active packages. When byCategory is true the values match
// against product_category, otherwise against service_type; the latter
// serves the legacy rows where the mapper's pass-through fallback fired.
// Results are ordered by ascending price.
type Catalog interface {
	ActivePackages(ctx context.Context, values []string, byCategory bool, customerType string) ([]Package, error)
}

// PackagesOutcome is the commercial answer derived from a coverage result.
type PackagesOutcome struct {
	Categories          []string  `json:"categories"`
	Packages            []Package `json:"packages"`
	HasLicensedWireless bool      `json:"hasLicensedWireless"`
	// RequiresQuote: the only available service is quoted per site, so
	// there is nothing to list but the customer can still be served.
	RequiresQuote bool `json:"requiresQuote"`
}

// SelectPackages maps the result's available services to product categories
// and fetches the matching active packages, cheapest first.
func (e *Engine) SelectPackages(ctx context.Context, result CoverageResult, customerType string) (PackagesOutcome, error) {
	outcome := PackagesOutcome{Categories: []string{}, Packages: []Package{}}

	packageable, hasLicensedWireless := PackageableServices(result.Services)
	outcome.HasLicensedWireless = hasLicensedWireless
	if len(packageable) == 0 {
		outcome.RequiresQuote = hasLicensedWireless
		return outcome, nil
	}

	mapping, err := MapToCategories(ctx, e.Mappings, packageable)
	if err != nil {
		return outcome, err
	}
	outcome.Categories = mapping.Categories

	if customerType != "business" {
		customerType = "consumer"
	}
	packages, err := e.Catalog.ActivePackages(ctx, mapping.Categories, mapping.Mapped, customerType)
	if err != nil {
		return outcome, err
	}
	outcome.Packages = packages
	outcome.RequiresQuote = hasLicensedWireless && len(packages) == 0
	return outcome, nil
}
