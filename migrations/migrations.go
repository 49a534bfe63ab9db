// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"coverage-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_seed_network_providers",
			Migrate: func(tx *gorm.DB) error {
				providers := []models.NetworkProvider{
					{
						Code:        "mtn",
						DisplayName: "MTN",
						Enabled:     true,
						Priority:    10,
						BusinessURL: "https://mtnsi.mtn.co.za/coverage/dev/v3",
						ConsumerURL: "https://mtnsi.mtn.co.za/cache/geoserver/wms",
					},
				}
				for _, provider := range providers {
					if err := tx.Where("code = ?", provider.Code).
						FirstOrCreate(&provider).Error; err != nil {
						return fmt.Errorf("failed to seed provider %s: %w", provider.Code, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "002_seed_service_type_mappings",
			Migrate: func(tx *gorm.DB) error {
				mappings := []models.ServiceTypeMapping{
					{TechnicalType: "fibre", ProductCategory: "fibre", Priority: 10, Active: true},
					{TechnicalType: "fixed_lte", ProductCategory: "fixed-lte", Priority: 20, Active: true},
					{TechnicalType: "uncapped_wireless", ProductCategory: "uncapped-wireless", Priority: 30, Active: true},
					{TechnicalType: "5g", ProductCategory: "fixed-5g", Priority: 15, Active: true},
					{TechnicalType: "lte", ProductCategory: "mobile-data", Priority: 40, Active: true},
				}
				for _, mapping := range mappings {
					if err := tx.Where("technical_type = ? AND product_category = ?",
						mapping.TechnicalType, mapping.ProductCategory).
						FirstOrCreate(&mapping).Error; err != nil {
						return fmt.Errorf("failed to seed mapping %s: %w", mapping.TechnicalType, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "003_seed_service_packages",
			Migrate: func(tx *gorm.DB) error {
				promo := 499.0
				promoMonths := 3
				packages := []models.ServicePackage{
					{
						Name:            "Home Fibre 50/25",
						ServiceType:     "fibre",
						ProductCategory: "fibre",
						CustomerType:    "consumer",
						SpeedDown:       50,
						SpeedUp:         25,
						Price:           599,
						PromotionPrice:  &promo,
						PromotionMonths: &promoMonths,
						Features:        []string{"Uncapped", "Free installation", "Month to month"},
						Active:          true,
					},
					{
						Name:            "Home Fibre 100/50",
						ServiceType:     "fibre",
						ProductCategory: "fibre",
						CustomerType:    "consumer",
						SpeedDown:       100,
						SpeedUp:         50,
						Price:           799,
						Features:        []string{"Uncapped", "Free router", "Month to month"},
						Active:          true,
					},
					{
						Name:            "Business Fibre 200/100",
						ServiceType:     "fibre",
						ProductCategory: "fibre",
						CustomerType:    "business",
						SpeedDown:       200,
						SpeedUp:         100,
						Price:           1499,
						Features:        []string{"Uncapped", "Static IP", "Priority support"},
						Active:          true,
					},
					{
						Name:            "Fixed LTE 40GB",
						ServiceType:     "fixed_lte",
						ProductCategory: "fixed-lte",
						CustomerType:    "consumer",
						SpeedDown:       20,
						SpeedUp:         5,
						Price:           299,
						Features:        []string{"40GB anytime data", "Free router"},
						Active:          true,
					},
					{
						Name:            "Uncapped Wireless Pro",
						ServiceType:     "uncapped_wireless",
						ProductCategory: "uncapped-wireless",
						CustomerType:    "business",
						SpeedDown:       25,
						SpeedUp:         10,
						Price:           899,
						Features:        []string{"Uncapped", "Outdoor antenna included"},
						Active:          true,
					},
				}
				for _, pkg := range packages {
					if err := tx.Where("name = ?", pkg.Name).
						FirstOrCreate(&pkg).Error; err != nil {
						return fmt.Errorf("failed to seed package %s: %w", pkg.Name, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "004_seed_coverage_areas",
			Migrate: func(tx *gorm.DB) error {
				areas := []models.CoverageArea{
					{
						AreaName:    "Sea Point",
						City:        "Cape Town",
						Province:    "Western Cape",
						ServiceType: "fibre",
						Status:      models.AreaActive,
					},
					{
						AreaName:    "Sandton CBD",
						City:        "Johannesburg",
						Province:    "Gauteng",
						ServiceType: "fixed_lte",
						Status:      models.AreaActive,
						Polygon:     `{"type":"Polygon","coordinates":[[[27.9,-26.3],[28.2,-26.3],[28.2,-26.0],[27.9,-26.0],[27.9,-26.3]]]}`,
					},
					{
						AreaName:    "Umhlanga Ridge",
						City:        "Durban",
						Province:    "KwaZulu-Natal",
						ServiceType: "fibre",
						Status:      models.AreaActive,
						Polygon:     `{"type":"Polygon","coordinates":[[[31.05,-29.75],[31.12,-29.75],[31.12,-29.68],[31.05,-29.68],[31.05,-29.75]]]}`,
					},
				}
				for _, area := range areas {
					if err := tx.Where("area_name = ? AND service_type = ?",
						area.AreaName, area.ServiceType).
						FirstOrCreate(&area).Error; err != nil {
						return fmt.Errorf("failed to seed coverage area %s: %w", area.AreaName, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
