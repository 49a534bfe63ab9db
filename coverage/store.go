// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"context"

	"gorm.io/gorm"

	"coverage-server/models"
)

// Store backs the engine's data interfaces with the database. One Store
// serves as SpatialStore, AreaStore, MappingStore and Catalog at once.
type Store struct {
	DB *gorm.DB
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{DB: conn}
}

// CoverageFootprints returns active areas that carry a polygon, optionally
// restricted to the given service types.
func (s *Store) CoverageFootprints(ctx context.Context, serviceTypes []ServiceType) ([]SpatialRecord, error) {
	query := s.DB.WithContext(ctx).Model(&models.CoverageArea{}).
		Where("status = ?", models.AreaActive).
		Where("polygon <> ''")
	if len(serviceTypes) > 0 {
		query = query.Where("service_type IN ?", serviceTypeStrings(serviceTypes))
	}

	var rows []models.CoverageArea
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]SpatialRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SpatialRecord{
			ServiceType: ServiceType(row.ServiceType),
			Polygon:     row.Polygon,
		})
	}
	return records, nil
}

// CoverageAreas returns every active area for text matching, polygon or not.
func (s *Store) CoverageAreas(ctx context.Context) ([]AreaRecord, error) {
	var rows []models.CoverageArea
	err := s.DB.WithContext(ctx).
		Where("status = ?", models.AreaActive).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	areas := make([]AreaRecord, 0, len(rows))
	for _, row := range rows {
		areas = append(areas, AreaRecord{
			Name:        row.AreaName,
			City:        row.City,
			ServiceType: ServiceType(row.ServiceType),
			Polygon:     row.Polygon,
		})
	}
	return areas, nil
}

// ActiveMappings returns active mapping rows for the given technical types,
// ordered by priority ascending.
func (s *Store) ActiveMappings(ctx context.Context, technicalTypes []string) ([]TypeMapping, error) {
	var rows []models.ServiceTypeMapping
	err := s.DB.WithContext(ctx).
		Where("active = ?", true).
		Where("technical_type IN ?", technicalTypes).
		Order("priority asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	mappings := make([]TypeMapping, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, TypeMapping{
			TechnicalType:   row.TechnicalType,
			ProductCategory: row.ProductCategory,
			Priority:        row.Priority,
			Active:          row.Active,
		})
	}
	return mappings, nil
}

// ActivePackages returns active packages for the customer type matching on
// product_category, or on the legacy service_type column when byCategory is
// false. Cheapest first.
func (s *Store) ActivePackages(ctx context.Context, values []string, byCategory bool, customerType string) ([]Package, error) {
	column := "service_type"
	if byCategory {
		column = "product_category"
	}
	var rows []models.ServicePackage
	err := s.DB.WithContext(ctx).
		Where("active = ?", true).
		Where("customer_type = ?", customerType).
		Where(column+" IN ?", values).
		Order("price asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	packages := make([]Package, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, Package{
			ID:              row.ID,
			Name:            row.Name,
			ServiceType:     row.ServiceType,
			ProductCategory: row.ProductCategory,
			CustomerType:    row.CustomerType,
			SpeedDown:       row.SpeedDown,
			SpeedUp:         row.SpeedUp,
			Price:           row.Price,
			PromotionPrice:  row.PromotionPrice,
			PromotionMonths: row.PromotionMonths,
			Features:        row.Features,
		})
	}
	return packages, nil
}

func serviceTypeStrings(serviceTypes []ServiceType) []string {
	out := make([]string, 0, len(serviceTypes))
	for _, t := range serviceTypes {
		out = append(out, string(t))
	}
	return out
}
