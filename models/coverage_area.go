// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

type AreaStatus string

const (
	AreaActive   AreaStatus = "active"
	AreaPlanned  AreaStatus = "planned"
	AreaInactive AreaStatus = "inactive"
)

// CoverageArea is a named footprint where a service is sold. Polygon holds
// a GeoJSON Polygon or MultiPolygon; rows without one still serve the text
// matching fallback.
type CoverageArea struct {
	ID          uint       `gorm:"primaryKey"`
	AreaName    string     `gorm:"size:255;not null;index"`
	City        string     `gorm:"size:255;index"`
	Province    string     `gorm:"size:64"`
	ServiceType string     `gorm:"size:64;not null;index"`
	Status      AreaStatus `gorm:"size:16;not null;default:'active'"`
	Polygon     string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &CoverageArea{})
}
