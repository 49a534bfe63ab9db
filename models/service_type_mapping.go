// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceTypeMapping translates a technical service type into the product
// category the catalog sells under. Priority orders categories when one
// technical type maps to several.
type ServiceTypeMapping struct {
	ID              uint   `gorm:"primaryKey"`
	TechnicalType   string `gorm:"size:64;not null;index"`
	ProductCategory string `gorm:"size:64;not null"`
	Priority        int    `gorm:"not null;default:100"`
	Active          bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &ServiceTypeMapping{})
}
