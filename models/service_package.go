// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// ServicePackage is one sellable package. ServiceType carries the legacy
// technical-type value; ProductCategory is the current selection key.
type ServicePackage struct {
	ID              uint     `gorm:"primaryKey"`
	Name            string   `gorm:"size:255;not null"`
	ServiceType     string   `gorm:"size:64;index"`
	ProductCategory string   `gorm:"size:64;index"`
	CustomerType    string   `gorm:"size:16;not null;default:'consumer';index"`
	SpeedDown       int      `gorm:"not null;default:0"`
	SpeedUp         int      `gorm:"not null;default:0"`
	Price           float64  `gorm:"not null;default:0"`
	PromotionPrice  *float64 `gorm:"default:null"`
	PromotionMonths *int     `gorm:"default:null"`
	Features        []string `gorm:"serializer:json"`
	Active          bool     `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &ServicePackage{})
}
