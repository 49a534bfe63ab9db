// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// CoverageLog is the audit row written after every completed check.
type CoverageLog struct {
	ID                uint    `gorm:"primaryKey"`
	RequestID         string  `gorm:"size:64;not null;index"`
	Lat               float64 `gorm:"not null"`
	Lng               float64 `gorm:"not null"`
	Address           *string `gorm:"size:512;default:null"`
	CoverageAvailable bool    `gorm:"not null"`
	ServiceCount      int     `gorm:"not null;default:0"`
	SourceTier        string  `gorm:"size:16;not null"`
	Confidence        string  `gorm:"size:16;not null"`
	Provider          *string `gorm:"size:32;default:null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &CoverageLog{})
}
