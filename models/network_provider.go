// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// NetworkProvider is one upstream network whose geoservice we query live.
// Priority orders the fallback sequence, lowest first.
type NetworkProvider struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:32;not null;uniqueIndex"`
	DisplayName string `gorm:"size:255;not null"`
	Enabled     bool   `gorm:"not null;default:true"`
	Priority    int    `gorm:"not null;default:100"`
	BusinessURL string `gorm:"size:512"`
	ConsumerURL string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &NetworkProvider{})
}
