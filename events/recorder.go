// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	"context"

	"gorm.io/gorm"

	"coverage-server/commons"
	"coverage-server/coverage"
	"coverage-server/models"
)

// Recorder persists an audit row for every completed check and publishes
// the matching event. Both legs are best-effort.
type Recorder struct {
	DB        *gorm.DB
	Publisher *Publisher
}

func NewRecorder(conn *gorm.DB, publisher *Publisher) *Recorder {
	return &Recorder{DB: conn, Publisher: publisher}
}

func (r *Recorder) Record(ctx context.Context, result coverage.CoverageResult, address string) {
	if r.DB != nil {
		row := models.CoverageLog{
			RequestID:         result.RequestID,
			Lat:               result.Coordinates.Lat,
			Lng:               result.Coordinates.Lng,
			CoverageAvailable: result.CoverageAvailable,
			ServiceCount:      len(result.Services),
			SourceTier:        string(result.Metadata.Source),
			Confidence:        string(result.Metadata.Confidence),
		}
		if address != "" {
			row.Address = &address
		}
		if result.Provider != "" {
			provider := result.Provider
			row.Provider = &provider
		}
		if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
			commons.Logger.Warnf("Failed to write coverage log for %s: %v", result.RequestID, err)
		}
	}
	if r.Publisher != nil {
		r.Publisher.Publish(ctx, EventFromResult(result, address))
	}
}
