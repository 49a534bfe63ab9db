// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "coverage-server/coverage"

type CoordinatesPayload struct {
	Lat float64 `json:"lat" example:"-33.9249"`
	Lng float64 `json:"lng" example:"18.4241"`
}

type CheckCoverageRequest struct {
	Coordinates           *CoordinatesPayload `json:"coordinates,omitempty"`
	Address               string              `json:"address,omitempty" example:"1 Long Street, Cape Town"`
	ServiceTypes          []string            `json:"serviceTypes,omitempty" example:"fibre,fixed_lte"`
	IncludeSignalStrength bool                `json:"includeSignalStrength,omitempty"`
	HybridSources         bool                `json:"hybridSources,omitempty"`
}

// ErrorResponse is the fixed failure envelope. Code is a stable string
// clients branch on; Warnings and Suggestions appear only when the
// validator produced them.
type ErrorResponse struct {
	Success     bool     `json:"success" example:"false"`
	Error       string   `json:"error" example:"coordinates are outside the serviceable region"`
	Code        string   `json:"code" example:"LOCATION_OUT_OF_BOUNDS"`
	Warnings    []string `json:"warnings,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type CheckCoverageResponse struct {
	Success bool                    `json:"success" example:"true"`
	Data    coverage.CoverageResult `json:"data"`
}

type PackagesResponse struct {
	Success bool                     `json:"success" example:"true"`
	Data    coverage.PackagesOutcome `json:"data"`
}

type ProviderInfo struct {
	Code        string `json:"code" example:"mtn"`
	DisplayName string `json:"displayName" example:"MTN"`
	Enabled     bool   `json:"enabled" example:"true"`
	Priority    int    `json:"priority" example:"10"`
}

type ProvidersResponse struct {
	Success   bool           `json:"success" example:"true"`
	Providers []ProviderInfo `json:"providers"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"1.0.0"`
}
