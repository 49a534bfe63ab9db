// SPDX-License-Identifier: GPL-3.0-only

package coverage

import "time"

// ServiceType is a technical connectivity technology identifier. The set is
// closed: anything else is rejected at the API boundary.
type ServiceType string

const (
	ServiceFibre            ServiceType = "fibre"
	ServiceFixedLTE         ServiceType = "fixed_lte"
	ServiceUncappedWireless ServiceType = "uncapped_wireless"
	ServiceLicensedWireless ServiceType = "licensed_wireless"
	Service5G               ServiceType = "5g"
	ServiceLTE              ServiceType = "lte"
	Service3G900            ServiceType = "3g_900"
	Service3G2100           ServiceType = "3g_2100"
	Service3G               ServiceType = "3g"
	Service2G               ServiceType = "2g"
	ServiceSatellite        ServiceType = "satellite"
	ServiceMicrowave        ServiceType = "microwave"
	ServiceDSL              ServiceType = "dsl"
	ServiceCable            ServiceType = "cable"
)

// AllServiceTypes lists every member of the enumeration in display order.
var AllServiceTypes = []ServiceType{
	ServiceFibre,
	ServiceFixedLTE,
	ServiceUncappedWireless,
	ServiceLicensedWireless,
	Service5G,
	ServiceLTE,
	Service3G900,
	Service3G2100,
	Service3G,
	Service2G,
	ServiceSatellite,
	ServiceMicrowave,
	ServiceDSL,
	ServiceCable,
}

func (s ServiceType) Valid() bool {
	for _, known := range AllServiceTypes {
		if s == known {
			return true
		}
	}
	return false
}

// SignalStrength buckets provider signal quality.
type SignalStrength string

const (
	SignalExcellent SignalStrength = "excellent"
	SignalGood      SignalStrength = "good"
	SignalFair      SignalStrength = "fair"
	SignalPoor      SignalStrength = "poor"
	SignalNone      SignalStrength = "none"
)

var signalRank = map[SignalStrength]int{
	SignalExcellent: 4,
	SignalGood:      3,
	SignalFair:      2,
	SignalPoor:      1,
	SignalNone:      0,
}

// Better reports whether s ranks above other.
func (s SignalStrength) Better(other SignalStrength) bool {
	return signalRank[s] > signalRank[other]
}

// SourceTier identifies which resolution tier produced an answer.
type SourceTier string

const (
	TierLive    SourceTier = "live"
	TierSpatial SourceTier = "spatial"
	TierText    SourceTier = "text"
	// TierNone marks a result where every tier came back empty. "No
	// coverage" is data, not a failure.
	TierNone SourceTier = "none"
)

// Confidence grades how much a result should be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SpeedEstimate is an indicative downstream/upstream rate for a service.
type SpeedEstimate struct {
	DownMbps int `json:"down"`
	UpMbps   int `json:"up"`
}

// ServiceAvailability is one per-service answer. Immutable once returned.
type ServiceAvailability struct {
	ServiceType        ServiceType    `json:"serviceType"`
	Available          bool           `json:"available"`
	SignalStrength     SignalStrength `json:"signalStrength,omitempty"`
	SpeedMbps          *SpeedEstimate `json:"speedMbps,omitempty"`
	SourceTier         SourceTier     `json:"sourceTier"`
	ProviderConfidence Confidence     `json:"providerConfidence"`
}

// LocationInfo is advisory geographic metadata attached to a result. A
// lookup miss degrades fields to "unknown" rather than failing the request.
type LocationInfo struct {
	Province              string     `json:"province"`
	NearestCity           string     `json:"nearestCity"`
	DistanceKm            float64    `json:"distanceKm"`
	PopulationDensityArea string     `json:"populationDensityArea"`
	CoverageLikelihood    string     `json:"coverageLikelihood"`
	Confidence            Confidence `json:"confidence"`
	Warnings              []string   `json:"warnings"`
}

// ResultMetadata records which tier answered and how trustworthy it is.
type ResultMetadata struct {
	Source     SourceTier `json:"source"`
	Confidence Confidence `json:"confidence"`
}

// CoverageResult is the unified outcome of one resolution attempt. It is
// constructed once and never mutated; staleness is handled by cache TTL.
type CoverageResult struct {
	RequestID         string                `json:"requestId"`
	Coordinates       Coordinates           `json:"coordinates"`
	CoverageAvailable bool                  `json:"coverageAvailable"`
	Services          []ServiceAvailability `json:"services"`
	Location          *LocationInfo         `json:"location,omitempty"`
	Metadata          ResultMetadata        `json:"metadata"`
	Provider          string                `json:"provider,omitempty"`
	ResolvedAt        time.Time             `json:"resolvedAt"`
}

// Source labels one half of a dual-source provider response.
type Source string

const (
	SourceBusiness Source = "business"
	SourceConsumer Source = "consumer"
)

// Feature is one map feature returned by a provider geoservice query.
type Feature struct {
	Properties map[string]any `json:"properties"`
}

// LayerResult is the raw outcome of querying a single provider layer.
type LayerResult struct {
	Layer       string      `json:"layer"`
	ServiceType ServiceType `json:"serviceType"`
	Source      Source      `json:"source"`
	OK          bool        `json:"ok"`
	Err         string      `json:"err,omitempty"`
	Features    []Feature   `json:"features,omitempty"`
}

// DualSourcePayload carries the two parallel raw responses from one
// provider: a business-grade and a consumer-grade view of the same physical
// footprint. The two may disagree.
type DualSourcePayload struct {
	Business []LayerResult
	Consumer []LayerResult
}
