// SPDX-License-Identifier: GPL-3.0-only

package coverage

import "strings"

// sourceAnswer is one source's verdict for a single service type.
type sourceAnswer struct {
	available bool
	signal    SignalStrength
}

// parseLayerResults collapses raw per-layer responses into one answer per
// service type. Several layers can map to the same type (e.g. wholesale and
// retail fibre footprints); any available layer makes the type available and
// the strongest signal wins.
func parseLayerResults(results []LayerResult) map[ServiceType]sourceAnswer {
	answers := make(map[ServiceType]sourceAnswer)
	for _, r := range results {
		if r.ServiceType == "" {
			continue
		}
		answer := sourceAnswer{signal: SignalNone}
		if r.OK {
			answer = interpretFeatures(r.Features)
		}
		existing, seen := answers[r.ServiceType]
		if !seen {
			answers[r.ServiceType] = answer
			continue
		}
		merged := existing
		if answer.available {
			merged.available = true
			if answer.signal.Better(merged.signal) {
				merged.signal = answer.signal
			}
		}
		answers[r.ServiceType] = merged
	}
	return answers
}

// interpretFeatures decides availability and signal for one layer's feature
// list. Provider geoservices return a feature at the query point when the
// footprint covers it, so presence of any feature with properties means
// coverage; explicit indicator fields refine the answer.
func interpretFeatures(features []Feature) sourceAnswer {
	answer := sourceAnswer{signal: SignalNone}
	for _, f := range features {
		if len(f.Properties) == 0 {
			continue
		}
		available, explicit := availabilityFromProperties(f.Properties)
		if explicit && !available {
			continue
		}
		answer.available = true
		signal := signalFromProperties(f.Properties)
		if signal.Better(answer.signal) {
			answer.signal = signal
		}
	}
	if answer.available && answer.signal == SignalNone {
		answer.signal = SignalFair
	}
	return answer
}

var coverageIndicators = []string{"coverage", "available", "signal", "strength", "level", "quality"}

// availabilityFromProperties inspects the indicator fields providers use.
// The second return reports whether an explicit indicator was present.
func availabilityFromProperties(props map[string]any) (bool, bool) {
	for _, key := range coverageIndicators {
		value, ok := props[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case bool:
			return v, true
		case float64:
			return v > 0, true
		case string:
			lower := strings.ToLower(v)
			for _, negative := range []string{"none", "no", "false", "unavailable", "null"} {
				if lower == negative {
					return false, true
				}
			}
			return true, true
		}
	}
	return len(props) > 0, false
}

// Numeric signal thresholds used by the provider's map service.
const (
	signalExcellentMin = 90
	signalGoodMin      = 70
	signalFairMin      = 50
	signalPoorMin      = 30
)

func signalFromProperties(props map[string]any) SignalStrength {
	for _, key := range []string{"signal", "strength", "quality", "level", "power"} {
		value, ok := props[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return numericToSignal(v)
		case string:
			if s, ok := stringToSignal(v); ok {
				return s
			}
		}
	}
	return SignalNone
}

func numericToSignal(value float64) SignalStrength {
	switch {
	case value >= signalExcellentMin:
		return SignalExcellent
	case value >= signalGoodMin:
		return SignalGood
	case value >= signalFairMin:
		return SignalFair
	case value >= signalPoorMin:
		return SignalPoor
	default:
		return SignalNone
	}
}

func stringToSignal(value string) (SignalStrength, bool) {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "excellent"), strings.Contains(lower, "very strong"):
		return SignalExcellent, true
	case strings.Contains(lower, "good"), strings.Contains(lower, "strong"):
		return SignalGood, true
	case strings.Contains(lower, "fair"), strings.Contains(lower, "medium"):
		return SignalFair, true
	case strings.Contains(lower, "poor"), strings.Contains(lower, "weak"):
		return SignalPoor, true
	case strings.Contains(lower, "none"), strings.Contains(lower, "no signal"):
		return SignalNone, true
	}
	return SignalNone, false
}

// baseSpeeds holds indicative full-signal rates per service type in Mbps.
var baseSpeeds = map[ServiceType]SpeedEstimate{
	ServiceFibre:            {DownMbps: 200, UpMbps: 100},
	ServiceFixedLTE:         {DownMbps: 50, UpMbps: 20},
	ServiceUncappedWireless: {DownMbps: 100, UpMbps: 50},
	ServiceLicensedWireless: {DownMbps: 200, UpMbps: 200},
	Service5G:               {DownMbps: 150, UpMbps: 50},
	ServiceLTE:              {DownMbps: 30, UpMbps: 15},
	Service3G900:            {DownMbps: 5, UpMbps: 1},
	Service3G2100:           {DownMbps: 8, UpMbps: 2},
	Service3G:               {DownMbps: 5, UpMbps: 1},
	ServiceSatellite:        {DownMbps: 20, UpMbps: 5},
	ServiceMicrowave:        {DownMbps: 100, UpMbps: 100},
	ServiceDSL:              {DownMbps: 10, UpMbps: 1},
	ServiceCable:            {DownMbps: 50, UpMbps: 10},
}

var signalSpeedFactor = map[SignalStrength]float64{
	SignalExcellent: 1.0,
	SignalGood:      0.75,
	SignalFair:      0.5,
	SignalPoor:      0.25,
}

// estimateSpeed derates the base rate by signal quality. Nil when the type
// has no meaningful data rate or no signal.
func estimateSpeed(serviceType ServiceType, signal SignalStrength) *SpeedEstimate {
	base, ok := baseSpeeds[serviceType]
	if !ok {
		return nil
	}
	factor, ok := signalSpeedFactor[signal]
	if !ok {
		return nil
	}
	down := int(float64(base.DownMbps) * factor)
	up := int(float64(base.UpMbps) * factor)
	if down == 0 && up == 0 {
		return nil
	}
	return &SpeedEstimate{DownMbps: down, UpMbps: up}
}
