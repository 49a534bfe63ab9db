// SPDX-License-Identifier: GPL-3.0-only

package coverage

// Precedence decides which source wins when the business and consumer
// datasets disagree about a service type.
type Precedence string

const (
	// PrecedenceBusiness: the business-grade dataset is authoritative.
	// Used for services sold exclusively through the business map (the
	// consumer map sometimes carries a stale copy of these footprints).
	PrecedenceBusiness Precedence = "business_wins"
	// PrecedencePermissive: whichever source reports coverage wins. Used
	// for mass-market services where either dataset seeing the footprint
	// is good enough to quote.
	PrecedencePermissive Precedence = "permissive_wins"
)

// SourcePrecedence is the reconciliation rule table. It is a business
// decision with observable effects, kept explicit here rather than implied
// by code order. Types absent from the table default to permissive.
var SourcePrecedence = map[ServiceType]Precedence{
	ServiceUncappedWireless: PrecedenceBusiness,
	ServiceFixedLTE:         PrecedenceBusiness,
	ServiceLicensedWireless: PrecedenceBusiness,
	ServiceMicrowave:        PrecedenceBusiness,

	ServiceFibre:     PrecedencePermissive,
	Service5G:        PrecedencePermissive,
	ServiceLTE:       PrecedencePermissive,
	Service3G900:     PrecedencePermissive,
	Service3G2100:    PrecedencePermissive,
	Service3G:        PrecedencePermissive,
	Service2G:        PrecedencePermissive,
	ServiceSatellite: PrecedencePermissive,
	ServiceDSL:       PrecedencePermissive,
	ServiceCable:     PrecedencePermissive,
}

// PrecedenceFor returns the reconciliation rule for a service type.
func PrecedenceFor(serviceType ServiceType) Precedence {
	if p, ok := SourcePrecedence[serviceType]; ok {
		return p
	}
	return PrecedencePermissive
}

// ParseDualSource normalizes the two parallel raw payloads into one
// availability record per service type, reconciling disagreements via the
// SourcePrecedence table. Unless includeSignal is set, only available
// services are returned and signal detail is stripped: the default answer
// is binary "can I get this or not".
func ParseDualSource(payload DualSourcePayload, includeSignal bool) []ServiceAvailability {
	business := parseLayerResults(payload.Business)
	consumer := parseLayerResults(payload.Consumer)

	var services []ServiceAvailability
	for _, serviceType := range AllServiceTypes {
		b, hasBusiness := business[serviceType]
		c, hasConsumer := consumer[serviceType]
		if !hasBusiness && !hasConsumer {
			continue
		}

		var answer sourceAnswer
		switch {
		case hasBusiness && !hasConsumer:
			answer = b
		case hasConsumer && !hasBusiness:
			answer = c
		case b.available == c.available:
			// Both sources agree: keep the answer, best signal.
			answer = b
			if c.signal.Better(answer.signal) {
				answer.signal = c.signal
			}
		default:
			switch PrecedenceFor(serviceType) {
			case PrecedenceBusiness:
				answer = b
			default:
				if b.available {
					answer = b
				} else {
					answer = c
				}
			}
		}

		if !answer.available && !includeSignal {
			continue
		}

		record := ServiceAvailability{
			ServiceType:        serviceType,
			Available:          answer.available,
			SourceTier:         TierLive,
			ProviderConfidence: ConfidenceHigh,
		}
		if includeSignal {
			record.SignalStrength = answer.signal
			if answer.available {
				record.SpeedMbps = estimateSpeed(serviceType, answer.signal)
			}
		}
		services = append(services, record)
	}
	return services
}
