// SPDX-License-Identifier: GPL-3.0-only

package coverage

import "testing"

func availableLayer(serviceType ServiceType, source Source, signal float64) LayerResult {
	return LayerResult{
		Layer:       "layer-" + string(serviceType),
		ServiceType: serviceType,
		Source:      source,
		OK:          true,
		Features: []Feature{
			{Properties: map[string]any{"coverage": true, "signal": signal}},
		},
	}
}

func emptyLayer(serviceType ServiceType, source Source) LayerResult {
	return LayerResult{
		Layer:       "layer-" + string(serviceType),
		ServiceType: serviceType,
		Source:      source,
		OK:          true,
	}
}

func findService(t *testing.T, services []ServiceAvailability, serviceType ServiceType) ServiceAvailability {
	t.Helper()
	for _, s := range services {
		if s.ServiceType == serviceType {
			return s
		}
	}
	t.Fatalf("Service %s not found in %v", serviceType, services)
	return ServiceAvailability{}
}

func TestParseDualSourceBusinessWins(t *testing.T) {
	// Business-grade types: the business dataset is authoritative even
	// when it says no.
	payload := DualSourcePayload{
		Business: []LayerResult{emptyLayer(ServiceFixedLTE, SourceBusiness)},
		Consumer: []LayerResult{availableLayer(ServiceFixedLTE, SourceConsumer, 80)},
	}
	services := ParseDualSource(payload, false)
	for _, s := range services {
		if s.ServiceType == ServiceFixedLTE {
			t.Error("Expected fixed_lte to be suppressed when the business source says no coverage")
		}
	}

	reversed := DualSourcePayload{
		Business: []LayerResult{availableLayer(ServiceFixedLTE, SourceBusiness, 80)},
		Consumer: []LayerResult{emptyLayer(ServiceFixedLTE, SourceConsumer)},
	}
	services = ParseDualSource(reversed, false)
	svc := findService(t, services, ServiceFixedLTE)
	if !svc.Available {
		t.Error("Expected fixed_lte available when the business source reports it")
	}
}

func TestParseDualSourcePermissiveWins(t *testing.T) {
	// Mass-market types: either source reporting coverage is enough, no
	// matter which side it is.
	fromConsumer := DualSourcePayload{
		Business: []LayerResult{emptyLayer(ServiceFibre, SourceBusiness)},
		Consumer: []LayerResult{availableLayer(ServiceFibre, SourceConsumer, 95)},
	}
	fromBusiness := DualSourcePayload{
		Business: []LayerResult{availableLayer(ServiceFibre, SourceBusiness, 95)},
		Consumer: []LayerResult{emptyLayer(ServiceFibre, SourceConsumer)},
	}
	for _, payload := range []DualSourcePayload{fromConsumer, fromBusiness} {
		svc := findService(t, ParseDualSource(payload, false), ServiceFibre)
		if !svc.Available {
			t.Error("Expected fibre available when either source reports it")
		}
	}
}

func TestParseDualSourceAgreementMergesBestSignal(t *testing.T) {
	payload := DualSourcePayload{
		Business: []LayerResult{availableLayer(ServiceFibre, SourceBusiness, 60)},
		Consumer: []LayerResult{availableLayer(ServiceFibre, SourceConsumer, 95)},
	}
	svc := findService(t, ParseDualSource(payload, true), ServiceFibre)
	if svc.SignalStrength != SignalExcellent {
		t.Errorf("Expected the stronger signal to win, got %s", svc.SignalStrength)
	}
	if svc.SpeedMbps == nil {
		t.Fatal("Expected a speed estimate with signal detail enabled")
	}
}

func TestParseDualSourceSingleSided(t *testing.T) {
	payload := DualSourcePayload{
		Consumer: []LayerResult{availableLayer(Service5G, SourceConsumer, 75)},
	}
	svc := findService(t, ParseDualSource(payload, false), Service5G)
	if !svc.Available {
		t.Error("Expected 5g available from a consumer-only payload")
	}
	if svc.SourceTier != TierLive {
		t.Errorf("Expected live tier, got %s", svc.SourceTier)
	}
	if svc.ProviderConfidence != ConfidenceHigh {
		t.Errorf("Expected high confidence, got %s", svc.ProviderConfidence)
	}
}

func TestParseDualSourceStripsSignalByDefault(t *testing.T) {
	payload := DualSourcePayload{
		Consumer: []LayerResult{availableLayer(ServiceLTE, SourceConsumer, 95)},
	}
	svc := findService(t, ParseDualSource(payload, false), ServiceLTE)
	if svc.SignalStrength != "" {
		t.Errorf("Expected signal stripped by default, got %s", svc.SignalStrength)
	}
	if svc.SpeedMbps != nil {
		t.Error("Expected no speed estimate by default")
	}
}

func TestParseDualSourceMultipleLayersMerge(t *testing.T) {
	// Two consumer layers feed the same type; any available layer makes
	// the type available.
	payload := DualSourcePayload{
		Consumer: []LayerResult{
			emptyLayer(ServiceFibre, SourceConsumer),
			availableLayer(ServiceFibre, SourceConsumer, 85),
		},
	}
	svc := findService(t, ParseDualSource(payload, true), ServiceFibre)
	if !svc.Available {
		t.Error("Expected fibre available when any of its layers reports coverage")
	}
	if svc.SignalStrength != SignalGood {
		t.Errorf("Expected good signal, got %s", svc.SignalStrength)
	}
}

func TestParseDualSourceFailedLayerIsNotCoverage(t *testing.T) {
	payload := DualSourcePayload{
		Consumer: []LayerResult{{
			Layer:       "broken",
			ServiceType: ServiceFibre,
			Source:      SourceConsumer,
			OK:          false,
			Err:         "upstream returned 503",
		}},
	}
	if services := ParseDualSource(payload, false); len(services) != 0 {
		t.Errorf("Expected no services from a failed layer, got %v", services)
	}
}

func TestPrecedenceForDefaultsToPermissive(t *testing.T) {
	if PrecedenceFor(ServiceType("unlisted")) != PrecedencePermissive {
		t.Error("Expected unlisted types to default to permissive")
	}
	if PrecedenceFor(ServiceLicensedWireless) != PrecedenceBusiness {
		t.Error("Expected licensed_wireless to be business-authoritative")
	}
}

func TestSignalThresholds(t *testing.T) {
	cases := []struct {
		value float64
		want  SignalStrength
	}{
		{95, SignalExcellent},
		{90, SignalExcellent},
		{89.9, SignalGood},
		{70, SignalGood},
		{50, SignalFair},
		{30, SignalPoor},
		{29.9, SignalNone},
	}
	for _, tc := range cases {
		if got := numericToSignal(tc.value); got != tc.want {
			t.Errorf("numericToSignal(%v) = %s, want %s", tc.value, got, tc.want)
		}
	}
}
