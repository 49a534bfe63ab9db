// SPDX-License-Identifier: GPL-3.0-only

package wms

import "coverage-server/coverage"

// Layer binds one upstream WMS layer name to the service type it answers
// for. The business and consumer geoservers publish different layer sets
// over the same physical network, so each side has its own table.
type Layer struct {
	Name        string
	ServiceType coverage.ServiceType
}

// BusinessLayers is the enterprise geoserver's layer set.
var BusinessLayers = []Layer{
	{Name: "FTTBCoverage", ServiceType: coverage.ServiceFibre},
	{Name: "UncappedWirelessEBU", ServiceType: coverage.ServiceUncappedWireless},
	{Name: "FLTECoverageEBU", ServiceType: coverage.ServiceFixedLTE},
	{Name: "PMPCoverage", ServiceType: coverage.ServiceLicensedWireless},
}

// ConsumerLayers is the consumer geoserver's layer set.
var ConsumerLayers = []Layer{
	{Name: "mtnsi:MTNSA-Coverage-5G-5G", ServiceType: coverage.Service5G},
	{Name: "mtnsi:MTNSA-Coverage-5G-LTE", ServiceType: coverage.ServiceLTE},
	{Name: "mtnsi:SUPERSONIC-CONSOLIDATED", ServiceType: coverage.ServiceFibre},
	{Name: "mtnsi:MTNSA-Coverage-UMTS-900", ServiceType: coverage.Service3G900},
	{Name: "mtnsi:MTNSA-Coverage-UMTS-2100", ServiceType: coverage.Service3G2100},
	{Name: "mtnsi:MTNSA-Coverage-GSM", ServiceType: coverage.Service2G},
}

// filterLayers keeps the layers answering for one of the requested types;
// an empty request keeps everything.
func filterLayers(layers []Layer, requested []coverage.ServiceType) []Layer {
	if len(requested) == 0 {
		return layers
	}
	wanted := make(map[coverage.ServiceType]bool, len(requested))
	for _, t := range requested {
		wanted[t] = true
	}
	var kept []Layer
	for _, layer := range layers {
		if wanted[layer.ServiceType] {
			kept = append(kept, layer)
		}
	}
	return kept
}
