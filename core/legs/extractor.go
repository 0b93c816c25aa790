// Package legs - Leg extraction
// Expands a bound's leg-key list into ordered, display-ready legs, enriched
// with airline/airport/country names from the lookup tables.
package legs

import (
	"flightfare/core/lookup"
	"flightfare/core/types"
)

// Extract resolves a bound into its ordered canonical legs.
//
// The bound's own FL list drives the expansion; when it is absent or empty
// the segment's outbound leg-key list is used instead (round-trip inbound
// bounds reuse outbound leg definitions). A key missing from the dictionary
// yields a zero-valued leg slot so positions stay aligned with the bound's
// per-leg lists.
func Extract(bound *types.RawBound, seg *types.RawSegment, tables *lookup.Tables) []types.CanonicalLeg {
	if bound == nil {
		return nil
	}

	keys := bound.LegKeys
	if len(keys) == 0 && seg != nil {
		keys = seg.OutboundLegKeys
	}

	out := make([]types.CanonicalLeg, 0, len(keys))
	for i, key := range keys {
		raw := tables.Leg(key)
		leg := buildLeg(raw, tables)

		// Fare class tracks the selected fare, not the leg's static data.
		if i < len(bound.FareClasses) {
			leg.FareClass = bound.FareClasses[i]
		}

		if i > 0 {
			leg.LayoverMinutes = layoverFor(bound, raw, i)
		}

		out = append(out, leg)
	}
	return out
}

// buildLeg maps one dictionary entry to a canonical leg. A nil entry leaves
// the slot undefined.
func buildLeg(raw *types.RawLeg, tables *lookup.Tables) types.CanonicalLeg {
	if raw == nil {
		return types.CanonicalLeg{}
	}

	leg := types.CanonicalLeg{
		AirlineCode:   raw.AirlineCode,
		AirlineName:   raw.AirlineName,
		FlightNumber:  raw.FlightNumber,
		Origin:        raw.Origin,
		Destination:   raw.Destination,
		DepartureDate: raw.DepartureDate,
		DepartureTime: raw.DepartureTime,
		ArrivalDate:   raw.ArrivalDate,
		ArrivalTime:   raw.ArrivalTime,
		Cabin:         CabinLabel(raw.Cabin),
		FareClass:     raw.FareClass,
		Equipment:     raw.Equipment,
		Seats:         raw.Seats,

		BaggageUnit:       raw.BaggageUnit,
		BaggageWeight:     raw.BaggageWeight,
		HandBaggageUnit:   raw.HandBaggageUnit,
		HandBaggageWeight: raw.HandBaggageWeight,
	}

	if leg.AirlineName == "" {
		leg.AirlineName = tables.Airline(raw.AirlineCode)
	}
	leg.OriginName = tables.Airport(raw.Origin)
	leg.DestinationName = tables.Airport(raw.Destination)
	leg.CountryName = tables.Country(raw.CountryCode)

	if minutes, ok := DurationMinutes(raw.Duration); ok {
		leg.DurationMinutes = minutes
	}

	return leg
}

// layoverFor picks the layover for leg i > 0: the bound's connection list
// indexed at i-1 wins over the leg's inherent value.
func layoverFor(bound *types.RawBound, raw *types.RawLeg, i int) int {
	if i-1 < len(bound.Layovers) {
		if minutes, ok := DurationMinutes(bound.Layovers[i-1]); ok {
			return minutes
		}
	}
	if raw != nil {
		if minutes, ok := DurationMinutes(raw.Layover); ok {
			return minutes
		}
	}
	return 0
}
