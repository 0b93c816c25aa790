// Package baggage - Baggage resolution
// Computes checked and hand baggage per leg under a fixed precedence:
// per-fare-index delimited strings beat the bound's plain per-leg list,
// which beats the legacy engine/date policy defaults. The extractor has
// already seeded each leg with its dictionary defaults.
package baggage

import (
	"strconv"
	"strings"

	"flightfare/core/types"
)

// Resolve applies the precedence tiers to every leg of a bound, in place.
// fareIdx addresses the bound's per-fare-index maps; engineID selects the
// legacy policy row for legs no higher tier covers.
func Resolve(bound *types.RawBound, legs []types.CanonicalLeg, fareIdx, engineID int) {
	if bound == nil {
		return
	}

	key := strconv.Itoa(fareIdx)
	var checkedByFare, handByFare []string
	if _, ok := bound.BookingKeys[key]; ok {
		checkedByFare = bound.CheckedByFare[key]
		handByFare = bound.HandByFare[key]
	}

	for i := range legs {
		leg := &legs[i]

		if i < len(checkedByFare) {
			if a, ok := splitAllowance(checkedByFare[i]); ok {
				leg.BaggageUnit, leg.BaggageWeight = a.Unit, a.Weight
			}
			if i < len(handByFare) {
				if a, ok := splitAllowance(handByFare[i]); ok {
					leg.HandBaggageUnit, leg.HandBaggageWeight = a.Unit, a.Weight
				}
			}
			continue
		}

		if i < len(bound.CheckedBaggage) {
			if a, ok := splitPlain(bound.CheckedBaggage[i]); ok {
				leg.BaggageUnit, leg.BaggageWeight = a.Unit, a.Weight
			}
			continue
		}

		departure, known := parseDeparture(leg.DepartureDate)
		if a, ok := legacyHandBaggage(engineID, departure, known); ok {
			leg.HandBaggageUnit, leg.HandBaggageWeight = a.Unit, a.Weight
		}
	}
}

// HandIncluded derives the hand-baggage-included flag for the selected fare
// option. A positive numeric baggage weight on the first passenger row means
// the allowance is paid, overriding the option's own claim.
func HandIncluded(opt *types.RawFareOption) bool {
	if opt == nil {
		return false
	}
	included := opt.HandBaggageIncluded.Bool()
	if len(opt.Rows) > 0 && opt.Rows[0].BaggageWeight.IsPositive() {
		return false
	}
	return included
}

// splitAllowance parses the per-fare-index "unit|weight" form.
func splitAllowance(s string) (Allowance, bool) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return Allowance{}, false
	}
	unit := strings.TrimSpace(parts[0])
	weight := strings.TrimSpace(parts[1])
	if unit == "" && weight == "" {
		return Allowance{}, false
	}
	return Allowance{Unit: unit, Weight: weight}, true
}

// splitPlain parses the bound-list "weight unit" form (e.g. "15 KG").
func splitPlain(s string) (Allowance, bool) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return Allowance{}, false
	case 1:
		return Allowance{Weight: fields[0]}, true
	default:
		return Allowance{Weight: fields[0], Unit: fields[1]}, true
	}
}
