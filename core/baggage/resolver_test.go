package baggage

import (
	"testing"

	"github.com/shopspring/decimal"

	"flightfare/core/types"
)

// TestPrecedencePerFareIndexWins proves that with all three policy tiers
// populated, the per-fare-index value is the one that lands on the leg.
func TestPrecedencePerFareIndexWins(t *testing.T) {
	bound := &types.RawBound{
		BookingKeys:    map[string]string{"0": "BK-77"},
		CheckedByFare:  map[string][]string{"0": {"KG|25"}},
		HandByFare:     map[string][]string{"0": {"KG|7"}},
		CheckedBaggage: []string{"15 KG"},
	}
	legs := []types.CanonicalLeg{{
		DepartureDate:     "15-Jun-2020",
		BaggageUnit:       "KG",
		BaggageWeight:     "20",
		HandBaggageUnit:   "KG",
		HandBaggageWeight: "10",
	}}

	Resolve(bound, legs, 0, 1)

	if legs[0].BaggageWeight != "25" || legs[0].BaggageUnit != "KG" {
		t.Errorf("checked baggage: got %s %s, want 25 KG", legs[0].BaggageWeight, legs[0].BaggageUnit)
	}
	if legs[0].HandBaggageWeight != "7" {
		t.Errorf("hand baggage: got %s, want 7", legs[0].HandBaggageWeight)
	}
}

// TestPrecedencePlainListSecond verifies the bound's per-leg list applies
// when no per-fare-index map addresses the selected fare.
func TestPrecedencePlainListSecond(t *testing.T) {
	bound := &types.RawBound{
		CheckedByFare:  map[string][]string{"1": {"KG|25"}},
		CheckedBaggage: []string{"15 KG"},
	}
	legs := []types.CanonicalLeg{{BaggageWeight: "20", BaggageUnit: "KG"}}

	// No booking key for index 0, so tier 1 is skipped.
	Resolve(bound, legs, 0, 0)

	if legs[0].BaggageWeight != "15" || legs[0].BaggageUnit != "KG" {
		t.Errorf("got %s %s, want 15 KG from plain list", legs[0].BaggageWeight, legs[0].BaggageUnit)
	}
}

// TestLegacyPolicyTable enumerates the closed engine/date ruleset.
func TestLegacyPolicyTable(t *testing.T) {
	tests := []struct {
		name       string
		engine     int
		departure  string
		wantWeight string
		wantUnit   string
		forced     bool
	}{
		{
			name:   "engine 1 always forces 7 KG",
			engine: 1, departure: "15-Jun-2026",
			wantWeight: "7", wantUnit: "KG", forced: true,
		},
		{
			name:   "engine 0 before cutoff forces 7 KG",
			engine: 0, departure: "15-Jun-2020",
			wantWeight: "7", wantUnit: "KG", forced: true,
		},
		{
			name:   "engine 0 after cutoff leaves native values",
			engine: 0, departure: "15-Jun-2023",
			forced: false,
		},
		{
			name:   "engine 31 forces 5 KG",
			engine: 31, departure: "15-Jun-2026",
			wantWeight: "5", wantUnit: "KG", forced: true,
		},
		{
			name:   "unknown engine leaves native values",
			engine: 7, departure: "15-Jun-2020",
			forced: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs := []types.CanonicalLeg{{
				DepartureDate:     tt.departure,
				HandBaggageUnit:   "KG",
				HandBaggageWeight: "10",
			}}

			Resolve(&types.RawBound{}, legs, 0, tt.engine)

			if tt.forced {
				if legs[0].HandBaggageWeight != tt.wantWeight || legs[0].HandBaggageUnit != tt.wantUnit {
					t.Errorf("got %s %s, want %s %s",
						legs[0].HandBaggageWeight, legs[0].HandBaggageUnit, tt.wantWeight, tt.wantUnit)
				}
			} else if legs[0].HandBaggageWeight != "10" {
				t.Errorf("native weight overwritten: got %s", legs[0].HandBaggageWeight)
			}
		})
	}
}

// TestParseDeparture covers the DD-MMM-YYYY family, weekday prefixes
// included, and trailing time portions.
func TestParseDeparture(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"15-Jun-2020", true},
		{"Wed-15Jun2020", true},
		{"15Jun2020", true},
		{"2020-06-15", true},
		{"15-Jun-2020 06:00", true},
		{"garbage", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := parseDeparture(tt.in); ok != tt.ok {
			t.Errorf("parseDeparture(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

// TestHandIncludedRowOverride proves a positive first-row baggage weight
// marks hand baggage as not included regardless of the option's claim.
func TestHandIncludedRowOverride(t *testing.T) {
	tests := []struct {
		name string
		opt  *types.RawFareOption
		want bool
	}{
		{
			name: "option claim stands with zero row weight",
			opt: &types.RawFareOption{
				HandBaggageIncluded: true,
				Rows:                []types.PassengerFareRow{{PaxType: "ADULT"}},
			},
			want: true,
		},
		{
			name: "positive first-row weight overrides",
			opt: &types.RawFareOption{
				HandBaggageIncluded: true,
				Rows: []types.PassengerFareRow{
					{PaxType: "ADULT", BaggageWeight: decimal.NewFromInt(7)},
				},
			},
			want: false,
		},
		{name: "nil option", opt: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandIncluded(tt.opt); got != tt.want {
				t.Errorf("HandIncluded = %v, want %v", got, tt.want)
			}
		})
	}
}
