package lookup

import (
	"testing"

	"flightfare/core/types"
)

// TestAirportEchoFallback: a known code never resolves to an empty string.
func TestAirportEchoFallback(t *testing.T) {
	tables := &Tables{Airports: map[string]string{
		"DEL": "Indira Gandhi Intl",
		"BOM": "",
		"GOI": "   ",
	}}

	tests := []struct {
		code string
		want string
	}{
		{"DEL", "Indira Gandhi Intl"},
		{"BOM", "BOM"},
		{"GOI", "GOI"},
		{"XXX", "XXX"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tables.Airport(tt.code); got != tt.want {
			t.Errorf("Airport(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

// TestLegLookupToleratesNil: nil tables and missing keys resolve to nil.
func TestLegLookupToleratesNil(t *testing.T) {
	var tables *Tables
	if tables.Leg("L1") != nil {
		t.Error("nil tables must resolve to nil leg")
	}

	tables = &Tables{Legs: map[string]*types.RawLeg{"L1": {FlightNumber: "AI-101"}}}
	if tables.Leg("L2") != nil {
		t.Error("missing key must resolve to nil leg")
	}
	if leg := tables.Leg("L1"); leg == nil || leg.FlightNumber != "AI-101" {
		t.Errorf("known key must resolve, got %+v", leg)
	}
}

// TestAirlineEcho mirrors the airport fallback for carriers.
func TestAirlineEcho(t *testing.T) {
	tables := &Tables{Airlines: map[string]string{"6E": "IndiGo"}}
	if got := tables.Airline("6E"); got != "IndiGo" {
		t.Errorf("Airline(6E) = %q", got)
	}
	if got := tables.Airline("ZZ"); got != "ZZ" {
		t.Errorf("Airline(ZZ) = %q, want code echo", got)
	}
}
