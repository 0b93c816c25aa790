package legs

import (
	"testing"

	"flightfare/core/lookup"
	"flightfare/core/types"
)

func testTables() *lookup.Tables {
	return &lookup.Tables{
		Legs: map[string]*types.RawLeg{
			"L1": {
				AirlineCode: "6E", FlightNumber: "6E-203",
				Origin: "DEL", Destination: "BOM",
				DepartureDate: "15-Jun-2026", DepartureTime: "06:00",
				ArrivalDate: "15-Jun-2026", ArrivalTime: "08:15",
				Cabin: "E", FareClass: "R", Duration: "135",
				CountryCode: "IN",
			},
			"L2": {
				AirlineCode: "6E", FlightNumber: "6E-512",
				Origin: "BOM", Destination: "GOI",
				Cabin: "E", Duration: "1h 10m", Layover: "45",
			},
		},
		Airlines:  map[string]string{"6E": "IndiGo"},
		Airports:  map[string]string{"DEL": "Indira Gandhi Intl", "BOM": ""},
		Countries: map[string]string{"IN": "India"},
	}
}

// TestExtractResolvesLegsInOrder verifies ordering, name enrichment, and the
// airport code-echo fallback.
func TestExtractResolvesLegsInOrder(t *testing.T) {
	bound := &types.RawBound{LegKeys: []string{"L1", "L2"}}
	seg := &types.RawSegment{}

	out := Extract(bound, seg, testTables())
	if len(out) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(out))
	}

	if out[0].AirlineName != "IndiGo" {
		t.Errorf("expected airline name from table, got %q", out[0].AirlineName)
	}
	if out[0].OriginName != "Indira Gandhi Intl" {
		t.Errorf("expected airport name, got %q", out[0].OriginName)
	}
	// Blank table entry echoes the raw code.
	if out[0].DestinationName != "BOM" {
		t.Errorf("expected code echo for blank entry, got %q", out[0].DestinationName)
	}
	if out[0].CountryName != "India" {
		t.Errorf("expected country name, got %q", out[0].CountryName)
	}
	if out[0].Cabin != "Economy" {
		t.Errorf("expected cabin label Economy, got %q", out[0].Cabin)
	}
	if out[0].DurationMinutes != 135 {
		t.Errorf("expected 135 minutes, got %d", out[0].DurationMinutes)
	}
	if out[1].DurationMinutes != 70 {
		t.Errorf("expected 70 minutes, got %d", out[1].DurationMinutes)
	}
}

// TestExtractOutboundFallback covers inbound bounds that reuse the outbound
// leg-key list when their own FL list is empty.
func TestExtractOutboundFallback(t *testing.T) {
	bound := &types.RawBound{}
	seg := &types.RawSegment{OutboundLegKeys: []string{"L1"}}

	out := Extract(bound, seg, testTables())
	if len(out) != 1 {
		t.Fatalf("expected 1 leg from outbound fallback, got %d", len(out))
	}
	if out[0].FlightNumber != "6E-203" {
		t.Errorf("expected flight 6E-203, got %q", out[0].FlightNumber)
	}
}

// TestExtractMissingKeyLeavesSlot verifies a missing dictionary key yields
// an undefined (zero) leg without failing, keeping positions aligned.
func TestExtractMissingKeyLeavesSlot(t *testing.T) {
	bound := &types.RawBound{LegKeys: []string{"MISSING", "L2"}}

	out := Extract(bound, &types.RawSegment{}, testTables())
	if len(out) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(out))
	}
	if out[0].FlightNumber != "" || out[0].Origin != "" {
		t.Errorf("expected undefined first slot, got %+v", out[0])
	}
	if out[1].FlightNumber != "6E-512" {
		t.Errorf("expected second slot resolved, got %q", out[1].FlightNumber)
	}
}

// TestExtractFareClassFromBound ties each leg's fare class to the selected
// fare, not the leg's static data.
func TestExtractFareClassFromBound(t *testing.T) {
	bound := &types.RawBound{
		LegKeys:     []string{"L1", "L2"},
		FareClasses: []string{"Q", "V"},
	}

	out := Extract(bound, &types.RawSegment{}, testTables())
	if out[0].FareClass != "Q" || out[1].FareClass != "V" {
		t.Errorf("expected fare classes Q,V from bound, got %q,%q", out[0].FareClass, out[1].FareClass)
	}
}

// TestExtractLayoverOverride checks the connection-layover list at i-1 wins
// over the leg's inherent layover.
func TestExtractLayoverOverride(t *testing.T) {
	tests := []struct {
		name     string
		layovers []string
		want     int
	}{
		{name: "connection list overrides", layovers: []string{"90"}, want: 90},
		{name: "inherent value when list absent", layovers: nil, want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound := &types.RawBound{
				LegKeys:  []string{"L1", "L2"},
				Layovers: tt.layovers,
			}
			out := Extract(bound, &types.RawSegment{}, testTables())
			if out[1].LayoverMinutes != tt.want {
				t.Errorf("expected layover %d, got %d", tt.want, out[1].LayoverMinutes)
			}
			if out[0].LayoverMinutes != 0 {
				t.Errorf("first leg must have no layover, got %d", out[0].LayoverMinutes)
			}
		})
	}
}

// TestDurationMinutes covers the provider's duration shapes.
func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"155", 155, true},
		{"2h 35m", 155, true},
		{"02:35", 155, true},
		{"1h", 60, true},
		{"40m", 40, true},
		{"", 0, false},
		{"soon", 0, false},
	}

	for _, tt := range tests {
		got, ok := DurationMinutes(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DurationMinutes(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// TestStops parses the bound stop-count text.
func TestStops(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"2", 2},
		{"Non", 0},
		{"Non-stop", 0},
		{"1+", 1},
		{"|Non|", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := Stops(tt.in); got != tt.want {
			t.Errorf("Stops(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
