// Package baggage - Legacy hand-baggage policy table
// A closed historical ruleset keyed by engine id and a departure-date
// cutoff. The rows are preserved exactly as shipped, expired ones included;
// they are policy history, not logic to re-derive.
package baggage

import (
	"strings"
	"time"
)

// Allowance is a resolved (unit, weight) baggage pair.
type Allowance struct {
	Unit   string
	Weight string
}

// legacyRule forces a hand-baggage default for one engine id. A zero cutoff
// applies unconditionally; otherwise only departures on or before the cutoff
// match.
type legacyRule struct {
	engine  int
	cutoff  time.Time
	hand    Allowance
	expired bool
}

// handBaggageCutoff is the fixed historical boundary for engine id 0.
var handBaggageCutoff = time.Date(2020, time.September, 30, 0, 0, 0, 0, time.UTC)

// legacyRules is the full ruleset. The engine-0 row only matches departures
// that are years in the past, so it is dead policy in practice; it stays
// enumerated rather than silently dropped.
var legacyRules = []legacyRule{
	{engine: 1, hand: Allowance{Unit: "KG", Weight: "7"}},
	{engine: 0, cutoff: handBaggageCutoff, hand: Allowance{Unit: "KG", Weight: "7"}, expired: true},
	{engine: 31, hand: Allowance{Unit: "KG", Weight: "5"}},
}

// legacyHandBaggage returns the forced hand-baggage default for the engine
// id and departure date, if any rule matches. Engine ids outside the table
// leave the leg's native fields untouched.
func legacyHandBaggage(engineID int, departure time.Time, departureKnown bool) (Allowance, bool) {
	for _, rule := range legacyRules {
		if rule.engine != engineID {
			continue
		}
		if rule.cutoff.IsZero() {
			return rule.hand, true
		}
		if departureKnown && !departure.After(rule.cutoff) {
			return rule.hand, true
		}
	}
	return Allowance{}, false
}

// departureLayouts are the DD-MMM-YYYY-family shapes seen in provider DDT
// fields, weekday-prefixed variants included.
var departureLayouts = []string{
	"02-Jan-2006",
	"Mon-02Jan2006",
	"02Jan2006",
	"2006-01-02",
	"02/01/2006",
}

// parseDeparture extracts the date from a raw departure timestamp. The time
// portion, when present, is cut at the first space or 'T'.
func parseDeparture(raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}
	if i := strings.IndexAny(text, " T"); i > 0 {
		text = text[:i]
	}
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
