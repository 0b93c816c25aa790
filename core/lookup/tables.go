// Package lookup - Reference tables for segment normalization
// The surrounding system supplies four key-to-value maps: the segment-wide
// leg dictionary and three display-name tables. This package owns only the
// lookup semantics, not the data.
package lookup

import (
	"strings"

	"flightfare/core/types"
)

// Tables bundles the lookup maps one normalization invocation reads.
// All maps are read-only to the transform; a nil map behaves as empty.
type Tables struct {
	// Legs is the segment-wide leg dictionary, keyed by leg key
	Legs map[string]*types.RawLeg

	// Airlines maps carrier code to display name
	Airlines map[string]string

	// Airports maps airport code to display name
	Airports map[string]string

	// Countries maps country code to display name
	Countries map[string]string
}

// Leg resolves a leg key. Returns nil when the key is absent; callers leave
// the corresponding leg slot undefined rather than failing.
func (t *Tables) Leg(key string) *types.RawLeg {
	if t == nil || t.Legs == nil {
		return nil
	}
	return t.Legs[key]
}

// Airline resolves a carrier code to its display name, echoing the code when
// the table has no usable entry.
func (t *Tables) Airline(code string) string {
	return t.nameOrEcho(t.airlines(), code)
}

// Airport resolves an airport code to its display name. A blank or absent
// table entry echoes the raw code, so a known code never maps to "".
func (t *Tables) Airport(code string) string {
	return t.nameOrEcho(t.airports(), code)
}

// Country resolves a country code to its display name. Countries have no
// echo fallback: an unknown code yields "".
func (t *Tables) Country(code string) string {
	if t == nil || code == "" {
		return ""
	}
	return t.Countries[code]
}

func (t *Tables) airlines() map[string]string {
	if t == nil {
		return nil
	}
	return t.Airlines
}

func (t *Tables) airports() map[string]string {
	if t == nil {
		return nil
	}
	return t.Airports
}

func (t *Tables) nameOrEcho(m map[string]string, code string) string {
	if code == "" {
		return ""
	}
	if name, ok := m[code]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	return code
}
