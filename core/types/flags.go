// Package types - Provider flag coercion
// Provider payloads encode booleans as bool, 0/1, or free-text strings.
package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Flag is a tolerant boolean. Absent or unrecognised values decode to false;
// decoding never fails.
type Flag bool

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

// UnmarshalJSON accepts true/false, 0/1, and strings like "1", "true", "yes".
func (f *Flag) UnmarshalJSON(data []byte) error {
	v, known := coerceBool(data)
	*f = Flag(known && v)
	return nil
}

// TriBool is a refundable-style flag that distinguishes "absent" from false.
type TriBool struct {
	Known bool
	Value bool
}

// Or returns the value, or fallback when the flag was absent.
func (t TriBool) Or(fallback bool) bool {
	if t.Known {
		return t.Value
	}
	return fallback
}

// UnmarshalJSON coerces the same shapes as Flag but keeps track of absence.
func (t *TriBool) UnmarshalJSON(data []byte) error {
	t.Value, t.Known = coerceBool(data)
	return nil
}

var (
	truthy = map[string]bool{
		"1": true, "true": true, "t": true, "yes": true, "y": true,
		"refundable": true,
	}
	falsy = map[string]bool{
		"0": true, "false": true, "f": true, "no": true, "n": true,
		"nonrefundable": true, "non-refundable": true, "non refundable": true,
	}
)

// coerceBool interprets a raw JSON value as a boolean. The second return is
// false when the value is null, empty, or unrecognised.
func coerceBool(data []byte) (value, known bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, false
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return b, true
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		switch n {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return false, false
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return false, false
	}
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return false, false
	}
	if truthy[text] {
		return true, true
	}
	if falsy[text] {
		return false, true
	}
	return false, false
}
