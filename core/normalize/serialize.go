// Package normalize - Canonical record serialization
package normalize

import (
	"encoding/json"

	"flightfare/core/types"
	"flightfare/internal/errors"
)

// Serialize renders the canonical record as its textual interchange form.
func Serialize(fare *types.CanonicalFare, pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(fare, "", "  ")
	} else {
		data, err = json.Marshal(fare)
	}
	if err != nil {
		return "", errors.Serialize("encoding canonical fare", err)
	}
	return string(data), nil
}

// DecodeSegment parses a raw provider segment payload.
func DecodeSegment(data []byte) (*types.RawSegment, error) {
	var seg types.RawSegment
	if err := json.Unmarshal(data, &seg); err != nil {
		return nil, errors.Input("decoding raw segment", err)
	}
	return &seg, nil
}
