// Package lookup - Table loading
package lookup

import (
	"encoding/json"
	"os"

	"flightfare/core/types"
	"flightfare/internal/errors"
)

// LoadNames reads a code -> display-name table from a JSON object file.
// An empty path yields an empty table, not an error.
func LoadNames(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Input("reading name table", err).WithContext("path", path)
	}
	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, errors.Parsing("decoding name table", err).WithContext("path", path)
	}
	return names, nil
}

// LoadLegs decodes a segment-wide leg dictionary from raw JSON.
func LoadLegs(data []byte) (map[string]*types.RawLeg, error) {
	var legs map[string]*types.RawLeg
	if err := json.Unmarshal(data, &legs); err != nil {
		return nil, errors.Parsing("decoding leg dictionary", err)
	}
	return legs, nil
}
