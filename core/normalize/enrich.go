// Package normalize - Late enrichment outcome
package normalize

import (
	"strconv"

	"flightfare/core/types"
)

// enrichOutcome is the typed result of the out-of-policy pass-through. Only
// the structurally-absent fault class clears ok; it is not a generic
// catch-all.
type enrichOutcome struct {
	value bool
	ok    bool
}

// enrichOutOfPolicy reads the out-of-policy flag from the previously
// finalized fare. A nil fare or nil policy block is the absent case.
func enrichOutOfPolicy(prev *types.FinalizedFare) enrichOutcome {
	if prev == nil || prev.Policy == nil {
		return enrichOutcome{}
	}
	return enrichOutcome{value: prev.Policy.OutOfPolicy, ok: true}
}

func indexKey(i int) string {
	return strconv.Itoa(i)
}
