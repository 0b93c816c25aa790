// Package fareselect - Fare armoury accumulators
package fareselect

// finalFareTypes are the already-final fare-type ids. Applying one of these
// must not reset the one-way accumulator.
var finalFareTypes = map[int]struct{}{
	9:  {},
	10: {},
	11: {},
	21: {},
}

// Armoury is the pair of comma-joined fare-id accumulators the caller
// threads across repeated invocations for one itinerary. It is explicit
// input/output state, never stored by the transform.
type Armoury struct {
	OneWay    string
	RoundTrip string
}

// Apply records a fare id and returns the updated pair. Already-final fare
// types append to the one-way accumulator; every other type resets it first.
// The round-trip accumulator always appends.
func (a Armoury) Apply(fareID string, fareTypeID int) Armoury {
	if fareID == "" {
		return a
	}
	if _, final := finalFareTypes[fareTypeID]; final {
		a.OneWay = join(a.OneWay, fareID)
	} else {
		a.OneWay = fareID
	}
	a.RoundTrip = join(a.RoundTrip, fareID)
	return a
}

func join(acc, id string) string {
	if acc == "" {
		return id
	}
	return acc + "," + id
}
