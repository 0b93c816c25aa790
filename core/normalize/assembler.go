// Package normalize - Canonical fare assembly
// The pipeline entry: runs the five stages in strict sequence for one
// segment and merges their outputs into a single canonical record. Callers
// always receive a record; the only fault that changes control flow is the
// late out-of-policy enrichment, which degrades to an unserialized partial.
package normalize

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"flightfare/core/baggage"
	"flightfare/core/fareselect"
	"flightfare/core/legs"
	"flightfare/core/lookup"
	"flightfare/core/pricing"
	"flightfare/core/types"
	"flightfare/internal/logging"
)

// Input carries everything one invocation reads. The Armoury pair is the
// only threaded state; the transform mutates nothing it is handed.
type Input struct {
	// Segment is the raw provider payload, read-only
	Segment *types.RawSegment

	// Origin and Destination are caller-supplied display strings
	Origin      string
	Destination string

	// Armoury is the current accumulator pair; the updated pair comes back
	// on the canonical record
	Armoury fareselect.Armoury

	// Counts are the passenger counts for price weighting
	Counts pricing.PaxCounts

	// Previous is the previously finalized fare feeding the out-of-policy
	// pass-through
	Previous *types.FinalizedFare

	// RoundTrip marks a combined round-trip invocation
	RoundTrip bool

	// FareIndex selects the active fare option
	FareIndex int
}

// Result is the invocation outcome. Exactly one of the two shapes applies:
// Serialized holds the full record on the success path; on the fail-soft
// path Serialized is empty and Fare carries the partial record.
type Result struct {
	// Serialized is the textual record, empty on the fail-soft path
	Serialized string

	// Fare is the structured record, always non-nil
	Fare *types.CanonicalFare

	// Complete reports whether the late enrichment and serialization ran
	Complete bool
}

// Normalize converts one raw segment into a canonical fare record.
func Normalize(in Input, tables *lookup.Tables) Result {
	trace := uuid.NewString()
	log := logging.With(zap.String("trace_id", trace))

	seg := in.Segment
	fare := &types.CanonicalFare{
		Origin:      in.Origin,
		Destination: in.Destination,
	}
	if seg != nil {
		fare.SearchID = seg.SearchID
		fare.SegmentID = seg.ID
		fare.SegmentKey = seg.SegmentKey
		fare.Remark = seg.Remark
	}

	roundTripCombined := in.RoundTrip || (seg != nil && seg.RoundTripCombined.Bool())

	// Stage 1+2: legs per bound, then baggage tiers over each bound's legs.
	engineID := 0
	if seg != nil {
		engineID = seg.EngineID
	}
	var bounds []types.CanonicalBound
	if seg != nil {
		bounds = make([]types.CanonicalBound, 0, len(seg.Bounds))
		for i := range seg.Bounds {
			bound := &seg.Bounds[i]
			resolved := legs.Extract(bound, seg, tables)
			baggage.Resolve(bound, resolved, in.FareIndex, engineID)
			bounds = append(bounds, types.CanonicalBound{
				JourneyTime: bound.JourneyTime,
				Stops:       legs.Stops(bound.Stops),
				Legs:        resolved,
			})
		}
	}
	fare.Bounds = bounds
	log.Debug("legs resolved", zap.Int("bounds", len(bounds)))

	// Stage 3: active fare and coupon state.
	sel := fareselect.Select(seg, in.FareIndex, roundTripCombined)
	fare.CouponCode = sel.CouponCode
	fare.DiscountAmount = sel.DiscountAmount
	fare.AdditionalCoupon = sel.AdditionalCoupon
	fare.CouponText = sel.CouponText
	fare.InsuranceKey = sel.InsuranceKey
	fare.BrandKey = sel.BrandKey
	fare.FareTypeID = sel.FareTypeID
	if sel.Option != nil {
		fare.FareID = sel.Option.FareID
		fare.FareName = sel.Option.FareName
	}
	fare.HandBaggageIncluded = baggage.HandIncluded(sel.Option)

	armoury := in.Armoury.Apply(fare.FareID, fare.FareTypeID)
	fare.FareArmoury = armoury.OneWay
	fare.RoundTripArmoury = armoury.RoundTrip

	// Stage 4: passenger-weighted totals.
	agg := pricing.Sum(sel.Option, seg, in.Counts)
	fare.AdultPrice = agg.AdultPrice
	fare.ChildPrice = agg.ChildPrice
	fare.InfantPrice = agg.InfantPrice
	fare.BaseFare = agg.BaseFare
	fare.TotalTax = agg.TotalTax
	fare.TotalFare = agg.TotalFare
	fare.TotalMarkup = agg.TotalMarkup
	fare.Commission = agg.Commission
	fare.Cashback = agg.Cashback
	fare.TDS = agg.TDS
	fare.ServiceFee = agg.ServiceFee
	fare.TransactionFee = agg.TransactionFee
	fare.ExtraSeatFare = agg.ExtraSeatFare

	// Stage 5: cross-field corrections and final merge.
	fare.Refundable = resolveRefundable(seg)
	fare.CancellationPolicy = cancellationPolicy(seg, in.FareIndex)
	if fare.CouponCode == "" {
		fare.DiscountAmount = decimal.Zero
	}

	// The single fail-soft point: the out-of-policy pass-through. A
	// structurally absent source aborts normalization here and hands back
	// the partial record.
	outcome := enrichOutOfPolicy(in.Previous)
	if !outcome.ok {
		log.Debug("out-of-policy source absent, returning partial record")
		return Result{Fare: fare}
	}
	fare.OutOfPolicy = outcome.value

	serialized, err := Serialize(fare, false)
	if err != nil {
		log.Debug("serialization failed, returning partial record", zap.Error(err))
		return Result{Fare: fare}
	}

	log.Debug("segment normalized",
		zap.String("segment_key", fare.SegmentKey),
		zap.String("fare_id", fare.FareID))
	return Result{Serialized: serialized, Fare: fare, Complete: true}
}

// resolveRefundable prefers the first bound's flag over the segment's.
func resolveRefundable(seg *types.RawSegment) bool {
	if seg == nil {
		return false
	}
	segFlag := seg.Refundable.Or(false)
	if len(seg.Bounds) > 0 {
		return seg.Bounds[0].Refundable.Or(segFlag)
	}
	return segFlag
}

// cancellationPolicy takes the first bound's per-fare policy when present,
// else the segment's flat field.
func cancellationPolicy(seg *types.RawSegment, fareIdx int) []string {
	if seg == nil {
		return nil
	}
	if len(seg.Bounds) > 0 {
		if policy, ok := policyForIndex(&seg.Bounds[0], fareIdx); ok {
			return policy
		}
	}
	return seg.CancelPolicy
}

func policyForIndex(bound *types.RawBound, fareIdx int) ([]string, bool) {
	if bound.CancelPolicy == nil {
		return nil, false
	}
	policy, ok := bound.CancelPolicy[indexKey(fareIdx)]
	return policy, ok
}
