// Package fareselect - Active fare selection
// Picks the fare option addressed by the caller's index and derives the
// coupon/discount state, insurance and brand keys for the canonical record.
package fareselect

import (
	"strings"

	"github.com/shopspring/decimal"

	"flightfare/core/types"
)

// Selection is the resolved fare state for one invocation.
type Selection struct {
	// Option is the active fare, nil when the segment carries no fare list
	Option *types.RawFareOption

	// Index is the position actually used after range guarding
	Index int

	// PayableTotal is the option's effective total after the coupon rule
	PayableTotal decimal.Decimal

	CouponCode       string
	DiscountAmount   decimal.Decimal
	AdditionalCoupon bool
	CouponText       string

	InsuranceKey string
	BrandKey     string
	FareTypeID   int
}

// Select resolves the active fare option and its coupon state.
//
// An out-of-range index falls back to the first option rather than failing.
// A round-trip-combined segment suppresses all coupon state so per-leg
// coupons cannot be applied twice. Otherwise the coupon code is surfaced
// only while the discounted total undercuts the undiscounted total; a
// non-discounting coupon is blanked and its amount reset to zero.
func Select(seg *types.RawSegment, fareIdx int, roundTripCombined bool) Selection {
	if seg == nil || len(seg.FareOptions) == 0 {
		return Selection{Index: fareIdx, PayableTotal: decimal.Zero, DiscountAmount: decimal.Zero}
	}

	if fareIdx < 0 || fareIdx >= len(seg.FareOptions) {
		fareIdx = 0
	}
	opt := &seg.FareOptions[fareIdx]

	sel := Selection{
		Option:       opt,
		Index:        fareIdx,
		PayableTotal: opt.TotalFare,
		InsuranceKey: opt.InsuranceKey,
		BrandKey:     opt.BrandKey,
		FareTypeID:   opt.FareTypeID,

		CouponCode:       strings.Join(opt.CouponCodes, ","),
		DiscountAmount:   opt.CouponAmount,
		AdditionalCoupon: opt.AdditionalCoupon.Bool(),
		CouponText:       opt.CouponText,
	}

	if roundTripCombined {
		sel.CouponCode = ""
		sel.DiscountAmount = decimal.Zero
		sel.AdditionalCoupon = false
		sel.CouponText = ""
		return sel
	}

	if discountApplies(opt) {
		sel.PayableTotal = opt.DiscountedTotal
	} else {
		sel.CouponCode = ""
		sel.DiscountAmount = decimal.Zero
	}
	return sel
}

// discountApplies reports whether the option's discounted total is live:
// the coupon flag is set and TTDIS is a positive amount strictly below TF.
func discountApplies(opt *types.RawFareOption) bool {
	return opt.CouponApplies.Bool() &&
		opt.DiscountedTotal.IsPositive() &&
		opt.DiscountedTotal.LessThan(opt.TotalFare)
}
