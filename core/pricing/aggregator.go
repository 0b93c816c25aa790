// Package pricing - Passenger fare aggregation
// Folds the selected fare option's per-passenger-type rows into one
// aggregate, weighting each row by the caller's passenger counts. When the
// segment carries no fare list at all, the aggregate falls back one-for-one
// to the segment's flat price fields.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"flightfare/core/types"
)

// PaxCounts are the passenger counts supplied by the caller.
type PaxCounts struct {
	Adults   int64
	Children int64
	Infants  int64
}

// count returns the multiplier for a row's passenger type. Types other than
// the three literals contribute to no bucket.
func (p PaxCounts) count(paxType string) (int64, bool) {
	switch {
	case strings.EqualFold(paxType, types.PaxAdult):
		return p.Adults, true
	case strings.EqualFold(paxType, types.PaxChild):
		return p.Children, true
	case strings.EqualFold(paxType, types.PaxInfant):
		return p.Infants, true
	}
	return 0, false
}

// Aggregate holds the passenger-count-weighted totals for one fare.
type Aggregate struct {
	AdultPrice  decimal.Decimal
	ChildPrice  decimal.Decimal
	InfantPrice decimal.Decimal

	BaseFare    decimal.Decimal
	TotalFare   decimal.Decimal
	TotalTax    decimal.Decimal
	TotalMarkup decimal.Decimal

	Commission     decimal.Decimal
	Cashback       decimal.Decimal
	TDS            decimal.Decimal
	ServiceFee     decimal.Decimal
	TransactionFee decimal.Decimal
	ExtraSeatFare  decimal.Decimal
}

// Sum computes the aggregate for the selected option. A nil option selects
// the flat-field fallback path: every aggregate field maps directly to a
// segment-level field and no row is touched.
func Sum(opt *types.RawFareOption, seg *types.RawSegment, counts PaxCounts) Aggregate {
	if opt == nil {
		return flatFallback(seg)
	}

	agg := Aggregate{}
	for i := range opt.Rows {
		agg = accumulate(agg, &opt.Rows[i], counts)
	}

	// Markup is additive on top of the per-row totals.
	agg.TotalFare = agg.TotalFare.Add(agg.TotalMarkup)
	return agg
}

// accumulate folds one passenger row into the running aggregate.
func accumulate(agg Aggregate, row *types.PassengerFareRow, counts PaxCounts) Aggregate {
	// Extra-seat fees sum across all rows regardless of type.
	agg.ExtraSeatFare = agg.ExtraSeatFare.Add(row.ExtraSeatFee)

	n, ok := counts.count(row.PaxType)
	if !ok || n == 0 {
		return agg
	}
	weight := decimal.NewFromInt(n)

	base := row.BaseFare.Mul(weight)
	switch {
	case strings.EqualFold(row.PaxType, types.PaxAdult):
		agg.AdultPrice = agg.AdultPrice.Add(base)
	case strings.EqualFold(row.PaxType, types.PaxChild):
		agg.ChildPrice = agg.ChildPrice.Add(base)
	case strings.EqualFold(row.PaxType, types.PaxInfant):
		agg.InfantPrice = agg.InfantPrice.Add(base)
	}

	agg.BaseFare = agg.BaseFare.Add(base)
	agg.TotalFare = agg.TotalFare.Add(row.TotalFare.Mul(weight))
	agg.TotalTax = agg.TotalTax.Add(row.TotalTax.Mul(weight))
	agg.TotalMarkup = agg.TotalMarkup.Add(row.Markup.Mul(weight))

	// Optional amounts contribute only when present on the row.
	agg.Commission = addOptional(agg.Commission, row.Commission, weight)
	agg.Cashback = addOptional(agg.Cashback, row.Cashback, weight)
	agg.TDS = addOptional(agg.TDS, row.TDS, weight)
	agg.ServiceFee = addOptional(agg.ServiceFee, row.ServiceFee, weight)
	agg.TransactionFee = addOptional(agg.TransactionFee, row.TransactionFee, weight)

	return agg
}

func addOptional(acc decimal.Decimal, v *decimal.Decimal, weight decimal.Decimal) decimal.Decimal {
	if v == nil {
		return acc
	}
	return acc.Add(v.Mul(weight))
}

// flatFallback maps the segment's flat price fields straight into an
// aggregate. This is a complete alternate path, not a partial one.
func flatFallback(seg *types.RawSegment) Aggregate {
	if seg == nil {
		return Aggregate{}
	}
	return Aggregate{
		AdultPrice:  seg.AdultPrice,
		ChildPrice:  seg.ChildPrice,
		InfantPrice: seg.InfantPrice,
		TotalTax:    seg.TotalTax,
		TotalFare:   seg.TotalFare,
	}
}
