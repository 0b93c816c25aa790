// Package types - Canonical fare output types
package types

import "github.com/shopspring/decimal"

// CanonicalLeg is a display-ready flight leg. A leg whose dictionary key was
// missing stays zero-valued; downstream fields are simply absent.
type CanonicalLeg struct {
	AirlineCode  string `json:"airline_code"`
	AirlineName  string `json:"airline_name"`
	FlightNumber string `json:"flight_number"`

	Origin          string `json:"origin"`
	OriginName      string `json:"origin_name"`
	Destination     string `json:"destination"`
	DestinationName string `json:"destination_name"`
	CountryName     string `json:"country_name,omitempty"`

	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`

	// Cabin is the display label (Economy, Business, ...)
	Cabin string `json:"cabin"`

	// FareClass comes from the bound's per-leg list, tying the displayed
	// class to the selected fare rather than the leg's static data
	FareClass string `json:"fare_class"`

	DurationMinutes int    `json:"duration_minutes,omitempty"`
	LayoverMinutes  int    `json:"layover_minutes,omitempty"`
	Equipment       string `json:"equipment,omitempty"`
	Seats           int    `json:"seats,omitempty"`

	BaggageUnit       string `json:"baggage_unit,omitempty"`
	BaggageWeight     string `json:"baggage_weight,omitempty"`
	HandBaggageUnit   string `json:"hand_baggage_unit,omitempty"`
	HandBaggageWeight string `json:"hand_baggage_weight,omitempty"`
}

// CanonicalBound is one direction of travel with its resolved legs.
type CanonicalBound struct {
	JourneyTime string         `json:"journey_time,omitempty"`
	Stops       int            `json:"stops"`
	Legs        []CanonicalLeg `json:"legs"`
}

// CanonicalFare is the flattened fare record consumed by booking/UI logic.
// Produced fresh per invocation; no state is shared across calls.
type CanonicalFare struct {
	SearchID   string `json:"search_id,omitempty"`
	SegmentID  string `json:"segment_id,omitempty"`
	SegmentKey string `json:"segment_key,omitempty"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Passenger-count-weighted totals
	AdultPrice     decimal.Decimal `json:"adult_price"`
	ChildPrice     decimal.Decimal `json:"child_price"`
	InfantPrice    decimal.Decimal `json:"infant_price"`
	BaseFare       decimal.Decimal `json:"base_fare"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	TotalFare      decimal.Decimal `json:"total_fare"`
	TotalMarkup    decimal.Decimal `json:"total_markup"`
	Commission     decimal.Decimal `json:"commission"`
	Cashback       decimal.Decimal `json:"cashback"`
	TDS            decimal.Decimal `json:"tds"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	TransactionFee decimal.Decimal `json:"transaction_fee"`
	ExtraSeatFare  decimal.Decimal `json:"extra_seat_fare"`

	FareID     string `json:"fare_id,omitempty"`
	FareName   string `json:"fare_name,omitempty"`
	FareTypeID int    `json:"fare_type_id,omitempty"`

	BrandKey     string `json:"brand_key,omitempty"`
	InsuranceKey string `json:"insurance_key,omitempty"`

	// Resolved coupon state. DiscountAmount is forced to zero whenever
	// CouponCode is empty.
	CouponCode       string          `json:"coupon_code"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	AdditionalCoupon bool            `json:"additional_coupon"`
	CouponText       string          `json:"coupon_text,omitempty"`

	Refundable          bool `json:"refundable"`
	HandBaggageIncluded bool `json:"hand_baggage_included"`

	Bounds []CanonicalBound `json:"bounds"`

	CancellationPolicy []string `json:"cancellation_policy,omitempty"`

	OutOfPolicy bool `json:"out_of_policy"`

	// Armoury accumulators, threaded in and out by the caller
	FareArmoury      string `json:"fare_armoury"`
	RoundTripArmoury string `json:"roundtrip_armoury"`

	Remark string `json:"remark,omitempty"`
}

// FinalizedFare is a previously finalized fare supplied by the caller. Its
// optional policy block feeds the out-of-policy pass-through.
type FinalizedFare struct {
	FareID string `json:"fare_id"`

	// Policy is nil when the upstream record carried no policy block
	Policy *PolicyInfo `json:"policy,omitempty"`
}

// PolicyInfo is the corporate-policy block of a finalized fare.
type PolicyInfo struct {
	OutOfPolicy bool `json:"out_of_policy"`
}
