// Package types - Raw provider payload types
// Field names mirror the provider's compact JSON keys. The payload is
// heterogeneously shaped: every sub-structure is optional and the transform
// must tolerate whatever is missing.
package types

import "github.com/shopspring/decimal"

// RawSegment is one itinerary search result as returned by the provider.
// Constructed upstream, read-only to the transform.
type RawSegment struct {
	// ID is the provider's segment identifier
	ID string `json:"id"`

	// SearchID identifies the originating search
	SearchID string `json:"SrchID"`

	// SegmentKey is the provider's itinerary key for this segment
	SegmentKey string `json:"SK"`

	// Bounds holds the directional halves of the itinerary, in travel order
	Bounds []RawBound `json:"b"`

	// OutboundLegKeys is the outbound leg-key list some round-trip inbound
	// bounds fall back to when their own FL list is absent
	OutboundLegKeys []string `json:"l_OB"`

	// FareOptions is the selectable fare list (lstFr)
	FareOptions []RawFareOption `json:"lstFr"`

	// Flat per-type prices, used only when FareOptions is empty
	AdultPrice  decimal.Decimal `json:"AP"`
	ChildPrice  decimal.Decimal `json:"CP"`
	InfantPrice decimal.Decimal `json:"IP"`

	// TotalTax is the flat tax total (empty-fare-list path)
	TotalTax decimal.Decimal `json:"TT"`

	// TotalFare is the flat fare total (empty-fare-list path)
	TotalFare decimal.Decimal `json:"TF"`

	// DiscountedTotal is the post-coupon payable total
	DiscountedTotal decimal.Decimal `json:"TTDIS"`

	// CouponApplies signals that DiscountedTotal is live
	CouponApplies Flag `json:"ICPS"`

	// Segment-level coupon fields
	CouponCode   string          `json:"CPNC"`
	CouponAmount decimal.Decimal `json:"CPND"`
	CouponText   string          `json:"CPNT"`

	// EngineID selects the legacy baggage policy row
	EngineID int `json:"EngID"`

	// RoundTripCombined marks a combined round-trip segment
	RoundTripCombined Flag `json:"RTF"`

	// Refundable is the segment-level refundability flag
	Refundable TriBool `json:"RF"`

	// CancelPolicy is the flat cancellation-policy fallback
	CancelPolicy []string `json:"CancelPolicy"`

	// Remark carries provider free text
	Remark string `json:"Remark"`
}

// RawBound is one direction of travel (outbound or inbound).
type RawBound struct {
	// LegKeys orders the legs of this bound; each key addresses the
	// segment-wide leg dictionary
	LegKeys []string `json:"FL"`

	// FareClasses is the per-leg fare class for the currently selected
	// fare, parallel to LegKeys
	FareClasses []string `json:"FCLS"`

	// CheckedBaggage is the plain per-leg checked-baggage list
	// (e.g. "15 KG"), parallel to LegKeys
	CheckedBaggage []string `json:"BG"`

	// CheckedByFare maps fare index -> per-leg "unit|weight" strings
	CheckedByFare map[string][]string `json:"BGK"`

	// HandByFare is the hand-baggage counterpart of CheckedByFare
	HandByFare map[string][]string `json:"HBGK"`

	// BookingKeys maps fare index -> booking key
	BookingKeys map[string]string `json:"BKK"`

	// CancelPolicy maps fare index -> cancellation-policy lines
	CancelPolicy map[string][]string `json:"CP"`

	// Layovers holds connection layovers; entry i applies to leg i+1
	Layovers []string `json:"LO"`

	// JourneyTime is the provider's end-to-end duration text
	JourneyTime string `json:"JyTm"`

	// Stops is the provider's stop count, as text
	Stops string `json:"stp"`

	// Refundable overrides the segment-level flag when present
	Refundable TriBool `json:"RF"`
}

// RawLeg is a single non-stop flight, looked up by key from the segment-wide
// leg dictionary. Multiple bounds may reference the same key.
type RawLeg struct {
	AirlineCode     string `json:"AC"`
	AirlineName     string `json:"ALN"`
	FlightNumber    string `json:"FN"`
	Origin          string `json:"OG"`
	OriginName      string `json:"OGN"`
	Destination     string `json:"DT"`
	DestinationName string `json:"DTN"`
	CountryCode     string `json:"CNT"`

	// DepartureDate arrives in DD-MMM-YYYY-family formats, sometimes with a
	// weekday prefix (e.g. "Wed-15Jun2023")
	DepartureDate string `json:"DDT"`
	DepartureTime string `json:"DTM"`
	ArrivalDate   string `json:"ADT"`
	ArrivalTime   string `json:"ATM"`

	Cabin     string `json:"CB"`
	FareClass string `json:"FCLS"`
	Duration  string `json:"DUR"`

	// Layover is the leg's inherent connection time, overridden by the
	// bound's Layovers list when that list is present
	Layover   string `json:"LO"`
	Equipment string `json:"EQ"`
	Seats     int    `json:"ST"`

	// Checked-baggage defaults
	BaggageWeight string `json:"BW"`
	BaggageUnit   string `json:"BU"`

	// Hand-baggage defaults
	HandBaggageWeight string `json:"HBW"`
	HandBaggageUnit   string `json:"HBU"`
}

// RawFareOption is one selectable fare, addressed by position in lstFr.
type RawFareOption struct {
	// FareID is the provider fare id (SID)
	FareID string `json:"SID"`

	// FareName is the display name
	FareName string `json:"FN"`

	// FareTypeID classifies the fare; ids 9/10/11/21 are already-final
	FareTypeID int `json:"FTID"`

	BaseFare      decimal.Decimal `json:"BF"`
	TotalFare     decimal.Decimal `json:"TF"`
	TaxWithMarkup decimal.Decimal `json:"TTXMP"`
	Markup        decimal.Decimal `json:"MKP"`

	// DiscountedTotal is the post-coupon payable total for this option
	DiscountedTotal decimal.Decimal `json:"TTDIS"`

	// CouponApplies signals that DiscountedTotal is live
	CouponApplies Flag `json:"ICPS"`

	// Coupon metadata, adopted verbatim unless round-trip-combined
	CouponCodes      []string        `json:"CPNC"`
	CouponAmount     decimal.Decimal `json:"CPND"`
	AdditionalCoupon Flag            `json:"CPNAD"`
	CouponText       string          `json:"CPNT"`

	InsuranceKey string `json:"INS"`
	BrandKey     string `json:"BRK"`

	// HandBaggageIncluded is the option's own claim; overridden when the
	// first passenger row carries a positive baggage weight
	HandBaggageIncluded Flag `json:"HBI"`

	// Rows is the per-passenger-type fare breakdown
	Rows []PassengerFareRow `json:"FR"`
}

// PassengerFareRow is one per-passenger-type line of a fare breakdown.
// Pointer fields are genuinely optional on the wire: absent means zero
// contribution, never an error.
type PassengerFareRow struct {
	// PaxType is ADULT, CHILD, or INFANT, matched case-insensitively; any
	// other label contributes to no price bucket
	PaxType string `json:"PTC"`

	// Baggage is the allowance display text
	Baggage string `json:"BG"`

	// BaggageWeight is the numeric allowance; a positive value on the first
	// row marks hand baggage as not included
	BaggageWeight decimal.Decimal `json:"BW"`

	CancelPenalty string `json:"CPN"`
	ChangePenalty string `json:"CHPN"`

	BaseFare  decimal.Decimal `json:"BF"`
	TotalFare decimal.Decimal `json:"TF"`
	TotalTax  decimal.Decimal `json:"TT"`
	Markup    decimal.Decimal `json:"MKP"`

	Commission     *decimal.Decimal `json:"CMS,omitempty"`
	Cashback       *decimal.Decimal `json:"CSB,omitempty"`
	TDS            *decimal.Decimal `json:"TDS,omitempty"`
	ServiceFee     *decimal.Decimal `json:"SF,omitempty"`
	TransactionFee *decimal.Decimal `json:"TRF,omitempty"`

	Refundable   TriBool         `json:"RF"`
	ExtraSeatFee decimal.Decimal `json:"ESF"`
}

// Passenger type literals matched against PassengerFareRow.PaxType.
const (
	PaxAdult  = "ADULT"
	PaxChild  = "CHILD"
	PaxInfant = "INFANT"
)
