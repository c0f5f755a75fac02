package domain

import "math"

// CarrierOption is one row of the recommendation matrix: a carrier that
// serves a lane up to a maximum parcel weight.
type CarrierOption struct {
	ID        string
	Lane      Lane
	WeightMax float64
	Headline  string
	Tip       string
}

var carrierMatrix = []CarrierOption{
	{ID: "auspost_cubic", Lane: LaneAusDomestic, WeightMax: 2, Headline: "Australia Post Cubic eParcel",
		Tip: "Uses cubic weight (L×W×H÷4000) vs actual weight. Ideal for light, bulky items. Optimize packaging to reduce cubic weight."},
	{ID: "startrack_express", Lane: LaneAusDomestic, WeightMax: 5, Headline: "StarTrack Express",
		Tip: "Best for 2-5kg items with next-day metro delivery. Volume discounts available for 500+ parcels/month."},
	{ID: "tnt_express", Lane: LaneAusDomestic, WeightMax: math.Inf(1), Headline: "TNT Express",
		Tip: "Premium same-day and next-day service in major cities. Real-time tracking and proof of delivery."},

	{ID: "dhl_express", Lane: LaneAusInternational, WeightMax: 2, Headline: "DHL Express Worldwide",
		Tip: "Fastest international delivery (1-3 days) with excellent tracking. DDP service available to handle duties/taxes."},
	{ID: "auspost_intl", Lane: LaneAusInternational, WeightMax: 5, Headline: "Australia Post International Economy",
		Tip: "Most cost-effective for high-volume international. 7-20 business days. Good coverage to 190+ countries."},
	{ID: "fedex_priority", Lane: LaneAusInternational, WeightMax: math.Inf(1), Headline: "FedEx International Priority",
		Tip: "Reliable 1-3 day delivery with strong tracking. Good for urgent international shipments."},

	{ID: "sf_express", Lane: LaneChinaGlobal, WeightMax: 1, Headline: "SF Express International",
		Tip: "Premium service with 5-7 day delivery. Strong compliance for electronics and regulated goods."},
	{ID: "china_post", Lane: LaneChinaGlobal, WeightMax: 2, Headline: "China Post ePacket",
		Tip: "Most economical option (10-20 days). Good for low-value items under de minimis thresholds."},
	{ID: "dhl_ecommerce", Lane: LaneChinaGlobal, WeightMax: math.Inf(1), Headline: "DHL eCommerce",
		Tip: "Best balance of cost and speed (5-10 days). Excellent for consolidated shipments and bulk orders."},
}

var defaultCarrier = CarrierOption{
	ID:        "auspost_parcel_post",
	Lane:      LaneAusDomestic,
	WeightMax: math.Inf(1),
	Headline:  "AusPost Parcel Post",
	Tip:       "Safe baseline service when no optimised carrier match is found.",
}

// CarrierSelector picks the first matrix row on the profile's lane whose
// weight ceiling covers the parcel, falling back to the default carrier.
type CarrierSelector struct{}

func (CarrierSelector) Name() string { return "carrier_recommendation" }

func (CarrierSelector) Apply(p NormalizedProfile, strategy FulfillmentStrategy, out *InsightSet) {
	carrier := ChooseCarrier(p, strategy)
	out.CarrierHeadline = carrier.Headline
	out.CarrierTip = carrier.Tip
}

// ChooseCarrier resolves the best carrier for the profile's lane and weight.
func ChooseCarrier(p NormalizedProfile, strategy FulfillmentStrategy) CarrierOption {
	lane := LaneFor(p, strategy)
	for _, c := range carrierMatrix {
		if c.Lane == lane && p.AvgWeightKg <= c.WeightMax {
			return c
		}
	}
	return defaultCarrier
}
