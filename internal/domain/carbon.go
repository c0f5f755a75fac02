package domain

import "fmt"

// Emission factors in kg CO2 per tonne-km, per the UK government 2024
// freight tables.
const (
	co2FactorAusDomestic = 0.025 // domestic truck/rail
	co2FactorAusIntlAir  = 0.606 // long-haul air freight
	co2FactorAusIntlSea  = 0.015 // container ship
	co2FactorChinaAir    = 1.316 // short-haul international air
	co2FactorChinaSea    = 0.011 // bulk carrier
)

// Average lane distances in km.
const (
	distanceAusDomesticKm = 500
	distanceAusIntlKm     = 2000
	distanceChinaKm       = 1500
)

// CarbonEstimator computes the per-parcel footprint for the lane's primary
// transport mode and quotes the sea-freight alternative alongside it.
type CarbonEstimator struct{}

func (CarbonEstimator) Name() string { return "carbon_footprint" }

func (CarbonEstimator) Apply(p NormalizedProfile, strategy FulfillmentStrategy, out *InsightSet) {
	lane := LaneFor(p, strategy)

	var factor, distance float64
	var mode string

	switch lane {
	case LaneAusDomestic:
		factor, distance, mode = co2FactorAusDomestic, distanceAusDomesticKm, "road transport"
	case LaneAusInternational:
		factor, distance, mode = co2FactorAusIntlAir, distanceAusIntlKm, "air freight"
	default:
		factor, distance, mode = co2FactorChinaAir, distanceChinaKm, "air freight"
	}

	// weight(kg) * factor(kg CO2 / tonne-km) * distance(km) / 1000 kg-per-tonne
	perParcel := p.AvgWeightKg * factor * distance / 1000
	seaFreight := p.AvgWeightKg * co2FactorAusIntlSea * distance / 1000
	reductionPct := (perParcel - seaFreight) / perParcel * 100

	out.CO2Text = fmt.Sprintf(
		"≈ %.1f kg CO₂e per parcel via %s. Switch to sea freight for international shipments to reduce emissions by %.0f%% (%.2f kg CO₂e).",
		perParcel, mode, reductionPct, seaFreight)
}
