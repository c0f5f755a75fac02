package domain

import "fmt"

// cubicDivisor converts package volume in cm³ to cubic weight in kg.
const cubicDivisor = 4000

// CubicWeightEducator explains chargeable weight using the merchant's own
// package size as the worked example.
type CubicWeightEducator struct{}

func (CubicWeightEducator) Name() string { return "cubic_weight_education" }

func (CubicWeightEducator) Apply(p NormalizedProfile, _ FulfillmentStrategy, out *InsightSet) {
	length, width, height := p.PackageSize.Dimensions()
	cubicWeight := length * width * height / cubicDivisor

	var comparison string
	if cubicWeight > p.AvgWeightKg {
		comparison = fmt.Sprintf("You're paying for %.1fkg cubic weight vs %gkg actual weight. Optimize packaging to save costs.",
			cubicWeight, p.AvgWeightKg)
	} else {
		comparison = fmt.Sprintf("Your actual weight (%gkg) exceeds cubic weight (%.1fkg) - good packaging efficiency.",
			p.AvgWeightKg, cubicWeight)
	}

	out.WeightEducationText = fmt.Sprintf(
		"📦 Shipping Weight Education: Carriers charge for \"chargeable weight\" - the higher of actual vs cubic weight. Example: %.0f×%.0f×%.0fcm package = %.1fkg cubic weight (L×W×H÷%d). %s",
		length, width, height, cubicWeight, cubicDivisor, comparison)
}
