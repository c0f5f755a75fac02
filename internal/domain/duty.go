package domain

// Parcels over this weight commonly trigger formal customs clearance.
const formalClearanceKg = 2.0

// DutyNoteGenerator writes the duty and tax note for the shipping lane.
// Thresholds reflect 2024 de minimis rules for AU, EU/UK and US.
type DutyNoteGenerator struct{}

func (DutyNoteGenerator) Name() string { return "duty_taxes" }

func (DutyNoteGenerator) Apply(p NormalizedProfile, strategy FulfillmentStrategy, out *InsightSet) {
	switch LaneFor(p, strategy) {
	case LaneAusInternational:
		if p.AvgWeightKg <= formalClearanceKg {
			out.DutyText = "🇦🇺 Import to Australia: De minimis AU$1,000. Above: 5% duty (FOB) + 10% GST (CIF+duty). Processing fee: AU$50-192."
		} else {
			out.DutyText = "🇦🇺 Heavier parcels (>2kg): May trigger formal customs clearance. Consider keeping shipments under AU$1,000 to avoid duties."
		}
	case LaneChinaGlobal:
		if p.AvgWeightKg <= formalClearanceKg {
			out.DutyText = "🌍 Global shipping: EU/UK VAT ~20% collected via IOSS. US: $800 de minimis. Most countries: 10-25% VAT/GST."
		} else {
			out.DutyText = "🌍 Over 2kg may trigger formal clearance in EU/UK. Allow extra 2-3 days. Consider sea freight for cost savings."
		}
	default:
		out.DutyText = "🇦🇺 Domestic shipping: No import duties. Only GST applies to final sale (10% if registered for GST)."
	}
}
