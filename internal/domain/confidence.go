package domain

// ConfidenceScorer grades the recommendation by how many answers had to be
// filled in with defaults. Each fallback both lowers the level and records a
// human-readable assumption.
type ConfidenceScorer struct{}

func (ConfidenceScorer) Name() string { return "confidence" }

func (ConfidenceScorer) Apply(p NormalizedProfile, _ FulfillmentStrategy, out *InsightSet) {
	var assumptions []string

	if !p.HasWebsite {
		assumptions = append(assumptions, "Website URL missing – used generic product segment averages")
	}
	if p.Category == "" {
		assumptions = append(assumptions, "Product category not provided – returns risk estimated")
	}
	if p.VolumeBand.IsBroad() {
		assumptions = append(assumptions, "Monthly order range very broad – savings calculated with midpoint")
	}

	switch len(assumptions) {
	case 0:
		out.ConfidenceLevel = ConfidenceHigh
	case 1:
		out.ConfidenceLevel = ConfidenceMedium
	default:
		out.ConfidenceLevel = ConfidenceLow
	}
	out.Assumptions = assumptions
}
