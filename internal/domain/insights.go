package domain

// ConfidenceLevel qualifies how much of a recommendation rests on fallback
// values rather than explicit answers.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// Lane is the shipping corridor used to pick emission factors, duty notes
// and carriers.
type Lane string

const (
	LaneAusDomestic      Lane = "AUS_DOM"
	LaneAusInternational Lane = "AUS_INTL"
	LaneChinaGlobal      Lane = "CN_GLOBAL"
)

// LaneFor selects the shipping lane for a profile and chosen strategy.
// China fulfilment always ships the China-to-global corridor; otherwise any
// international customers put the merchant on the outbound lane.
func LaneFor(p NormalizedProfile, strategy FulfillmentStrategy) Lane {
	if strategy == StrategyChina3PL {
		return LaneChinaGlobal
	}
	if p.CustomerBase.HasInternational() {
		return LaneAusInternational
	}
	return LaneAusDomestic
}

// InsightSet is the bundle of derived analytics for one recommendation.
// It is the first-class output; the rendered document is assembled from the
// same values and adds nothing.
type InsightSet struct {
	ShippingHealthScore int             `json:"shippingHealthScore"`
	DutyText            string          `json:"dutyText"`
	CO2Text             string          `json:"co2Text"`
	MarginAlertText     string          `json:"marginAlertText"`
	InventoryAlertText  string          `json:"inventoryAlertText"`
	CarrierHeadline     string          `json:"carrierHeadline"`
	CarrierTip          string          `json:"carrierTip"`
	WeightEducationText string          `json:"weightEducationText"`
	WarehouseCostText   string          `json:"warehouseCostText"`
	ConfidenceLevel     ConfidenceLevel `json:"confidenceLevel"`
	Assumptions         []string        `json:"assumptions"`
}

// InsightModule is a single side-effect-free analytic over the normalized
// profile and chosen strategy. Modules fill in their slice of the InsightSet
// and know nothing about each other, so insight types can be added or
// removed without touching the classifier or renderer.
type InsightModule interface {
	Name() string
	Apply(p NormalizedProfile, strategy FulfillmentStrategy, out *InsightSet)
}

// DefaultInsightModules returns the full module chain in its fixed order.
func DefaultInsightModules() []InsightModule {
	return []InsightModule{
		HealthScorer{},
		CarbonEstimator{},
		DutyNoteGenerator{},
		MarginAlertGenerator{},
		InventoryEstimator{},
		CarrierSelector{},
		CubicWeightEducator{},
		ConfidenceScorer{},
	}
}
