package domain

// Shipping health score bounds.
const (
	healthBaseline = 85
	healthFloor    = 35
	healthCeiling  = 95
)

// HealthScorer rates how healthy the merchant's shipping operation is on a
// 35–95 scale. It starts from a realistic baseline and applies additive
// adjustments for cost, expectations, complexity and strategy alignment.
type HealthScorer struct{}

func (HealthScorer) Name() string { return "shipping_health" }

func (HealthScorer) Apply(p NormalizedProfile, strategy FulfillmentStrategy, out *InsightSet) {
	score := healthBaseline

	score += costAdjustment(p.CostBand)
	score += expectationAdjustment(p.Expectation, strategy)
	score += skuComplexityAdjustment(p.SKUCount)
	score += setupAdjustment(p.Setup, strategy)
	score += packagingAdjustment(p.PackageSize, p.AvgWeightKg)
	score += problemAdjustment(p.Problem)
	score += customerBaseAdjustment(p)
	score += volumeAlignmentAdjustment(p.MonthlyOrders, strategy)
	score += returnsComplexityAdjustment(p, strategy)

	out.ShippingHealthScore = clamp(score, healthFloor, healthCeiling)
}

// costAdjustment: the per-order spend is the single biggest lever.
func costAdjustment(band CostBand) int {
	switch band {
	case CostOver20:
		return -30
	case Cost15To20:
		return -20
	case Cost10To15:
		return -10
	case Cost5To10:
		return 5
	case CostUnder5:
		return 10
	default:
		return 0
	}
}

// expectationAdjustment penalizes expectations the strategy cannot meet.
// Same/next-day is only realistic from multi-state warehouses.
func expectationAdjustment(expectation DeliveryExpectation, strategy FulfillmentStrategy) int {
	switch expectation {
	case ExpectSameNextDay:
		switch strategy {
		case StrategyAusMulti:
			return 5
		case StrategyAus3PL:
			return -10
		default:
			return -25
		}
	case Expect2To3Days:
		return 5
	default:
		return 0
	}
}

func skuComplexityAdjustment(skuCount int) int {
	switch {
	case skuCount >= 500:
		return -20
	case skuCount >= 300:
		return -15
	case skuCount >= 100:
		return -8
	case skuCount <= 25:
		return 5
	default:
		return 0
	}
}

// setupAdjustment: garage operations don't scale; an existing 3PL or
// warehouse is already efficient. A China origin only counts as aligned when
// the recommendation keeps fulfilment there.
func setupAdjustment(setup ShippingSetup, strategy FulfillmentStrategy) int {
	switch setup {
	case SetupHomeGarage:
		return -15
	case SetupChina3PL:
		if strategy == StrategyChina3PL {
			return 5
		}
		return -10
	case SetupWarehouse3PL:
		return 10
	default:
		return 0
	}
}

// packagingAdjustment penalizes size/weight mismatches in both directions
// and rewards well-matched packaging.
func packagingAdjustment(size PackageSizeBand, weightKg float64) int {
	switch {
	case size == SizeExtraLarge && weightKg < 1.5:
		return -20
	case size == SizeLarge && weightKg < 0.75:
		return -15
	case size == SizeSmall && weightKg > 3:
		return -12
	case size == SizeSmall && weightKg <= 1:
		return 8
	case size == SizeMedium && weightKg >= 1 && weightKg <= 3:
		return 8
	case size == SizeLarge && weightKg >= 2 && weightKg <= 5:
		return 8
	case size == SizeMedium && (weightKg < 0.5 || weightKg > 4):
		return -5
	default:
		return 0
	}
}

func problemAdjustment(problem ProblemKind) int {
	switch problem {
	case ProblemCost:
		return -10
	case ProblemSpeed:
		return -8
	case ProblemReturns:
		return -12
	case ProblemPackaging:
		return -6
	case ProblemTracking:
		return -5
	default:
		return 0
	}
}

// customerBaseAdjustment scales with how international the customer base is,
// compounded by heavy parcels or unrealistic speed expectations.
func customerBaseAdjustment(p NormalizedProfile) int {
	switch {
	case p.CustomerBase == BaseAUOnly:
		return 5
	case p.CustomerBase == BaseMostlyAU:
		adj := -5
		if p.AvgWeightKg > 2 {
			adj -= 5
		}
		return adj
	case p.CustomerBase.MostlyInternational():
		adj := -15
		if p.FastDelivery {
			adj -= 8
		}
		return adj
	default:
		return 0
	}
}

// volumeAlignmentAdjustment rewards strategies matched to throughput: DIY
// breaks down above the 3PL threshold, multi-state is overkill below its
// sweet spot, and single-warehouse 3PL shines in the 500–2000 range.
func volumeAlignmentAdjustment(monthlyOrders int, strategy FulfillmentStrategy) int {
	switch {
	case strategy == StrategyDIY && monthlyOrders > diyOrderCeiling:
		return -15
	case strategy == StrategyAusMulti && monthlyOrders < multiStateSweetSpot:
		return -10
	case (strategy == StrategyAus3PL || strategy == StrategyChina3PL) &&
		monthlyOrders >= diyOrderCeiling && monthlyOrders <= multiStateFloor:
		return 8
	default:
		return 0
	}
}

// returnsComplexityAdjustment compounds the returns pain point with the
// situations that make returns hardest to run.
func returnsComplexityAdjustment(p NormalizedProfile, strategy FulfillmentStrategy) int {
	if p.Problem != ProblemReturns {
		return 0
	}

	adj := 0
	if p.CustomerBase.HasInternational() {
		adj -= 8
	}
	if strategy == StrategyDIY {
		adj -= 5
	}
	return adj
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
