package domain

// SavingsProjection is the projected benefit of moving to the recommended
// strategy. TotalMonthly is always the exact product of the other two; it is
// never rounded independently.
type SavingsProjection struct {
	PerOrder      float64 `json:"savingsPerOrder"`
	MonthlyOrders int     `json:"monthlyOrders"`
	TotalMonthly  float64 `json:"totalMonthlySavings"`
}

// Per-order savings rates by strategy. China rates are weight-tiered because
// air freight pricing is dominated by parcel weight.
const (
	diySavingsPerOrder        = 2.0
	aus3PLSavingsPerOrder     = 3.0
	aus3PLHighVolumeSavings   = 4.0
	ausMultiSavingsPerOrder   = 4.0
	chinaLightSavingsPerOrder = 8.0
	chinaMidSavingsPerOrder   = 5.0
	chinaHeavySavingsPerOrder = 4.0
)

// EstimateSavings computes the per-order saving rate for the strategy and
// multiplies it out over the profile's monthly order count.
func EstimateSavings(strategy FulfillmentStrategy, p NormalizedProfile) SavingsProjection {
	var perOrder float64

	switch strategy {
	case StrategyDIY:
		perOrder = diySavingsPerOrder
	case StrategyAus3PL:
		perOrder = aus3PLSavingsPerOrder
		if p.MonthlyOrders >= multiStateFloor {
			perOrder = aus3PLHighVolumeSavings
		}
	case StrategyAusMulti:
		perOrder = ausMultiSavingsPerOrder
	case StrategyChina3PL:
		switch {
		case p.AvgWeightKg < 1:
			perOrder = chinaLightSavingsPerOrder
		case p.AvgWeightKg <= 2:
			perOrder = chinaMidSavingsPerOrder
		default:
			perOrder = chinaHeavySavingsPerOrder
		}
	}

	return SavingsProjection{
		PerOrder:      perOrder,
		MonthlyOrders: p.MonthlyOrders,
		TotalMonthly:  perOrder * float64(p.MonthlyOrders),
	}
}
