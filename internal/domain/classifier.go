package domain

// Volume and complexity thresholds for the strategy rules.
const (
	diyOrderCeiling     = 500
	multiStateFloor     = 2000
	heavyParcelKg       = 5.0
	skuSplitCeiling     = 500
	multiStateSweetSpot = 1500
)

// Classify maps a normalized profile to exactly one fulfillment strategy.
// The rules are evaluated in order and the first match wins. Origin-country
// and SKU-complexity overrides sit ahead of the plain volume bands because
// they are feasibility constraints: heavy parcels are not economical to
// air-ship from China, and a large catalogue cannot be split across state
// warehouses economically.
func Classify(p NormalizedProfile) FulfillmentStrategy {
	// Below the 3PL threshold nothing else matters.
	if p.MonthlyOrders < diyOrderCeiling {
		return StrategyDIY
	}

	if p.FromChina {
		if p.AvgWeightKg > heavyParcelKg {
			return StrategyAus3PL
		}
		return StrategyChina3PL
	}

	if p.GlobalFocus {
		return StrategyAus3PL
	}

	if p.FastDelivery {
		if p.SKUCount > skuSplitCeiling {
			return StrategyAus3PL
		}
		return StrategyAusMulti
	}

	if p.MonthlyOrders < multiStateFloor {
		return StrategyAus3PL
	}

	if p.SKUCount > skuSplitCeiling {
		return StrategyAus3PL
	}
	return StrategyAusMulti
}
