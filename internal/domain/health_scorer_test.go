package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func applyHealth(p NormalizedProfile, strategy FulfillmentStrategy) int {
	var out InsightSet
	HealthScorer{}.Apply(p, strategy, &out)
	return out.ShippingHealthScore
}

func TestHealthScoreCeiling(t *testing.T) {
	p := NormalizedProfile{
		MonthlyOrders: 800,
		SKUCount:      25,
		AvgWeightKg:   1.5,
		CostBand:      CostUnder5,
		Expectation:   Expect2To3Days,
		Setup:         SetupWarehouse3PL,
		PackageSize:   SizeMedium,
		CustomerBase:  BaseAUOnly,
	}

	assert.Equal(t, 95, applyHealth(p, StrategyAus3PL))
}

func TestHealthScoreFloor(t *testing.T) {
	p := NormalizedProfile{
		MonthlyOrders: 2500,
		SKUCount:      600,
		AvgWeightKg:   0.25,
		CostBand:      CostOver20,
		Expectation:   ExpectSameNextDay,
		FastDelivery:  true,
		Setup:         SetupHomeGarage,
		PackageSize:   SizeExtraLarge,
		Problem:       ProblemReturns,
		CustomerBase:  BaseInternationalOnly,
	}

	assert.Equal(t, 35, applyHealth(p, StrategyDIY))
}

func TestHealthScoreMidRange(t *testing.T) {
	p := NormalizedProfile{
		MonthlyOrders: 800,
		SKUCount:      100,
		AvgWeightKg:   1.5,
		CostBand:      Cost10To15,
		Expectation:   Expect2To3Days,
		Setup:         SetupWarehouse3PL,
		PackageSize:   SizeMedium,
		Problem:       ProblemCost,
		CustomerBase:  BaseAUOnly,
	}

	// 85 -10 +5 -8 +10 +8 -10 +5 +8 = 93
	assert.Equal(t, 93, applyHealth(p, StrategyAus3PL))
}

func TestHealthScoreChinaSetupAlignment(t *testing.T) {
	base := NormalizedProfile{
		MonthlyOrders: 1500,
		SKUCount:      100,
		AvgWeightKg:   0.75,
		Setup:         SetupChina3PL,
		PackageSize:   SizeSmall,
		CustomerBase:  BaseHalfAndHalf,
	}

	aligned := applyHealth(base, StrategyChina3PL)
	misaligned := applyHealth(base, StrategyAusMulti)

	// Staying in China is worth +5, leaving costs -10; multi-state also
	// drops the volume-alignment bonus.
	assert.Greater(t, aligned, misaligned)
}

func TestHealthScoreSameDayExpectationByStrategy(t *testing.T) {
	p := NormalizedProfile{
		MonthlyOrders: 2500,
		SKUCount:      100,
		AvgWeightKg:   1.5,
		Expectation:   ExpectSameNextDay,
		CustomerBase:  BaseAUOnly,
	}

	multi := applyHealth(p, StrategyAusMulti)
	single := applyHealth(p, StrategyAus3PL)
	diy := applyHealth(p, StrategyDIY)

	assert.Greater(t, multi, single)
	assert.Greater(t, single, diy)
}
