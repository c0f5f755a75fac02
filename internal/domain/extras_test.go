package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickTip(t *testing.T) {
	assert.Contains(t, QuickTip(ProblemReturns), "RMA portal")
	assert.Contains(t, QuickTip(ProblemCost), "satchel size")
	assert.Equal(t, defaultQuickTip, QuickTip(ProblemOther))
}

func TestGearListOnlyForDIY(t *testing.T) {
	assert.Nil(t, GearList(StrategyAus3PL, 400))
	assert.Nil(t, GearList(StrategyAusMulti, 2500))
	assert.Nil(t, GearList(StrategyChina3PL, 1500))

	assert.Equal(t, gearLists["low"], GearList(StrategyDIY, 100))
	assert.Equal(t, gearLists["mid"], GearList(StrategyDIY, 400))
	assert.Equal(t, gearLists["high"], GearList(StrategyDIY, 800))
}

func TestMigrationTimelineSubstitutesVolume(t *testing.T) {
	assert.Nil(t, MigrationTimeline(StrategyDIY, 100))
	assert.Nil(t, MigrationTimeline(StrategyChina3PL, 1500))

	timeline := MigrationTimeline(StrategyAus3PL, 800)
	require.Len(t, timeline, 5)
	assert.Equal(t, "Contract signed & 800 units inbound to warehouse", timeline[0])
	for _, m := range timeline {
		assert.NotContains(t, m, "{{orders}}")
	}
}

func TestPackagingCostGating(t *testing.T) {
	cost, ok := PackagingCost(StrategyDIY, SizeMedium, 400)
	assert.True(t, ok)
	assert.Equal(t, 360, cost) // 0.90 * 400

	cost, ok = PackagingCost(StrategyAus3PL, SizeSmall, 800)
	assert.True(t, ok)
	assert.Equal(t, 480, cost)

	_, ok = PackagingCost(StrategyAusMulti, SizeMedium, 2500)
	assert.False(t, ok)

	_, ok = PackagingCost(StrategyChina3PL, SizeMedium, 1500)
	assert.False(t, ok)
}

func TestReturnsRiskAlert(t *testing.T) {
	assert.NotEmpty(t, ReturnsRiskAlert("Clothing & Accessories"))
	assert.NotEmpty(t, ReturnsRiskAlert("Tech & Electronics"))
	assert.Empty(t, ReturnsRiskAlert("Home & Garden"))
	assert.Empty(t, ReturnsRiskAlert(""))
}

func TestReadinessScorePenalties(t *testing.T) {
	assert.Equal(t, 100, ReadinessScore(NormalizedProfile{SKUCount: 25}))

	// Big catalogue packed at home: both SKU penalties stack.
	p := NormalizedProfile{SKUCount: 300, Setup: SetupHomeGarage}
	assert.Equal(t, 70, ReadinessScore(p))

	p.Problem = ProblemReturns
	p.FromChina = true
	p.PackageSize = SizeExtraLarge
	assert.Equal(t, 40, ReadinessScore(p))
}

func TestSavingsLadder(t *testing.T) {
	assert.Nil(t, SavingsLadder(StrategyDIY, 2, 400))

	ladder := SavingsLadder(StrategyAus3PL, 3, 800)
	require.Len(t, ladder, 6)
	assert.Equal(t, SavingsPoint{Orders: 800, MonthlySaving: 2400}, ladder[0])
	assert.Equal(t, SavingsPoint{Orders: 1800, MonthlySaving: 5400}, ladder[4])
	assert.Equal(t, SavingsPoint{Orders: 2000, MonthlySaving: 6000}, ladder[5])
}

func TestSavingsLadderStopsAtCeiling(t *testing.T) {
	// Already at the top band: a single point, no projection past it.
	ladder := SavingsLadder(StrategyAusMulti, 4, 2500)
	require.Len(t, ladder, 1)
	assert.Equal(t, SavingsPoint{Orders: 2500, MonthlySaving: 10000}, ladder[0])
}

func TestCaseStudyPerStrategy(t *testing.T) {
	for _, s := range []FulfillmentStrategy{StrategyDIY, StrategyAus3PL, StrategyAusMulti, StrategyChina3PL} {
		assert.NotEmpty(t, CaseStudy(s))
	}
}

func TestCheatsheetURLOnlyForChina(t *testing.T) {
	assert.Equal(t, customsCheatsheetURL, CheatsheetURL(StrategyChina3PL))
	assert.Empty(t, CheatsheetURL(StrategyAus3PL))
	assert.Empty(t, CheatsheetURL(StrategyDIY))
}
