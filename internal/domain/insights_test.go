package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneFor(t *testing.T) {
	assert.Equal(t, LaneChinaGlobal, LaneFor(NormalizedProfile{CustomerBase: BaseAUOnly}, StrategyChina3PL))
	assert.Equal(t, LaneAusInternational, LaneFor(NormalizedProfile{CustomerBase: BaseHalfAndHalf}, StrategyAus3PL))
	assert.Equal(t, LaneAusDomestic, LaneFor(NormalizedProfile{CustomerBase: BaseAUOnly}, StrategyAus3PL))
}

func TestCarbonEstimatorDomestic(t *testing.T) {
	var out InsightSet
	p := NormalizedProfile{AvgWeightKg: 1.5, CustomerBase: BaseAUOnly}
	CarbonEstimator{}.Apply(p, StrategyAus3PL, &out)

	assert.Contains(t, out.CO2Text, "via road transport")
	assert.Contains(t, out.CO2Text, "kg CO₂e per parcel")
}

func TestCarbonEstimatorChinaLane(t *testing.T) {
	var out InsightSet
	p := NormalizedProfile{AvgWeightKg: 0.75}
	CarbonEstimator{}.Apply(p, StrategyChina3PL, &out)

	// 0.75kg * 1.316 * 1500km / 1000 = 1.4805 kg; sea freight cuts ~99%
	assert.Contains(t, out.CO2Text, "≈ 1.5 kg CO₂e per parcel via air freight")
	assert.Contains(t, out.CO2Text, "99%")
}

func TestDutyNoteByLaneAndWeight(t *testing.T) {
	tests := []struct {
		name     string
		profile  NormalizedProfile
		strategy FulfillmentStrategy
		contains string
	}{
		{"domestic", NormalizedProfile{CustomerBase: BaseAUOnly}, StrategyAus3PL, "No import duties"},
		{"intl light", NormalizedProfile{AvgWeightKg: 1.5, CustomerBase: BaseHalfAndHalf}, StrategyAus3PL, "De minimis AU$1,000"},
		{"intl heavy", NormalizedProfile{AvgWeightKg: 3.5, CustomerBase: BaseHalfAndHalf}, StrategyAus3PL, "formal customs clearance"},
		{"china light", NormalizedProfile{AvgWeightKg: 0.25}, StrategyChina3PL, "IOSS"},
		{"china heavy", NormalizedProfile{AvgWeightKg: 6.0}, StrategyChina3PL, "formal clearance in EU/UK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out InsightSet
			DutyNoteGenerator{}.Apply(tt.profile, tt.strategy, &out)
			assert.Contains(t, out.DutyText, tt.contains)
		})
	}
}

func TestChooseCarrierByLaneAndWeight(t *testing.T) {
	tests := []struct {
		name     string
		profile  NormalizedProfile
		strategy FulfillmentStrategy
		headline string
	}{
		{"domestic light", NormalizedProfile{AvgWeightKg: 1.5, CustomerBase: BaseAUOnly}, StrategyAus3PL, "Australia Post Cubic eParcel"},
		{"domestic mid", NormalizedProfile{AvgWeightKg: 3.5, CustomerBase: BaseAUOnly}, StrategyAus3PL, "StarTrack Express"},
		{"domestic heavy", NormalizedProfile{AvgWeightKg: 6.0, CustomerBase: BaseAUOnly}, StrategyAus3PL, "TNT Express"},
		{"intl light", NormalizedProfile{AvgWeightKg: 1.5, CustomerBase: BaseHalfAndHalf}, StrategyAus3PL, "DHL Express Worldwide"},
		{"intl heavy", NormalizedProfile{AvgWeightKg: 6.0, CustomerBase: BaseHalfAndHalf}, StrategyAus3PL, "FedEx International Priority"},
		{"china light", NormalizedProfile{AvgWeightKg: 0.75}, StrategyChina3PL, "SF Express International"},
		{"china mid", NormalizedProfile{AvgWeightKg: 1.5}, StrategyChina3PL, "China Post ePacket"},
		{"china heavy", NormalizedProfile{AvgWeightKg: 6.0}, StrategyChina3PL, "DHL eCommerce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := ChooseCarrier(tt.profile, tt.strategy)
			assert.Equal(t, tt.headline, carrier.Headline)
		})
	}
}

func TestCarrierSelectorFillsInsights(t *testing.T) {
	var out InsightSet
	CarrierSelector{}.Apply(NormalizedProfile{AvgWeightKg: 1.5, CustomerBase: BaseAUOnly}, StrategyAus3PL, &out)

	assert.Equal(t, "Australia Post Cubic eParcel", out.CarrierHeadline)
	assert.NotEmpty(t, out.CarrierTip)
}

func TestCubicWeightEducation(t *testing.T) {
	var out InsightSet

	// Medium 30x20x15 = 9000 cm³ / 4000 = 2.25kg cubic vs 1.5kg actual
	CubicWeightEducator{}.Apply(NormalizedProfile{AvgWeightKg: 1.5, PackageSize: SizeMedium}, StrategyDIY, &out)
	assert.Contains(t, out.WeightEducationText, "30×20×15cm")
	assert.Contains(t, out.WeightEducationText, "L×W×H÷4000")
	assert.Contains(t, out.WeightEducationText, "Optimize packaging to save costs")

	// Heavy parcel in a medium box: actual weight wins
	out = InsightSet{}
	CubicWeightEducator{}.Apply(NormalizedProfile{AvgWeightKg: 3.5, PackageSize: SizeMedium}, StrategyDIY, &out)
	assert.Contains(t, out.WeightEducationText, "good packaging efficiency")
}

func TestConfidenceScorer(t *testing.T) {
	full := NormalizedProfile{HasWebsite: true, Category: "Tech & Electronics", VolumeBand: Volume500To1000}

	var out InsightSet
	ConfidenceScorer{}.Apply(full, StrategyAus3PL, &out)
	assert.Equal(t, ConfidenceHigh, out.ConfidenceLevel)
	assert.Empty(t, out.Assumptions)

	noWebsite := full
	noWebsite.HasWebsite = false
	out = InsightSet{}
	ConfidenceScorer{}.Apply(noWebsite, StrategyAus3PL, &out)
	assert.Equal(t, ConfidenceMedium, out.ConfidenceLevel)
	require.Len(t, out.Assumptions, 1)
	assert.Contains(t, out.Assumptions[0], "Website URL missing")

	sparse := NormalizedProfile{VolumeBand: Volume2000Plus}
	out = InsightSet{}
	ConfidenceScorer{}.Apply(sparse, StrategyAusMulti, &out)
	assert.Equal(t, ConfidenceLow, out.ConfidenceLevel)
	assert.Len(t, out.Assumptions, 3)
}

func TestMarginAlertByCostBand(t *testing.T) {
	var out InsightSet

	MarginAlertGenerator{}.Apply(NormalizedProfile{MonthlyOrders: 1500, CostBand: CostOver20}, StrategyAusMulti, &out)
	assert.Contains(t, out.MarginAlertText, "Critical Alert")
	assert.Contains(t, out.MarginAlertText, "$12,000/month")

	out = InsightSet{}
	MarginAlertGenerator{}.Apply(NormalizedProfile{MonthlyOrders: 800, CostBand: Cost15To20}, StrategyAus3PL, &out)
	assert.Contains(t, out.MarginAlertText, "Current monthly spend: $14,000")
	assert.Contains(t, out.MarginAlertText, "save $4,400/month")

	out = InsightSet{}
	MarginAlertGenerator{}.Apply(NormalizedProfile{MonthlyOrders: 800, SKUCount: 600, CostBand: Cost10To15}, StrategyAus3PL, &out)
	assert.Contains(t, out.MarginAlertText, "SKU rationalization")

	out = InsightSet{}
	MarginAlertGenerator{}.Apply(NormalizedProfile{MonthlyOrders: 1500, CostBand: Cost5To10}, StrategyAusMulti, &out)
	assert.Contains(t, out.MarginAlertText, "multi-carrier strategies")

	out = InsightSet{}
	MarginAlertGenerator{}.Apply(NormalizedProfile{MonthlyOrders: 100, CostBand: CostUnder5}, StrategyDIY, &out)
	assert.Contains(t, out.MarginAlertText, "top 10%")

	out = InsightSet{}
	MarginAlertGenerator{}.Apply(NormalizedProfile{MonthlyOrders: 100, CostBand: CostUnknown}, StrategyDIY, &out)
	assert.Contains(t, out.MarginAlertText, "accurate cost tracking")
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in  int
		out string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12000, "12,000"},
		{1234567, "1,234,567"},
		{-4400, "-4,400"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, formatThousands(tt.in), fmt.Sprintf("formatThousands(%d)", tt.in))
	}
}

func TestInventoryEstimator(t *testing.T) {
	var out InsightSet
	InventoryEstimator{}.Apply(NormalizedProfile{MonthlyOrders: 800, SKUCount: 600}, StrategyAus3PL, &out)

	// 8 pallets at the AU national median
	assert.Contains(t, out.InventoryAlertText, "Very high SKU complexity (600+ SKUs)")
	assert.Contains(t, out.InventoryAlertText, "8 pallets")
	assert.Contains(t, out.InventoryAlertText, "AU$151/month")

	assert.Contains(t, out.WarehouseCostText, "Australian 3PL Costs")
	assert.Contains(t, out.WarehouseCostText, "VIC (AU$16/pallet)")
}

func TestInventoryEstimatorChinaComparison(t *testing.T) {
	var out InsightSet
	InventoryEstimator{}.Apply(NormalizedProfile{MonthlyOrders: 1500, SKUCount: 100}, StrategyChina3PL, &out)

	// 15 pallets: AU 282.30 vs CN 187.50, savings 94.80
	assert.Contains(t, out.WarehouseCostText, "AU 3PL ~AU$282/month vs China 3PL ~AU$188/month")
	assert.Contains(t, out.WarehouseCostText, "Monthly savings: AU$95")
}
