package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLowVolumeAlwaysDIY(t *testing.T) {
	// Below the 3PL threshold nothing else can override.
	p := NormalizedProfile{MonthlyOrders: 400, FromChina: true, GlobalFocus: true, FastDelivery: true}
	assert.Equal(t, StrategyDIY, Classify(p))

	p = NormalizedProfile{MonthlyOrders: 100}
	assert.Equal(t, StrategyDIY, Classify(p))
}

func TestClassifyChinaOrigin(t *testing.T) {
	p := NormalizedProfile{MonthlyOrders: 800, FromChina: true, AvgWeightKg: 0.75}
	assert.Equal(t, StrategyChina3PL, Classify(p))

	// Heavy parcels are not economical to air-ship from China.
	p.AvgWeightKg = 6.0
	assert.Equal(t, StrategyAus3PL, Classify(p))
}

func TestClassifyGlobalFocus(t *testing.T) {
	p := NormalizedProfile{MonthlyOrders: 800, GlobalFocus: true, FastDelivery: true}
	assert.Equal(t, StrategyAus3PL, Classify(p))
}

func TestClassifyFastDelivery(t *testing.T) {
	p := NormalizedProfile{MonthlyOrders: 800, FastDelivery: true, SKUCount: 100}
	assert.Equal(t, StrategyAusMulti, Classify(p))

	// A large catalogue cannot be split across state warehouses.
	p.SKUCount = 600
	assert.Equal(t, StrategyAus3PL, Classify(p))
}

func TestClassifyVolumeBands(t *testing.T) {
	p := NormalizedProfile{MonthlyOrders: 800, SKUCount: 100}
	assert.Equal(t, StrategyAus3PL, Classify(p))

	p.MonthlyOrders = 1500
	assert.Equal(t, StrategyAus3PL, Classify(p))

	p.MonthlyOrders = 2500
	assert.Equal(t, StrategyAusMulti, Classify(p))

	p.SKUCount = 600
	assert.Equal(t, StrategyAus3PL, Classify(p))
}

func TestClassifyFromSurveyAnswers(t *testing.T) {
	tests := []struct {
		name     string
		survey   SurveyResponse
		expected FulfillmentStrategy
	}{
		{
			name: "mid volume domestic",
			survey: SurveyResponse{
				MonthlyOrdersChoice:    "500 – 1 000",
				CustomerLocationChoice: "Australia only",
			},
			expected: StrategyAus3PL,
		},
		{
			name: "china origin light parcels",
			survey: SurveyResponse{
				MonthlyOrdersChoice:   "1 000 – 2 000",
				CurrentShippingMethod: "3PL in China",
				PackageWeightChoice:   "Under 0.5 kg",
			},
			expected: StrategyChina3PL,
		},
		{
			name: "china origin heavy parcels",
			survey: SurveyResponse{
				MonthlyOrdersChoice:   "500 – 1 000",
				CurrentShippingMethod: "3PL in China",
				PackageWeightChoice:   "Over 5 kg",
			},
			expected: StrategyAus3PL,
		},
		{
			name: "high volume big catalogue",
			survey: SurveyResponse{
				MonthlyOrdersChoice: "2 000+",
				SKURangeChoice:      "300+",
			},
			expected: StrategyAus3PL,
		},
		{
			name: "high volume small catalogue",
			survey: SurveyResponse{
				MonthlyOrdersChoice: "2 000+",
				SKURangeChoice:      "1-25",
			},
			expected: StrategyAusMulti,
		},
		{
			name: "mostly AU is not global focus",
			survey: SurveyResponse{
				MonthlyOrdersChoice:       "500 – 1 000",
				CustomerLocationChoice:    "Mostly AU, some international",
				DeliveryExpectationChoice: "Same / next day",
			},
			expected: StrategyAusMulti,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(Normalize(tt.survey)))
		})
	}
}
