package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diySurvey() SurveyResponse {
	return SurveyResponse{
		FullName:               "Sophie Tan",
		MonthlyOrdersChoice:    "100 – 300",
		SKURangeChoice:         "1-25",
		PackageWeightChoice:    "0.5 kg – 1 kg",
		PackageSizeChoice:      "Small (<3 cm thick)",
		ShippingCostChoice:     "$5-$10 per order",
		BiggestShippingProblem: "Costs too high",
		CustomerLocationChoice: "Australia only",
		CurrentShippingMethod:  "Home / garage",
		WebsiteURL:             "https://sophie.example.com",
		Category:               "Beauty & Cosmetics",
	}
}

func aus3plSurvey() SurveyResponse {
	s := diySurvey()
	s.MonthlyOrdersChoice = "500 – 1 000"
	s.SKURangeChoice = "26-100"
	s.CurrentShippingMethod = "3PL in Australia"
	return s
}

func ausMultiSurvey() SurveyResponse {
	s := aus3plSurvey()
	s.MonthlyOrdersChoice = "2 000+"
	return s
}

func chinaSurvey() SurveyResponse {
	s := aus3plSurvey()
	s.CurrentShippingMethod = "3PL in China"
	s.CustomerLocationChoice = "Mostly international"
	return s
}

func TestRecommendDIY(t *testing.T) {
	rec := NewEngine().Recommend(diySurvey())

	assert.Equal(t, StrategyDIY, rec.Strategy)
	assert.Equal(t, "DIY_PAGE", rec.PageID)
	assert.Equal(t, 0, rec.SpeedGainDays)
	assert.Equal(t, 400.0, rec.Savings.TotalMonthly) // 200 orders * $2

	// DIY pages get gear but no migration plan, ladder or cheatsheet.
	assert.NotEmpty(t, rec.GearList)
	assert.Nil(t, rec.MigrationTimeline)
	assert.Nil(t, rec.SavingsLadder)
	assert.Empty(t, rec.CheatsheetURL)
	assert.True(t, rec.HasPackagingCost)

	assert.Equal(t, "Sophie", rec.Content.Firstname)
	assert.Equal(t, diyToolkitURL+"?topic=diy", rec.BookingURL)
}

func TestRecommendAus3PL(t *testing.T) {
	rec := NewEngine().Recommend(aus3plSurvey())

	assert.Equal(t, StrategyAus3PL, rec.Strategy)
	assert.Equal(t, "AUS1_PAGE", rec.PageID)
	assert.Equal(t, 1, rec.SpeedGainDays)
	assert.Equal(t, 2400.0, rec.Savings.TotalMonthly)

	assert.Nil(t, rec.GearList)
	require.Len(t, rec.MigrationTimeline, 5)
	assert.NotEmpty(t, rec.SavingsLadder)
	assert.True(t, rec.HasPackagingCost)
	assert.Equal(t, strategyCallURL+"?topic=aus1", rec.BookingURL)
}

func TestRecommendAusMulti(t *testing.T) {
	rec := NewEngine().Recommend(ausMultiSurvey())

	assert.Equal(t, StrategyAusMulti, rec.Strategy)
	assert.Equal(t, "AUS_MULTI_PAGE", rec.PageID)
	assert.Equal(t, 2, rec.SpeedGainDays)

	assert.Nil(t, rec.GearList)
	assert.NotEmpty(t, rec.MigrationTimeline)
	assert.False(t, rec.HasPackagingCost)
	assert.Equal(t, strategyCallURL+"?topic=ausmulti", rec.BookingURL)
}

func TestRecommendChina3PL(t *testing.T) {
	rec := NewEngine().Recommend(chinaSurvey())

	assert.Equal(t, StrategyChina3PL, rec.Strategy)
	assert.Equal(t, "CN_PAGE", rec.PageID)
	assert.Equal(t, 3, rec.SpeedGainDays)

	assert.Nil(t, rec.GearList)
	assert.Nil(t, rec.MigrationTimeline)
	assert.False(t, rec.HasPackagingCost)
	assert.Equal(t, customsCheatsheetURL, rec.CheatsheetURL)
	assert.Equal(t, strategyCallURL+"?topic=cn", rec.BookingURL)
}

func TestRecommendFillsEveryInsight(t *testing.T) {
	rec := NewEngine().Recommend(aus3plSurvey())

	assert.NotZero(t, rec.Insights.ShippingHealthScore)
	assert.NotEmpty(t, rec.Insights.MarginAlertText)
	assert.NotEmpty(t, rec.Insights.DutyText)
	assert.NotEmpty(t, rec.Insights.CO2Text)
	assert.NotEmpty(t, rec.Insights.InventoryAlertText)
	assert.NotEmpty(t, rec.Insights.WarehouseCostText)
	assert.NotEmpty(t, rec.Insights.CarrierHeadline)
	assert.NotEmpty(t, rec.Insights.CarrierTip)
	assert.NotEmpty(t, rec.Insights.WeightEducationText)
	assert.NotEmpty(t, rec.Insights.ConfidenceLevel)
}

func TestRecommendIsDeterministic(t *testing.T) {
	engine := NewEngine()
	a := engine.Recommend(aus3plSurvey())
	b := engine.Recommend(aus3plSurvey())
	assert.Equal(t, a, b)
}

func TestRecommendDefaultsOnEmptySurvey(t *testing.T) {
	rec := NewEngine().Recommend(SurveyResponse{})

	assert.Equal(t, StrategyDIY, rec.Strategy)
	assert.Equal(t, "Friend", rec.Content.Firstname)
	assert.Equal(t, ConfidenceLow, rec.Insights.ConfidenceLevel)
	assert.NotEmpty(t, rec.RenderedPage)
}

func TestRenderedPageSections(t *testing.T) {
	rec := NewEngine().Recommend(aus3plSurvey())

	page := rec.RenderedPage
	assert.Contains(t, page, rec.Content.Title)
	assert.Contains(t, page, "ready for smooth fulfilment")
	assert.Contains(t, page, "Migration Timeline")
	assert.Contains(t, page, "Quick Tip: ")
	assert.Contains(t, page, "Shipping Health: ")
	assert.Contains(t, page, "Best Carrier: "+rec.Insights.CarrierHeadline)
	assert.Contains(t, page, rec.BookingURL)
	assert.Contains(t, page, "Our Clients Are Shipping 3+ Million Orders Every Year")
	assert.NotContains(t, page, "Download Customs & Duties Cheat-Sheet")
}

func TestRenderedPageChinaIncludesCheatsheet(t *testing.T) {
	rec := NewEngine().Recommend(chinaSurvey())

	assert.Contains(t, rec.RenderedPage, "Download Customs & Duties Cheat-Sheet: "+customsCheatsheetURL)
	assert.NotContains(t, rec.RenderedPage, "Migration Timeline")
}
