package application

import "github.com/futurefulfillmentdev/future-shipping/internal/domain"

// GenerateRecommendationCommand is the survey submission payload.
// Categorical answers arrive as the survey UI's literal option strings;
// unrecognized values fall back to documented defaults rather than failing
// validation.
type GenerateRecommendationCommand struct {
	FullName            string `json:"fullName" binding:"required,full_name"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"omitempty,phone_number"`
	WebsiteURL          string `json:"websiteUrl" binding:"omitempty,website"`
	Products            string `json:"products" binding:"omitempty,safe_string"`
	Category            string `json:"category" binding:"omitempty,safe_string"`
	MonthlyOrders       string `json:"monthlyOrders" binding:"required"`
	SKURange            string `json:"skuRange" binding:"required"`
	PackageWeight       string `json:"packageWeight" binding:"required"`
	PackageSize         string `json:"packageSize" binding:"required"`
	CustomerLocation    string `json:"customerLocation" binding:"required"`
	CurrentShipping     string `json:"currentShipping" binding:"required"`
	BiggestProblem      string `json:"biggestProblem" binding:"omitempty,safe_string"`
	DeliveryExpectation string `json:"deliveryExpectation" binding:"omitempty"`
	ShippingCost        string `json:"shippingCost" binding:"omitempty"`
}

// toSurvey maps the command onto the domain survey type.
func (c GenerateRecommendationCommand) toSurvey() domain.SurveyResponse {
	return domain.SurveyResponse{
		FullName:                  c.FullName,
		Email:                     c.Email,
		Phone:                     c.Phone,
		WebsiteURL:                c.WebsiteURL,
		Products:                  c.Products,
		Category:                  c.Category,
		MonthlyOrdersChoice:       c.MonthlyOrders,
		SKURangeChoice:            c.SKURange,
		PackageWeightChoice:       c.PackageWeight,
		PackageSizeChoice:         c.PackageSize,
		CustomerLocationChoice:    c.CustomerLocation,
		CurrentShippingMethod:     c.CurrentShipping,
		BiggestShippingProblem:    c.BiggestProblem,
		DeliveryExpectationChoice: c.DeliveryExpectation,
		ShippingCostChoice:        c.ShippingCost,
	}
}

// toContact maps the command onto the CRM contact shape.
func (c GenerateRecommendationCommand) toContact() Contact {
	return Contact{
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		Website:             c.WebsiteURL,
		Products:            c.Products,
		Category:            c.Category,
		MonthlyOrders:       c.MonthlyOrders,
		SKURange:            c.SKURange,
		PackageWeight:       c.PackageWeight,
		PackageSize:         c.PackageSize,
		CurrentShipping:     c.CurrentShipping,
		BiggestProblem:      c.BiggestProblem,
		ShippingCost:        c.ShippingCost,
		CustomerLocation:    c.CustomerLocation,
		DeliveryExpectation: c.DeliveryExpectation,
	}
}

// SavingsDTO is the projected savings block of the response.
type SavingsDTO struct {
	PerOrder     float64 `json:"savingsPerOrder"`
	Orders       int     `json:"monthlyOrders"`
	TotalMonthly float64 `json:"totalMonthlySavings"`
}

// InsightsDTO is the structured analytics block of the response.
type InsightsDTO struct {
	ShippingHealthScore int      `json:"shippingHealthScore"`
	DutyText            string   `json:"dutyText"`
	CO2Text             string   `json:"co2Text"`
	MarginAlertText     string   `json:"marginAlertText"`
	InventoryAlertText  string   `json:"inventoryAlertText"`
	CarrierHeadline     string   `json:"carrierHeadline"`
	CarrierTip          string   `json:"carrierTip"`
	WeightEducationText string   `json:"weightEducationText"`
	WarehouseCostText   string   `json:"warehouseCostText"`
	ConfidenceLevel     string   `json:"confidenceLevel"`
	Assumptions         []string `json:"assumptions"`
}

// RecommendationDTO is the full recommendation response.
type RecommendationDTO struct {
	PageID            string                  `json:"pageId"`
	Strategy          string                  `json:"strategy"`
	Savings           SavingsDTO              `json:"savings"`
	Insights          InsightsDTO             `json:"insights"`
	Content           domain.ResultContent    `json:"content"`
	ReadinessScorePct int                     `json:"readinessScorePct"`
	SpeedGainDays     int                     `json:"speedGainDays"`
	QuickTip          string                  `json:"quickTip"`
	GearList          []string                `json:"gearList,omitempty"`
	MigrationTimeline []string                `json:"migrationTimeline,omitempty"`
	PackagingCost     *int                    `json:"packagingCostEstimate,omitempty"`
	ReturnsRiskAlert  string                  `json:"returnsRiskAlert,omitempty"`
	SavingsLadder     []domain.SavingsPoint   `json:"savingsLadder,omitempty"`
	CaseStudy         string                  `json:"caseStudy"`
	CheatsheetURL     string                  `json:"cheatsheetUrl,omitempty"`
	BookingURL        string                  `json:"bookingUrl"`
	Footer            domain.UniversalSection `json:"universalSection"`
	RenderedPage      string                  `json:"renderedPage"`
}

// ToRecommendationDTO converts a domain recommendation to the API shape.
func ToRecommendationDTO(rec domain.Recommendation) *RecommendationDTO {
	dto := &RecommendationDTO{
		PageID:   rec.PageID,
		Strategy: string(rec.Strategy),
		Savings: SavingsDTO{
			PerOrder:     rec.Savings.PerOrder,
			Orders:       rec.Savings.MonthlyOrders,
			TotalMonthly: rec.Savings.TotalMonthly,
		},
		Insights: InsightsDTO{
			ShippingHealthScore: rec.Insights.ShippingHealthScore,
			DutyText:            rec.Insights.DutyText,
			CO2Text:             rec.Insights.CO2Text,
			MarginAlertText:     rec.Insights.MarginAlertText,
			InventoryAlertText:  rec.Insights.InventoryAlertText,
			CarrierHeadline:     rec.Insights.CarrierHeadline,
			CarrierTip:          rec.Insights.CarrierTip,
			WeightEducationText: rec.Insights.WeightEducationText,
			WarehouseCostText:   rec.Insights.WarehouseCostText,
			ConfidenceLevel:     string(rec.Insights.ConfidenceLevel),
			Assumptions:         rec.Insights.Assumptions,
		},
		Content:           rec.Content,
		ReadinessScorePct: rec.ReadinessScorePct,
		SpeedGainDays:     rec.SpeedGainDays,
		QuickTip:          rec.QuickTip,
		GearList:          rec.GearList,
		MigrationTimeline: rec.MigrationTimeline,
		ReturnsRiskAlert:  rec.ReturnsRiskAlert,
		SavingsLadder:     rec.SavingsLadder,
		CaseStudy:         rec.CaseStudy,
		CheatsheetURL:     rec.CheatsheetURL,
		BookingURL:        rec.BookingURL,
		Footer:            rec.Footer,
		RenderedPage:      rec.RenderedPage,
	}

	if rec.HasPackagingCost {
		cost := rec.PackagingCost
		dto.PackagingCost = &cost
	}

	return dto
}
