package domain

import (
	"fmt"
	"strings"
)

// RenderPage assembles the plain-text result document from a recommendation.
// Section order is fixed; optional sections are skipped when empty. Every
// value in the document comes from the recommendation itself, the renderer
// adds only labels and layout.
func RenderPage(rec Recommendation) string {
	var b strings.Builder

	// Hero
	b.WriteString(rec.Content.Title + "\n\n")
	b.WriteString(rec.Content.Description + "\n\n")
	fmt.Fprintf(&b, "You're %d%% ready for smooth fulfilment.\n\n", rec.ReadinessScorePct)

	// Benefits
	for _, benefit := range rec.Content.Benefits {
		b.WriteString("- " + benefit + "\n")
	}
	b.WriteString("\n")

	if rec.SpeedGainDays > 0 {
		fmt.Fprintf(&b, "Speed Gain: −%d days\n\n", rec.SpeedGainDays)
	}

	if rec.Content.Note != "" {
		b.WriteString(rec.Content.Note + "\n\n")
	}

	if len(rec.GearList) > 0 {
		b.WriteString("Recommended Gear\n")
		for _, item := range rec.GearList {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}

	if len(rec.MigrationTimeline) > 0 {
		b.WriteString("Migration Timeline\n")
		for i, milestone := range rec.MigrationTimeline {
			fmt.Fprintf(&b, "%d. %s\n", i+1, milestone)
		}
		b.WriteString("\n")
	}

	if rec.HasPackagingCost {
		fmt.Fprintf(&b, "Your current packaging spend is about $%d per month.\n\n", rec.PackagingCost)
	}

	if rec.ReturnsRiskAlert != "" {
		b.WriteString("Heads up: " + rec.ReturnsRiskAlert + "\n\n")
	}

	b.WriteString("Quick Tip: " + rec.QuickTip + "\n\n")

	// Insight sections
	fmt.Fprintf(&b, "Shipping Health: %d%%\n", rec.Insights.ShippingHealthScore)
	if rec.Insights.MarginAlertText != "" {
		b.WriteString(rec.Insights.MarginAlertText + "\n")
	}
	b.WriteString("\n")

	if rec.Insights.DutyText != "" {
		b.WriteString(rec.Insights.DutyText + "\n\n")
	}

	b.WriteString(rec.Insights.CO2Text + "\n\n")

	if rec.Insights.InventoryAlertText != "" {
		b.WriteString(rec.Insights.InventoryAlertText + "\n\n")
	}

	b.WriteString("Best Carrier: " + rec.Insights.CarrierHeadline + "\n")
	b.WriteString(rec.Insights.CarrierTip + "\n\n")

	b.WriteString(rec.Insights.WeightEducationText + "\n\n")
	b.WriteString(rec.Insights.WarehouseCostText + "\n\n")

	if rec.CaseStudy != "" {
		b.WriteString(rec.CaseStudy + "\n\n")
	}

	// CTA
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", rec.Content.CTATitle, rec.BookingURL, rec.Content.CTAText)

	if rec.CheatsheetURL != "" {
		b.WriteString("Download Customs & Duties Cheat-Sheet: " + rec.CheatsheetURL + "\n\n")
	}

	// Confidence banner
	if rec.Insights.ConfidenceLevel != "" {
		b.WriteString("Confidence: " + string(rec.Insights.ConfidenceLevel))
		if len(rec.Insights.Assumptions) > 0 {
			b.WriteString("\nAssumptions: " + strings.Join(rec.Insights.Assumptions, "; "))
		}
		b.WriteString("\n\n")
	}

	// Universal footer
	b.WriteString(rec.Footer.Title + "\n")
	b.WriteString(rec.Footer.Description + "\n")
	for _, t := range rec.Footer.Testimonials {
		fmt.Fprintf(&b, "- \"%s\" — %s\n", t.Quote, t.Author)
	}

	return b.String()
}
