package domain

import (
	"math"
	"strconv"
	"strings"
)

// Operational extras: the page-specific widgets that sit outside the insight
// chain. Readiness, gear, migration, packaging spend, returns risk and the
// interactive savings ladder.

var quickTips = map[ProblemKind]string{
	ProblemReturns:   "Set up an automated RMA portal so customers can self-serve returns – this cuts back-and-forth emails while giving you instant visibility on incoming stock.",
	ProblemCost:      "Compare cubic and dead-weight dimensions on every SKU – trimming even 2 cm can shift you into the next satchel size and slash cost.",
	ProblemSpeed:     "Pre-print labels the night before dispatch to shave minutes off daily pick-pack and hit earlier carrier cut-offs.",
	ProblemTracking:  "Deploy simple barcoding (even DYMO labels) so every SKU scan updates stock counts in real time – goodbye spreadsheet drama.",
	ProblemStockouts: "Set reorder alerts at 25% of weekly velocity to trigger purchase orders well before you hit zero.",
	ProblemPackaging: "Right-size cartons with adjustable score lines – you'll protect products and avoid paying to ship fresh air.",
}

const defaultQuickTip = "Audit your pick-pack process once a month to spot easy wins."

// QuickTip returns the actionable tip for the merchant's biggest problem.
func QuickTip(problem ProblemKind) string {
	if tip, ok := quickTips[problem]; ok {
		return tip
	}
	return defaultQuickTip
}

var gearLists = map[string][]string{
	"low": {
		"Dymo 4XL thermal label printer",
		"1000 × 500 mm bubble-wrap roll",
	},
	"mid": {
		"Zebra ZT230 industrial printer",
		"Handheld barcode scanner",
		"Pick-to-light shelf labels",
	},
	"high": {
		"Automated carton sealer",
		"Powered conveyor bench",
		"Warehouse mobile work-station",
	},
}

// GearList returns the DIY equipment list scaled to order volume, or nil for
// strategies where the merchant is not packing orders themselves.
func GearList(strategy FulfillmentStrategy, monthlyOrders int) []string {
	if strategy != StrategyDIY {
		return nil
	}

	switch {
	case monthlyOrders < 300:
		return gearLists["low"]
	case monthlyOrders <= 500:
		return gearLists["mid"]
	default:
		return gearLists["high"]
	}
}

var migrationMilestones = []string{
	"Contract signed & {{orders}} units inbound to warehouse",
	"System integrations & test orders live",
	"Inventory put-away and cycle counts verified",
	"First customer orders shipped via Future",
	"30-day review – optimisation & KPI report",
}

// MigrationTimeline returns the onboarding milestones for Australian 3PL
// strategies with the order volume substituted in, nil otherwise.
func MigrationTimeline(strategy FulfillmentStrategy, monthlyOrders int) []string {
	if strategy != StrategyAus3PL && strategy != StrategyAusMulti {
		return nil
	}

	timeline := make([]string, len(migrationMilestones))
	for i, m := range migrationMilestones {
		timeline[i] = strings.ReplaceAll(m, "{{orders}}", strconv.Itoa(monthlyOrders))
	}
	return timeline
}

// PackagingCost estimates monthly satchel spend in whole dollars for the
// strategies where the merchant still buys their own packaging.
// The second return reports whether the estimate applies.
func PackagingCost(strategy FulfillmentStrategy, size PackageSizeBand, monthlyOrders int) (int, bool) {
	if strategy != StrategyDIY && strategy != StrategyAus3PL {
		return 0, false
	}
	return int(math.Round(size.SatchelPrice() * float64(monthlyOrders))), true
}

var returnsRiskCategories = map[string]struct{}{
	"Clothing & Accessories": {},
	"Tech & Electronics":     {},
}

const returnsRiskAlert = "Products in this category see return rates above 20%. Tighten QC and offer hassle-free exchanges to stay ahead."

// ReturnsRiskAlert warns merchants in high-return product categories.
func ReturnsRiskAlert(category string) string {
	if _, ok := returnsRiskCategories[category]; ok {
		return returnsRiskAlert
	}
	return ""
}

// ReadinessScore estimates how prepared the operation is for a smooth
// migration, as a 0-100 percentage. Penalties stack for catalogue size
// without barcoding, home fulfilment at scale, returns pain on a China
// origin, and oversized parcels.
func ReadinessScore(p NormalizedProfile) int {
	score := 100

	if p.SKUCount > 100 && p.Setup == SetupHomeGarage {
		score -= 15
	}
	if p.SKUCount > 25 {
		score -= 15
	}
	if p.Problem == ProblemReturns && p.FromChina {
		score -= 20
	}
	if p.PackageSize == SizeExtraLarge {
		score -= 10
	}

	return clamp(score, 0, 100)
}

// SavingsPoint is one step of the interactive savings ladder.
type SavingsPoint struct {
	Orders        int `json:"orders"`
	MonthlySaving int `json:"monthly_saving"`
}

// nextOrderCeiling returns the growth target the ladder projects toward.
func nextOrderCeiling(currentOrders int) int {
	switch {
	case currentOrders <= 100:
		return 300
	case currentOrders <= 300:
		return 500
	case currentOrders <= 500:
		return 1000
	case currentOrders <= 1000:
		return 2000
	case currentOrders <= 2000:
		return 2500
	default:
		return currentOrders
	}
}

// SavingsLadder projects monthly savings from the current volume up to the
// next growth ceiling in 250-order steps. DIY pages get no ladder.
func SavingsLadder(strategy FulfillmentStrategy, perOrder float64, currentOrders int) []SavingsPoint {
	if strategy == StrategyDIY {
		return nil
	}

	ceiling := nextOrderCeiling(currentOrders)
	var points []SavingsPoint
	for o := currentOrders; o <= ceiling; o += 250 {
		points = append(points, SavingsPoint{Orders: o, MonthlySaving: int(math.Round(float64(o) * perOrder))})
	}
	if points[len(points)-1].Orders != ceiling {
		points = append(points, SavingsPoint{Orders: ceiling, MonthlySaving: int(math.Round(float64(ceiling) * perOrder))})
	}
	return points
}

var caseStudies = map[FulfillmentStrategy]string{
	StrategyDIY:      `"Packing 400 orders/month, Sophie saved 40% pick-time using our DIY toolkit."`,
	StrategyAus3PL:   `"4WD Detail cut A$2,400/mo at 800 orders by moving to our Melbourne hub."`,
	StrategyAusMulti: `"Health & Balance Vitamins saw 18% more 5-star reviews after adding QLD warehousing."`,
	StrategyChina3PL: `"EcoLuxe slashed intl cost by US$8/parcel after relocating stock to Shenzhen."`,
}

// CaseStudy returns the social-proof snippet for the strategy.
func CaseStudy(strategy FulfillmentStrategy) string {
	return caseStudies[strategy]
}

const customsCheatsheetURL = "https://futurefulfilment.com/global-tax-guide.pdf"

// CheatsheetURL returns the customs guide link for China fulfilment pages.
func CheatsheetURL(strategy FulfillmentStrategy) string {
	if strategy == StrategyChina3PL {
		return customsCheatsheetURL
	}
	return ""
}
