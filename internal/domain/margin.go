package domain

import (
	"fmt"
	"strconv"
)

// Cost assumptions behind the margin alert arithmetic.
const (
	criticalSavingsPerOrder  = 8.0  // achievable saving when paying over $20
	band15To20MidpointSpend  = 17.5 // midpoint of the $15-$20 band
	optimizedSpendPerOrder   = 12.0 // realistic optimized per-order cost
	highVolumeNegotiationMin = 1000 // orders/month where multi-carrier pays off
	skuInflationThreshold    = 300  // SKU count where complexity inflates cost
)

// MarginAlertGenerator turns the reported cost band into a concrete
// profitability message, escalating in severity with per-order spend.
type MarginAlertGenerator struct{}

func (MarginAlertGenerator) Name() string { return "margin_alert" }

func (MarginAlertGenerator) Apply(p NormalizedProfile, _ FulfillmentStrategy, out *InsightSet) {
	switch p.CostBand {
	case CostOver20:
		potential := float64(p.MonthlyOrders) * criticalSavingsPerOrder
		out.MarginAlertText = fmt.Sprintf(
			"🚨 Critical Alert: Shipping costs over $20/order severely impact margins. At %d orders/month, you could save $%s/month with optimized fulfillment. Immediate action needed.",
			p.MonthlyOrders, formatThousands(int(potential)))

	case Cost15To20:
		current := float64(p.MonthlyOrders) * band15To20MidpointSpend
		optimized := float64(p.MonthlyOrders) * optimizedSpendPerOrder
		out.MarginAlertText = fmt.Sprintf(
			"⚠️ Margin Alert: $17.50 average shipping likely represents 15-20%% of AOV. Current monthly spend: $%s. With optimization: $%s (save $%s/month).",
			formatThousands(int(current)), formatThousands(int(optimized)), formatThousands(int(current-optimized)))

	case Cost10To15:
		if p.SKUCount > skuInflationThreshold {
			out.MarginAlertText = "📊 Moderate shipping costs, but high SKU complexity may be inflating costs. Consider SKU rationalization and bulk shipping strategies."
		} else {
			out.MarginAlertText = "📊 Moderate shipping costs. You're in the acceptable range, but there's room for 10-15% improvement through carrier negotiation."
		}

	case Cost5To10:
		if p.MonthlyOrders > highVolumeNegotiationMin {
			out.MarginAlertText = "✅ Good shipping efficiency! At your volume, consider negotiating even better rates or exploring multi-carrier strategies for 5-10% additional savings."
		} else {
			out.MarginAlertText = "✅ Solid shipping costs. Focus on maintaining this efficiency as you scale up volume."
		}

	case CostUnder5:
		out.MarginAlertText = "🎯 Excellent shipping efficiency! You're in the top 10% for cost optimization. Monitor for any service quality trade-offs as you maintain these rates."

	default:
		out.MarginAlertText = "📊 Review your shipping cost structure - accurate cost tracking is essential for margin optimization."
	}
}

// formatThousands renders an integer with comma separators ("2400" -> "2,400").
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	if n < 0 {
		return "-" + string(out)
	}
	return string(out)
}
