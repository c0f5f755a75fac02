package domain

import (
	"fmt"
	"math"
)

// Warehouse storage rates, AUD per pallet per month (2024 market research).
const (
	warehouseCostAUMedian = 18.82
	warehouseCostVIC      = 16.43
	warehouseCostNSW      = 19.50
	warehouseCostQLD      = 18.17
	warehouseCostWA       = 20.04
	warehouseCostSA       = 19.90
	warehouseCostUS       = 20.17
	warehouseCostChina    = 12.50
)

// One pallet holds roughly a hundred orders of stock.
const ordersPerPallet = 100

// InventoryEstimator sizes the merchant's storage footprint. It produces the
// SKU-complexity alert and the warehouse cost comparison for the strategy.
type InventoryEstimator struct{}

func (InventoryEstimator) Name() string { return "inventory_costs" }

func (InventoryEstimator) Apply(p NormalizedProfile, strategy FulfillmentStrategy, out *InsightSet) {
	pallets := palletsNeeded(p.MonthlyOrders)

	out.InventoryAlertText = fmt.Sprintf("%s Estimated warehouse cost: AU$%.0f/month for %d pallets based on %d orders/month.",
		skuComplexityInsight(p.SKUCount), float64(pallets)*warehouseCostAUMedian, pallets, p.MonthlyOrders)

	out.WarehouseCostText = warehouseComparison(strategy, pallets)
}

func palletsNeeded(monthlyOrders int) int {
	return int(math.Ceil(float64(monthlyOrders) / ordersPerPallet))
}

func skuComplexityInsight(skuCount int) string {
	switch {
	case skuCount <= 25:
		return fmt.Sprintf("🎯 Low SKU complexity (%d SKUs). Simple inventory management with minimal carrying costs.", skuCount)
	case skuCount <= 100:
		return fmt.Sprintf("📊 Moderate SKU complexity (%d SKUs). Good balance of variety and manageability.", skuCount)
	case skuCount <= 300:
		return fmt.Sprintf("📈 High SKU complexity (%d SKUs). Consider SKU rationalization to reduce carrying costs.", skuCount)
	default:
		return fmt.Sprintf("⚠️ Very high SKU complexity (%d+ SKUs). High carrying costs - consider reducing slow-moving SKUs or bundling strategies.", skuCount)
	}
}

func warehouseComparison(strategy FulfillmentStrategy, pallets int) string {
	if strategy == StrategyChina3PL {
		auCost := float64(pallets) * warehouseCostAUMedian
		cnCost := float64(pallets) * warehouseCostChina
		return fmt.Sprintf("🏭 Warehouse Cost Analysis: AU 3PL ~AU$%.0f/month vs China 3PL ~AU$%.0f/month for %d pallets. Monthly savings: AU$%.0f using international fulfillment.",
			auCost, cnCost, pallets, auCost-cnCost)
	}

	return fmt.Sprintf("🏭 Australian 3PL Costs: ~AU$%.0f/month for %d pallets (national median AU$%.2f/pallet/month). Cheapest: VIC (AU$%.0f/pallet), Most expensive: WA (AU$%.0f/pallet).",
		float64(pallets)*warehouseCostAUMedian, pallets, warehouseCostAUMedian, warehouseCostVIC, warehouseCostWA)
}
