package domain

import "strings"

// Parse tables for the categorical survey answers. Lookups are exact-string
// matches against the known phrasings; each question's survey UI and the
// advisor tables have drifted apart over time, so both spellings of a choice
// map to the same band. Anything else takes the documented default.

var orderVolumeTable = map[string]OrderVolumeBand{
	"Under 100":     VolumeUnder100,
	"100 – 300":     Volume100To300,
	"100 - 300":     Volume100To300,
	"300 – 500":     Volume300To500,
	"300 - 500":     Volume300To500,
	"500 – 1 000":   Volume500To1000,
	"500 - 1000":    Volume500To1000,
	"1 000 – 2 000": Volume1000To2000,
	"1000 - 2000":   Volume1000To2000,
	"2 000+":        Volume2000Plus,
	"2000+":         Volume2000Plus,
}

var skuRangeTable = map[string]SKUBand{
	"1-25":    SKU1To25,
	"26-100":  SKU26To100,
	"101-300": SKU101To300,
	"300+":    SKU300Plus,
}

var weightTable = map[string]WeightBand{
	"Under 0.5 kg":  WeightUnder500g,
	"0.5 kg – 1 kg": Weight500gTo1kg,
	"0.5 kg - 1 kg": Weight500gTo1kg,
	"1 kg – 2 kg":   Weight1To2kg,
	"1 kg - 2 kg":   Weight1To2kg,
	"2 kg – 5 kg":   Weight2To5kg,
	"2 kg - 5 kg":   Weight2To5kg,
	"Over 5 kg":     WeightOver5kg,
}

var costTable = map[string]CostBand{
	"<$5":                CostUnder5,
	"Under $5 per order": CostUnder5,
	"$5-$10":             Cost5To10,
	"$5-$10 per order":   Cost5To10,
	"$10-$15":            Cost10To15,
	"$10-$15 per order":  Cost10To15,
	"$15-$20":            Cost15To20,
	"$15-$20 per order":  Cost15To20,
	">$20":               CostOver20,
	"Over $20 per order": CostOver20,
}

var problemTable = map[string]ProblemKind{
	"Costs too much":          ProblemCost,
	"Costs too high":          ProblemCost,
	"Too expensive":           ProblemCost,
	"Takes too long":          ProblemSpeed,
	"Takes too much time":     ProblemSpeed,
	"Delivery too slow":       ProblemSpeed,
	"Slow delivery":           ProblemSpeed,
	"Hard to manage returns":  ProblemReturns,
	"Hard returns":            ProblemReturns,
	"Packaging issues":        ProblemPackaging,
	"Packaging waste":         ProblemPackaging,
	"Tracking problems":       ProblemTracking,
	"Hard to track inventory": ProblemTracking,
	"Stockouts":               ProblemStockouts,
}

var expectationTable = map[string]DeliveryExpectation{
	"Same / next day": ExpectSameNextDay,
	"Same/next day":   ExpectSameNextDay,
	"2-3 days":        Expect2To3Days,
	"3-5 days":        Expect3To5Days,
}

var customerBaseTable = map[string]CustomerBase{
	"Australia only":                BaseAUOnly,
	"Mostly AU, some international": BaseMostlyAU,
	"Half AU, half international":   BaseHalfAndHalf,
	"Mostly international":          BaseMostlyInternational,
	"International only":            BaseInternationalOnly,
}

// Normalize maps a raw survey response onto the closed bands the engine
// works with. It is total: unknown answers degrade to defaults, never error.
func Normalize(survey SurveyResponse) NormalizedProfile {
	volumeBand := lookupOrDefault(orderVolumeTable, survey.MonthlyOrdersChoice, VolumeUnder100)
	skuBand := lookupOrDefault(skuRangeTable, survey.SKURangeChoice, SKU26To100)
	weightBand := lookupOrDefault(weightTable, survey.PackageWeightChoice, Weight1To2kg)
	costBand := lookupOrDefault(costTable, survey.ShippingCostChoice, CostUnknown)
	problem := lookupOrDefault(problemTable, survey.BiggestShippingProblem, ProblemOther)
	expectation := lookupOrDefault(expectationTable, survey.DeliveryExpectationChoice, ExpectUnknown)
	base := normalizeCustomerBase(survey.CustomerLocationChoice)
	setup := normalizeShippingSetup(survey.CurrentShippingMethod)

	return NormalizedProfile{
		MonthlyOrders: volumeBand.Orders(),
		SKUCount:      skuBand.Count(),
		AvgWeightKg:   weightBand.Kg(),

		FromChina:    setup == SetupChina3PL,
		GlobalFocus:  base.HasInternational() && base != BaseMostlyAU,
		FastDelivery: expectation == ExpectSameNextDay,

		VolumeBand:   volumeBand,
		SKURange:     skuBand,
		PackageSize:  normalizePackageSize(survey.PackageSizeChoice),
		CostBand:     costBand,
		Problem:      problem,
		Expectation:  expectation,
		Setup:        setup,
		CustomerBase: base,

		HasWebsite: strings.TrimSpace(survey.WebsiteURL) != "",
		Category:   strings.TrimSpace(survey.Category),
	}
}

func lookupOrDefault[T any](table map[string]T, key string, fallback T) T {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// normalizePackageSize is a substring match because the size answers carry a
// free-form parenthetical ("Medium (shoebox)"). Unrecognized sizes default to
// large, the conservative cubic-weight assumption.
func normalizePackageSize(choice string) PackageSizeBand {
	lower := strings.ToLower(choice)
	switch {
	case strings.Contains(lower, "small"):
		return SizeSmall
	case strings.Contains(lower, "medium"):
		return SizeMedium
	case strings.Contains(lower, "very large"):
		return SizeExtraLarge
	default:
		return SizeLarge
	}
}

// normalizeShippingSetup is a substring match; "3PL in China" must win over
// the generic 3PL case.
func normalizeShippingSetup(method string) ShippingSetup {
	lower := strings.ToLower(method)
	switch {
	case strings.Contains(lower, "china"):
		return SetupChina3PL
	case strings.Contains(lower, "home"), strings.Contains(lower, "garage"):
		return SetupHomeGarage
	case strings.Contains(lower, "3pl"), strings.Contains(lower, "warehouse"):
		return SetupWarehouse3PL
	case strings.Contains(lower, "dropship"):
		return SetupDropshipping
	default:
		return SetupOther
	}
}

// normalizeCustomerBase resolves the location answer by exact match first,
// then falls back to case-insensitive substring tests so older phrasings
// still land in the right band. "Mostly AU, some international" is excluded
// from the global bands.
func normalizeCustomerBase(location string) CustomerBase {
	if base, ok := customerBaseTable[location]; ok {
		return base
	}

	lower := strings.ToLower(location)
	switch {
	case strings.Contains(lower, "mostly au"):
		return BaseMostlyAU
	case strings.Contains(lower, "only") && strings.Contains(lower, "international"):
		return BaseInternationalOnly
	case strings.Contains(lower, "mostly international"):
		return BaseMostlyInternational
	case strings.Contains(lower, "international"):
		return BaseHalfAndHalf
	default:
		return BaseAUOnly
	}
}
