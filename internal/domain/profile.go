package domain

// OrderVolumeBand is the closed enumeration of monthly order volume answers.
type OrderVolumeBand int

const (
	VolumeUnder100 OrderVolumeBand = iota
	Volume100To300
	Volume300To500
	Volume500To1000
	Volume1000To2000
	Volume2000Plus
)

// Orders returns the representative monthly order count for the band.
// Mid-range bands resolve to their midpoint; the open-ended bands resolve to
// their edge estimates.
func (b OrderVolumeBand) Orders() int {
	switch b {
	case Volume100To300:
		return 200
	case Volume300To500:
		return 400
	case Volume500To1000:
		return 800
	case Volume1000To2000:
		return 1500
	case Volume2000Plus:
		return 2500
	default:
		return 100
	}
}

// IsBroad reports whether the band is one of the open-ended extremes, where
// the representative count is a rough estimate rather than a midpoint.
func (b OrderVolumeBand) IsBroad() bool {
	return b == VolumeUnder100 || b == Volume2000Plus
}

// SKUBand is the closed enumeration of catalogue size answers.
type SKUBand int

const (
	SKU1To25 SKUBand = iota
	SKU26To100
	SKU101To300
	SKU300Plus
)

// Count returns the representative SKU count for the band.
func (b SKUBand) Count() int {
	switch b {
	case SKU1To25:
		return 25
	case SKU101To300:
		return 300
	case SKU300Plus:
		return 600
	default:
		return 100
	}
}

// WeightBand is the closed enumeration of average package weight answers.
type WeightBand int

const (
	WeightUnder500g WeightBand = iota
	Weight500gTo1kg
	Weight1To2kg
	Weight2To5kg
	WeightOver5kg
)

// Kg returns the representative weight in kilograms for the band.
func (b WeightBand) Kg() float64 {
	switch b {
	case WeightUnder500g:
		return 0.25
	case Weight500gTo1kg:
		return 0.75
	case Weight2To5kg:
		return 3.5
	case WeightOver5kg:
		return 6.0
	default:
		return 1.5
	}
}

// PackageSizeBand is the closed enumeration of package size answers.
type PackageSizeBand int

const (
	SizeSmall PackageSizeBand = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

// String returns the short size code used in satchel pricing tables.
func (b PackageSizeBand) String() string {
	switch b {
	case SizeSmall:
		return "S"
	case SizeMedium:
		return "M"
	case SizeExtraLarge:
		return "XL"
	default:
		return "L"
	}
}

// Dimensions returns example package dimensions in centimetres for the band.
func (b PackageSizeBand) Dimensions() (length, width, height float64) {
	switch b {
	case SizeSmall:
		return 25, 15, 10
	case SizeMedium:
		return 30, 20, 15
	case SizeExtraLarge:
		return 50, 40, 30
	default:
		return 40, 30, 20
	}
}

// SatchelPrice returns the per-unit satchel cost in dollars for the band.
func (b PackageSizeBand) SatchelPrice() float64 {
	switch b {
	case SizeSmall:
		return 0.6
	case SizeMedium:
		return 0.9
	case SizeExtraLarge:
		return 1.7
	default:
		return 1.3
	}
}

// CostBand is the closed enumeration of per-order shipping cost answers,
// ordered from cheapest to most expensive. CostUnknown sorts first so the
// margin module can fall back to generic advice.
type CostBand int

const (
	CostUnknown CostBand = iota
	CostUnder5
	Cost5To10
	Cost10To15
	Cost15To20
	CostOver20
)

// ProblemKind is the closed enumeration of the biggest-shipping-problem
// answers, collapsed across the phrasings the survey has shipped with.
type ProblemKind int

const (
	ProblemOther ProblemKind = iota
	ProblemCost
	ProblemSpeed
	ProblemReturns
	ProblemPackaging
	ProblemTracking
	ProblemStockouts
)

// DeliveryExpectation is the closed enumeration of delivery expectation answers.
type DeliveryExpectation int

const (
	ExpectUnknown DeliveryExpectation = iota
	ExpectSameNextDay
	Expect2To3Days
	Expect3To5Days
)

// ShippingSetup is the closed enumeration of current shipping setups.
type ShippingSetup int

const (
	SetupOther ShippingSetup = iota
	SetupHomeGarage
	SetupWarehouse3PL
	SetupChina3PL
	SetupDropshipping
)

// CustomerBase is the closed enumeration of customer location answers,
// ordered from fully domestic to fully international.
type CustomerBase int

const (
	BaseAUOnly CustomerBase = iota
	BaseMostlyAU
	BaseHalfAndHalf
	BaseMostlyInternational
	BaseInternationalOnly
)

// HasInternational reports whether any customers ship internationally.
func (b CustomerBase) HasInternational() bool {
	return b != BaseAUOnly
}

// MostlyInternational reports whether the majority of customers are overseas.
func (b CustomerBase) MostlyInternational() bool {
	return b == BaseMostlyInternational || b == BaseInternationalOnly
}

// NormalizedProfile is the engine's internal view of one survey response.
// Every field has a defined value even when the source answer was
// unrecognized; the normalizer guarantees the documented defaults.
type NormalizedProfile struct {
	MonthlyOrders int
	SKUCount      int
	AvgWeightKg   float64

	FromChina    bool
	GlobalFocus  bool
	FastDelivery bool

	VolumeBand   OrderVolumeBand
	SKURange     SKUBand
	PackageSize  PackageSizeBand
	CostBand     CostBand
	Problem      ProblemKind
	Expectation  DeliveryExpectation
	Setup        ShippingSetup
	CustomerBase CustomerBase

	HasWebsite bool
	Category   string
}
