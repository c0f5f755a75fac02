package domain

// FulfillmentStrategy is the engine's four-way classification of how a
// merchant should fulfil orders.
type FulfillmentStrategy string

const (
	StrategyDIY      FulfillmentStrategy = "DIY"
	StrategyAus3PL   FulfillmentStrategy = "AUS_3PL"
	StrategyAusMulti FulfillmentStrategy = "AUS_MULTI"
	StrategyChina3PL FulfillmentStrategy = "CHINA_3PL"
)

// IsValid checks if the strategy is one of the four known values
func (s FulfillmentStrategy) IsValid() bool {
	switch s {
	case StrategyDIY, StrategyAus3PL, StrategyAusMulti, StrategyChina3PL:
		return true
	}
	return false
}

// PageID returns the result page token the presentation layer routes on.
func (s FulfillmentStrategy) PageID() string {
	switch s {
	case StrategyDIY:
		return "DIY_PAGE"
	case StrategyAusMulti:
		return "AUS_MULTI_PAGE"
	case StrategyChina3PL:
		return "CN_PAGE"
	default:
		return "AUS1_PAGE"
	}
}

// SpeedGainDays returns the expected delivery-speed improvement in days.
func (s FulfillmentStrategy) SpeedGainDays() int {
	switch s {
	case StrategyAus3PL:
		return 1
	case StrategyAusMulti:
		return 2
	case StrategyChina3PL:
		return 3
	default:
		return 0
	}
}

// BookingSuffix returns the topic query suffix for the strategy's booking URL.
func (s FulfillmentStrategy) BookingSuffix() string {
	switch s {
	case StrategyDIY:
		return "?topic=diy"
	case StrategyAusMulti:
		return "?topic=ausmulti"
	case StrategyChina3PL:
		return "?topic=cn"
	default:
		return "?topic=aus1"
	}
}
