package domain

// ResultContent is the narrative block for a strategy's result page,
// personalized with the merchant's first name and projected savings.
type ResultContent struct {
	Firstname   string            `json:"firstname"`
	Savings     SavingsProjection `json:"savings"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Benefits    []string          `json:"benefits"`
	CTATitle    string            `json:"ctaTitle"`
	CTAText     string            `json:"ctaText"`
	CTAURL      string            `json:"ctaUrl"`
	Note        string            `json:"note,omitempty"`
}

const (
	strategyCallURL = "https://futurefulfilment.com/ausnz#section-0XX8Pbq9ZQ"
	diyToolkitURL   = "https://j63rzjzdahixjfu3foqc.app.clientclub.net/communities/groups/ecommerce-insiders-academy/home?invite=67b1bb500ca4a3bf1bba9912"
)

// ContentFor returns the narrative content for the strategy.
func ContentFor(strategy FulfillmentStrategy, firstname string, savings SavingsProjection) ResultContent {
	base := ResultContent{Firstname: firstname, Savings: savings}

	switch strategy {
	case StrategyDIY:
		base.Title = "You're Best Off Shipping Orders Yourself (For Now)"
		base.Description = "At your current volume, in-house fulfillment is the smartest move. You're likely doing under 500 orders/month and don't yet need the cost or complexity of a 3PL.\nBut with a few smart upgrades, you can dramatically reduce time and wasted spend:"
		base.Benefits = []string{
			"Use Starshipit, Shippit, or ShipStation to automate label generation and carrier routing",
			"Get a label printer and satchels from your local supplier",
			"Tighten your packaging to reduce cubic weight and avoid carrier penalties",
			"Start tracking your cost-per-order and fulfillment time",
		}
		base.CTATitle = "🎁 Get Our Free Fulfillment Toolkit"
		base.CTAText = "Learn how to reduce your workload and improve margins with our curated DIY playbook."
		base.CTAURL = diyToolkitURL
		base.Note = "(Just by switching to OMS tools and optimizing packaging)"

	case StrategyAus3PL:
		base.Title = "Based on Your Results, Future is the Best 3PL Fit for You"
		base.Description = "Our AI compared 50+ fulfillment providers and Future Fulfillment is your optimal match. You're moving past 500+ orders/month — which means DIY fulfillment is capping your growth and profits.\nSwitching to Future Fulfillment will give you:"
		base.Benefits = []string{
			"Discounted shipping rates via AusPost & CouriersPlease",
			"Barcode-based inventory, returns management, and live order tracking",
			"Reclaimed time to focus on marketing, growth, and ops",
			"Same costs every month — no more surprises",
		}
		base.CTATitle = "📞 Book Your Free Fulfillment Strategy Call"
		base.CTAText = "We'll show you how to transition smoothly and start saving within days."
		base.CTAURL = strategyCallURL

	case StrategyAusMulti:
		base.Title = "Based on Your Results, Future is the Best 3PL Fit for You"
		base.Description = "Our AI compared 50+ fulfillment providers and Future Fulfillment is your optimal match. With 2,000+ orders/month across multiple states, central fulfillment is no longer optimal.\nFuture Fulfillment's VIC, NSW, and QLD locations give you:"
		base.Benefits = []string{
			"Delivery up to 50% faster, with 30% lower cross-state shipping costs",
			"The ability to serve customers same-day or next-day",
			"Inventory redundancy and smoother replenishment cycles",
			"Better customer reviews and lower refund rates",
		}
		base.CTATitle = "📞 Book Your Free Fulfillment Strategy Call"
		base.CTAText = "We'll map your inventory and show you exactly how much you'll save."
		base.CTAURL = strategyCallURL

	case StrategyChina3PL:
		base.Title = "Based on Your Results, Future is the Best 3PL Fit for You"
		base.Description = "Our AI compared 50+ fulfillment providers and Future Fulfillment is your optimal match. With your global customer base and manufacturing in China, our China 3PL gives you:"
		base.Benefits = []string{
			"Specialized shipping lines to over 75 countries",
			"Apparel, battery, sensitive, and cosmetic product lines",
			"Express delivery options (3-6 days average)",
			"Premium quality control and branded packaging",
			"Compliance with dangerous goods transport",
		}
		base.CTATitle = "📞 Book Your Free Fulfillment Strategy Call"
		base.CTAText = "We'll show you how to optimize your global shipping strategy."
		base.CTAURL = strategyCallURL
	}

	return base
}

// Testimonial is one client quote in the universal footer.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// UniversalSection is the shared footer rendered on every result page.
type UniversalSection struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Testimonials []Testimonial `json:"testimonials"`
}

// BottomSection returns the universal footer content.
func BottomSection() UniversalSection {
	return UniversalSection{
		Title:       "Our Clients Are Shipping 3+ Million Orders Every Year",
		Description: "We work with hundreds of leading Aussie and Kiwi brands to help them scale to new heights.\nOur warehouse teams are an extension of your team, and we pride ourselves on providing best-in-class customer support.",
		Testimonials: []Testimonial{
			{Quote: "Working with Future feels like having our very own warehouse - they deliver exceptional support", Author: "Manny Barbas, Sascha Therese"},
			{Quote: "I was no longer packing orders from morning to night, instead I could really focus on marketing", Author: "Justin Clacher, 4WD Detail"},
			{Quote: "I would recommend Future to anyone that has a growing ecommerce business", Author: "Drew Baird, Health & Balance Vitamins"},
			{Quote: "Future saved us over $2 per order, significantly boosting our profits - It's been a game changer", Author: "Gretta Van Riel, SMT"},
		},
	}
}
