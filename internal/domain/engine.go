package domain

// Recommendation is the complete result for one survey response: the
// strategy, the savings projection, the structured insight set, the page
// widgets and the rendered text document.
type Recommendation struct {
	PageID            string              `json:"pageId"`
	Strategy          FulfillmentStrategy `json:"strategy"`
	Savings           SavingsProjection   `json:"savings"`
	Insights          InsightSet          `json:"insights"`
	Content           ResultContent       `json:"content"`
	ReadinessScorePct int                 `json:"readinessScorePct"`
	SpeedGainDays     int                 `json:"speedGainDays"`
	QuickTip          string              `json:"quickTip"`
	GearList          []string            `json:"gearList,omitempty"`
	MigrationTimeline []string            `json:"migrationTimeline,omitempty"`
	PackagingCost     int                 `json:"packagingCostEstimate,omitempty"`
	HasPackagingCost  bool                `json:"-"`
	ReturnsRiskAlert  string              `json:"returnsRiskAlert,omitempty"`
	SavingsLadder     []SavingsPoint      `json:"savingsLadder,omitempty"`
	CaseStudy         string              `json:"caseStudy"`
	CheatsheetURL     string              `json:"cheatsheetUrl,omitempty"`
	BookingURL        string              `json:"bookingUrl"`
	Footer            UniversalSection    `json:"universalSection"`
	RenderedPage      string              `json:"renderedPage"`
}

// Engine runs the full recommendation pipeline: normalize, classify,
// project savings, apply the insight chain, assemble content, render.
// It is a pure computation with no external dependencies; the zero module
// chain is replaced by DefaultInsightModules via NewEngine.
type Engine struct {
	modules []InsightModule
}

// NewEngine builds an engine with the default insight module chain.
func NewEngine() *Engine {
	return &Engine{modules: DefaultInsightModules()}
}

// NewEngineWithModules builds an engine with a custom insight chain.
func NewEngineWithModules(modules ...InsightModule) *Engine {
	return &Engine{modules: modules}
}

// Recommend computes the recommendation for a survey response. It is total:
// every input produces a result, unanswered questions fall back to defaults
// and lower the confidence level instead of failing.
func (e *Engine) Recommend(survey SurveyResponse) Recommendation {
	profile := Normalize(survey)
	strategy := Classify(profile)
	savings := EstimateSavings(strategy, profile)

	var insights InsightSet
	for _, m := range e.modules {
		m.Apply(profile, strategy, &insights)
	}

	content := ContentFor(strategy, survey.FirstName(), savings)
	packagingCost, hasPackaging := PackagingCost(strategy, profile.PackageSize, profile.MonthlyOrders)

	rec := Recommendation{
		PageID:            strategy.PageID(),
		Strategy:          strategy,
		Savings:           savings,
		Insights:          insights,
		Content:           content,
		ReadinessScorePct: ReadinessScore(profile),
		SpeedGainDays:     strategy.SpeedGainDays(),
		QuickTip:          QuickTip(profile.Problem),
		GearList:          GearList(strategy, profile.MonthlyOrders),
		MigrationTimeline: MigrationTimeline(strategy, profile.MonthlyOrders),
		PackagingCost:     packagingCost,
		HasPackagingCost:  hasPackaging,
		ReturnsRiskAlert:  ReturnsRiskAlert(profile.Category),
		SavingsLadder:     SavingsLadder(strategy, savings.PerOrder, profile.MonthlyOrders),
		CaseStudy:         CaseStudy(strategy),
		CheatsheetURL:     CheatsheetURL(strategy),
		BookingURL:        content.CTAURL + strategy.BookingSuffix(),
		Footer:            BottomSection(),
	}
	rec.RenderedPage = RenderPage(rec)

	return rec
}
