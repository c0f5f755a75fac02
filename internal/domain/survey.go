package domain

// SurveyResponse is the raw quiz submission as collected by the survey UI.
// All fields are free strings; the normalizer maps the categorical ones onto
// closed bands and never mutates the response itself.
type SurveyResponse struct {
	FullName                  string
	Email                     string
	Phone                     string
	WebsiteURL                string
	Products                  string
	PackageWeightChoice       string
	PackageSizeChoice         string
	MonthlyOrdersChoice       string
	CustomerLocationChoice    string
	CurrentShippingMethod     string
	BiggestShippingProblem    string
	SKURangeChoice            string
	DeliveryExpectationChoice string
	ShippingCostChoice        string
	Category                  string
}

// FirstName returns the leading word of the full name, or a friendly
// placeholder when the name is empty.
func (s SurveyResponse) FirstName() string {
	name := s.FullName
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			name = name[:i]
			break
		}
	}
	if name == "" {
		return "Friend"
	}
	return name
}
