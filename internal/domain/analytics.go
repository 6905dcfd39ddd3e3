package domain

type Suggestion struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DealAnalytics is the post-mortem of a deal that reached its deadline.
type DealAnalytics struct {
	DealID            string       `json:"deal_id"`
	TargetClaims      int          `json:"target_claims"`
	TotalClaims       int          `json:"total_claims"`
	CompletionPercent float64      `json:"completion_percent"`
	Shortfall         int          `json:"shortfall"`
	ConversionRate    float64      `json:"conversion_rate"`
	PeakHour          int          `json:"peak_hour"`
	PeakHourClaims    int          `json:"peak_hour_claims"`
	AvgClaimsPerMin   float64      `json:"avg_claims_per_minute"`
	ReferralPercent   float64      `json:"referral_percent"`
	QuarterClaims     [4]int       `json:"quarter_claims"`
	Suggestions       []Suggestion `json:"suggestions"`
}
