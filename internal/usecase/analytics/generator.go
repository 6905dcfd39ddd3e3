package analytics

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

const maxSuggestions = 2

// Generator computes the post-mortem report of an expired deal. It is pure
// apart from logging a rule that fails to evaluate.
type Generator struct {
	rules []compiledRule
	loc   *time.Location
}

// NewGenerator compiles rules against the metric variables. Peak hour is
// bucketed in loc, nil meaning UTC.
func NewGenerator(loc *time.Location, rules []Rule) (*Generator, error) {
	if loc == nil {
		loc = time.UTC
	}
	env, err := newRuleEnv()
	if err != nil {
		return nil, err
	}
	compiled, err := compileRules(env, rules)
	if err != nil {
		return nil, err
	}
	return &Generator{rules: compiled, loc: loc}, nil
}

func (g *Generator) Generate(deal *domain.Deal, claims []*domain.Claim) *domain.DealAnalytics {
	a := &domain.DealAnalytics{
		DealID:       deal.ID,
		TargetClaims: deal.TargetClaims,
		TotalClaims:  deal.CurrentClaims,
		Shortfall:    deal.Shortfall(),
		PeakHour:     -1,
	}
	if deal.TargetClaims > 0 {
		a.CompletionPercent = float64(deal.CurrentClaims) / float64(deal.TargetClaims) * 100
	}
	if deal.NotifiedCustomersCount > 0 {
		a.ConversionRate = float64(deal.CurrentClaims) / float64(deal.NotifiedCustomersCount) * 100
	}

	a.PeakHour, a.PeakHourClaims = peakHour(claims, g.loc)
	a.AvgClaimsPerMin = claimSpeed(claims)
	a.ReferralPercent = referralShare(claims)
	a.QuarterClaims = quarters(deal, claims)
	a.Suggestions = g.suggest(deal, a)
	return a
}

func (g *Generator) suggest(deal *domain.Deal, a *domain.DealAnalytics) []domain.Suggestion {
	vars := map[string]any{
		"completion": a.CompletionPercent,
		"target":     float64(deal.TargetClaims),
		"time_limit": float64(deal.TimeLimitMinutes),
		// conversion is meaningless when nobody was notified
		"notified":   float64(deal.NotifiedCustomersCount),
		"conversion": a.ConversionRate,
		"discount":   deal.DiscountPercent,
		"referral":   a.ReferralPercent,
		"shortfall":  float64(a.Shortfall),
		"claims":     float64(a.TotalClaims),
		"avg_speed":  a.AvgClaimsPerMin,
		"q1":         float64(a.QuarterClaims[0]),
		"q2":         float64(a.QuarterClaims[1]),
		"q3":         float64(a.QuarterClaims[2]),
		"q4":         float64(a.QuarterClaims[3]),
	}
	peak := a.PeakHour
	if peak < 0 {
		peak = deal.StartsAt.In(g.loc).Hour()
	}
	placeholders := map[string]string{
		"completion":       formatPercent(a.CompletionPercent),
		"conversion":       formatPercent(a.ConversionRate),
		"referral":         formatPercent(a.ReferralPercent),
		"discount":         formatPercent(deal.DiscountPercent),
		"suggested_target": strconv.Itoa(max(1, int(math.Round(float64(deal.TargetClaims)*0.6)))),
		"double_window":    strconv.Itoa(deal.TimeLimitMinutes * 2),
		"peak_hour":        strconv.Itoa(peak),
	}

	out := make([]domain.Suggestion, 0, maxSuggestions)
	for _, r := range g.rules {
		if len(out) == maxSuggestions {
			break
		}
		matched, err := r.matches(vars)
		if err != nil {
			slog.Warn("analytics rule failed", "rule", r.Code, "deal_id", deal.ID, "error", err)
			continue
		}
		if matched {
			out = append(out, domain.Suggestion{Code: r.Code, Message: render(r.Message, placeholders)})
		}
	}
	for _, r := range fallbackRules {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, domain.Suggestion{Code: r.Code, Message: render(r.Message, placeholders)})
	}
	return out
}

// peakHour returns the clock hour with most claims, the earliest hour winning
// a tie, or -1 when there are no claims.
func peakHour(claims []*domain.Claim, loc *time.Location) (int, int) {
	if len(claims) == 0 {
		return -1, 0
	}
	var hours [24]int
	for _, c := range claims {
		hours[c.ClaimedAt.In(loc).Hour()]++
	}
	best := 0
	for h := 1; h < 24; h++ {
		if hours[h] > hours[best] {
			best = h
		}
	}
	return best, hours[best]
}

// claimSpeed is claims per minute between the first and last claim. The span
// is floored at one minute so a burst does not report an absurd rate.
func claimSpeed(claims []*domain.Claim) float64 {
	if len(claims) == 0 {
		return 0
	}
	first, last := claims[0].ClaimedAt, claims[0].ClaimedAt
	for _, c := range claims[1:] {
		if c.ClaimedAt.Before(first) {
			first = c.ClaimedAt
		}
		if c.ClaimedAt.After(last) {
			last = c.ClaimedAt
		}
	}
	minutes := math.Max(last.Sub(first).Minutes(), 1)
	return float64(len(claims)) / minutes
}

func referralShare(claims []*domain.Claim) float64 {
	if len(claims) == 0 {
		return 0
	}
	referred := 0
	for _, c := range claims {
		if c.ReferredBy != nil {
			referred++
		}
	}
	return float64(referred) / float64(len(claims)) * 100
}

// quarters splits the deal window into four equal parts and counts claims in
// each. Claims outside the window land in the nearest quarter.
func quarters(deal *domain.Deal, claims []*domain.Claim) [4]int {
	var q [4]int
	window := deal.ExpiresAt.Sub(deal.StartsAt)
	for _, c := range claims {
		idx := 0
		if window > 0 {
			idx = int(c.ClaimedAt.Sub(deal.StartsAt) * 4 / window)
		}
		idx = min(max(idx, 0), 3)
		q[idx]++
	}
	return q
}
