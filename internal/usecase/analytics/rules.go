package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
)

// Rule is a suggestion guarded by a CEL expression over the deal's metrics.
// Message placeholders in braces are replaced with metric values.
type Rule struct {
	Code    string
	Expr    string
	Message string
}

// DefaultRules are evaluated in order, the first two that match are reported.
var DefaultRules = []Rule{
	{
		Code:    "lower_target",
		Expr:    "completion < 50.0 && target > 20.0",
		Message: "Only {completion}% of the target was reached. Try a target of about {suggested_target} claims next time.",
	},
	{
		Code:    "longer_window",
		Expr:    "completion > 70.0 && time_limit <= 30.0",
		Message: "The deal came close. Doubling the window to {double_window} minutes would give customers time to finish it.",
	},
	{
		Code:    "raise_discount",
		Expr:    "notified > 0.0 && conversion < 5.0 && discount < 30.0",
		Message: "Only {conversion}% of notified customers claimed. A discount above {discount}% could convert more of them.",
	},
	{
		Code:    "mid_deal_reminder",
		Expr:    "q1 > 2.0 * q2",
		Message: "Most claims came in the first quarter of the deal. A reminder to share halfway through keeps momentum going.",
	},
	{
		Code:    "referral_incentive",
		Expr:    "referral < 20.0",
		Message: "Only {referral}% of claims came through referrals. Reward customers who bring friends.",
	},
}

var fallbackRules = []Rule{
	{
		Code:    "post_at_peak",
		Message: "Your customers were most active around {peak_hour}:00. Publish the next deal shortly before that.",
	},
	{
		Code:    "share_early",
		Message: "Share the deal in your status and groups right after publishing, early claims pull in the rest.",
	},
}

var ruleVariables = []string{
	"completion", "target", "time_limit", "notified", "conversion", "discount",
	"referral", "shortfall", "claims", "avg_speed",
	"q1", "q2", "q3", "q4",
}

type compiledRule struct {
	Rule
	program cel.Program
}

func newRuleEnv() (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(ruleVariables))
	for _, name := range ruleVariables {
		opts = append(opts, cel.Variable(name, cel.DoubleType))
	}
	return cel.NewEnv(opts...)
}

func compileRules(env *cel.Env, rules []Rule) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		ast, iss := env.Compile(r.Expr)
		if iss != nil && iss.Err() != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Code, iss.Err())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Code, err)
		}
		compiled = append(compiled, compiledRule{Rule: r, program: prg})
	}
	return compiled, nil
}

func (r compiledRule) matches(vars map[string]any) (bool, error) {
	out, _, err := r.program.Eval(vars)
	if err != nil {
		return false, err
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("rule %s evaluated to %T, want bool", r.Code, out.Value())
	}
	return matched, nil
}

func render(message string, placeholders map[string]string) string {
	pairs := make([]string, 0, len(placeholders)*2)
	for k, v := range placeholders {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
