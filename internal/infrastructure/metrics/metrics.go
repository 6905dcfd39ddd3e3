package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DealMetrics holds the prometheus collectors of the deal engine
type DealMetrics struct {
	// Claim admissions by outcome
	ClaimsTotal *prometheus.CounterVec

	// Lifecycle transitions
	ActivationsTotal   *prometheus.CounterVec
	ExpiriesTotal      prometheus.Counter
	CancellationsTotal prometheus.Counter

	// Chain and rescue
	TierUnlocksTotal   *prometheus.CounterVec
	RescueActionsTotal *prometheus.CounterVec

	// Notification fan-out
	NotificationFailuresTotal *prometheus.CounterVec

	// Expiry sweep
	SweepDuration          prometheus.Histogram
	SweepItemFailuresTotal prometheus.Counter
}

// NewDealMetrics registers the collectors on reg. Tests pass a fresh registry
// so repeated construction does not panic on duplicate registration.
func NewDealMetrics(reg prometheus.Registerer) *DealMetrics {
	factory := promauto.With(reg)
	return &DealMetrics{
		ClaimsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flashdeal_claims_total",
				Help: "Claim admissions by result",
			},
			[]string{"result"},
		),

		ActivationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flashdeal_activations_total",
				Help: "Deals activated, by the path that activated them",
			},
			[]string{"path"},
		),

		ExpiriesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flashdeal_expiries_total",
				Help: "Deals that expired without reaching their target",
			},
		),

		CancellationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flashdeal_cancellations_total",
				Help: "Deals cancelled by their shop",
			},
		),

		TierUnlocksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flashdeal_tier_unlocks_total",
				Help: "Chain tiers unlocked, by level",
			},
			[]string{"level"},
		),

		RescueActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flashdeal_rescue_actions_total",
				Help: "Rescue interventions applied, by action",
			},
			[]string{"action"},
		),

		NotificationFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flashdeal_notification_failures_total",
				Help: "Notifications that could not be delivered, by kind",
			},
			[]string{"kind"},
		),

		SweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flashdeal_sweep_duration_seconds",
				Help:    "Duration of one expiry sweep run",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms, 20ms, 40ms...
			},
		),

		SweepItemFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flashdeal_sweep_item_failures_total",
				Help: "Deals the expiry sweep failed to resolve",
			},
		),
	}
}

func (m *DealMetrics) RecordClaim(result string) {
	m.ClaimsTotal.WithLabelValues(result).Inc()
}

func (m *DealMetrics) RecordActivation(path string) {
	m.ActivationsTotal.WithLabelValues(path).Inc()
}

func (m *DealMetrics) RecordExpiry() {
	m.ExpiriesTotal.Inc()
}

func (m *DealMetrics) RecordCancellation() {
	m.CancellationsTotal.Inc()
}

func (m *DealMetrics) RecordTierUnlocked(level string) {
	m.TierUnlocksTotal.WithLabelValues(level).Inc()
}

func (m *DealMetrics) RecordRescue(action string) {
	m.RescueActionsTotal.WithLabelValues(action).Inc()
}

func (m *DealMetrics) RecordNotificationFailure(kind string) {
	m.NotificationFailuresTotal.WithLabelValues(kind).Inc()
}

func (m *DealMetrics) ObserveSweepDuration(d time.Duration) {
	m.SweepDuration.Observe(d.Seconds())
}

func (m *DealMetrics) RecordSweepItemFailure() {
	m.SweepItemFailuresTotal.Inc()
}
