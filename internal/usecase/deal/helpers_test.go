package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/coupon"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-flashdeal-service/internal/usecase/analytics"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

var baseTime = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// recordingNotifier captures every notification. Sends to customers listed in
// failFor return an error.
type recordingNotifier struct {
	mu sync.Mutex

	live            []string
	milestones      []int
	tiers           []int
	rescues         []domain.RescueAction
	activations     []string
	shopActivations int
	expiries        []string
	analytics       []*domain.DealAnalytics

	failFor map[string]bool
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{failFor: make(map[string]bool)}
}

func (n *recordingNotifier) fail(customerID string) error {
	if n.failFor[customerID] {
		return fmt.Errorf("send to %s failed", customerID)
	}
	return nil
}

func (n *recordingNotifier) SendDealLive(_ context.Context, customer *domain.Customer, _ *domain.Deal) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.live = append(n.live, customer.ID)
	return n.fail(customer.ID)
}

func (n *recordingNotifier) SendMilestone(_ context.Context, _ *domain.Deal, percent int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.milestones = append(n.milestones, percent)
	return nil
}

func (n *recordingNotifier) SendTierUnlocked(_ context.Context, _ *domain.Deal, level int, _ domain.ChainTier) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tiers = append(n.tiers, level)
	return nil
}

func (n *recordingNotifier) SendRescue(_ context.Context, _ *domain.Deal, action domain.RescueAction) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rescues = append(n.rescues, action)
	return nil
}

func (n *recordingNotifier) SendActivation(_ context.Context, customer *domain.Customer, _ *domain.Claim, _ *domain.Deal) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activations = append(n.activations, customer.ID)
	return n.fail(customer.ID)
}

func (n *recordingNotifier) SendActivationToShop(context.Context, *domain.Shop, *domain.Deal) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shopActivations++
	return nil
}

func (n *recordingNotifier) SendExpiry(_ context.Context, customer *domain.Customer, _ *domain.Deal) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.expiries = append(n.expiries, customer.ID)
	return n.fail(customer.ID)
}

func (n *recordingNotifier) SendAnalytics(_ context.Context, _ *domain.Shop, _ *domain.Deal, report *domain.DealAnalytics) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.analytics = append(n.analytics, report)
	return nil
}

type harness struct {
	uc       *DefaultDealUsecase
	store    *memory.DealStore
	dir      *memory.Directory
	notifier *recordingNotifier
	clock    *fakeClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := memory.NewDealStore(time.Second)
	dir := memory.NewDirectory()
	dir.AddShop(&domain.Shop{ID: "shop-1", Name: "Corner Bakery", OwnerID: "owner-1", OwnerName: "Sam", OwnerPhone: "+15550001"})

	coupons, err := coupon.NewGenerator(store, 8, 5)
	require.NoError(t, err)
	report, err := analytics.NewGenerator(time.UTC, analytics.DefaultRules)
	require.NoError(t, err)

	notifier := newRecordingNotifier()
	clock := &fakeClock{t: baseTime}

	settings := DefaultSettings()
	settings.RetryBackoff = 5 * time.Millisecond

	uc := NewDefaultDealUsecase(store, coupons, notifier, dir, dir, report, settings)
	uc.Clock = clock.Now
	uc.Locker = memory.NewSweepLocker()

	return &harness{uc: uc, store: store, dir: dir, notifier: notifier, clock: clock}
}

func basicDeal(target, minutes int) *dealdto.CreateDealInput {
	return &dealdto.CreateDealInput{
		ShopID:           "shop-1",
		Title:            "Half-price sourdough",
		DiscountPercent:  10,
		TargetClaims:     target,
		TimeLimitMinutes: minutes,
	}
}

func (h *harness) createDeal(t *testing.T, input *dealdto.CreateDealInput) string {
	t.Helper()
	out, err := h.uc.CreateDeal(context.Background(), input)
	require.NoError(t, err)
	return out.Deal.DealID
}

func (h *harness) claim(dealID, customerID string) (*dealdto.ClaimOutput, error) {
	h.dir.AddCustomer(&domain.Customer{ID: customerID, Name: "Customer " + customerID, Phone: "+1555" + customerID})
	return h.uc.ClaimDeal(context.Background(), &dealdto.ClaimDealInput{DealID: dealID, CustomerID: customerID})
}

// claimN admits customers c1..cN in order.
func (h *harness) claimN(t *testing.T, dealID string, from, to int) {
	t.Helper()
	for i := from; i <= to; i++ {
		_, err := h.claim(dealID, customerID(i))
		require.NoError(t, err, "claim %d", i)
	}
}

func (h *harness) deal(t *testing.T, dealID string) *domain.Deal {
	t.Helper()
	deal, err := h.store.GetDeal(context.Background(), dealID)
	require.NoError(t, err)
	return deal
}

func customerID(i int) string {
	return fmt.Sprintf("c%d", i)
}
