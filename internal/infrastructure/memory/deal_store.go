package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// DealStore keeps deals and claims in process memory with the same locking and
// commit semantics as the postgres store. Used for local runs and tests.
type DealStore struct {
	mu      sync.Mutex
	deals   map[string]*domain.Deal
	claims  map[string][]*domain.Claim
	coupons map[string]string
	locks   map[string]chan struct{}

	lockTimeout time.Duration
}

func NewDealStore(lockTimeout time.Duration) *DealStore {
	if lockTimeout <= 0 {
		lockTimeout = 3 * time.Second
	}
	return &DealStore{
		deals:       make(map[string]*domain.Deal),
		claims:      make(map[string][]*domain.Claim),
		coupons:     make(map[string]string),
		locks:       make(map[string]chan struct{}),
		lockTimeout: lockTimeout,
	}
}

func (s *DealStore) CreateDeal(_ context.Context, deal *domain.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deals[deal.ID]; ok {
		return fmt.Errorf("deal %s already exists", deal.ID)
	}
	s.deals[deal.ID] = deal.Clone()
	return nil
}

func (s *DealStore) GetDeal(_ context.Context, dealID string) (*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deal, ok := s.deals[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	return deal.Clone(), nil
}

func (s *DealStore) GetClaims(_ context.Context, dealID string) ([]*domain.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneClaims(s.claims[dealID]), nil
}

func (s *DealStore) FindExpiredLiveDeals(_ context.Context, now time.Time) ([]*domain.Deal, error) {
	return s.filterDeals(func(d *domain.Deal) bool {
		return d.Status == domain.StatusLive && !d.ExpiresAt.After(now)
	}), nil
}

func (s *DealStore) FindDueScheduledDeals(_ context.Context, now time.Time) ([]*domain.Deal, error) {
	return s.filterDeals(func(d *domain.Deal) bool {
		return d.Status == domain.StatusScheduled && !d.StartsAt.After(now)
	}), nil
}

func (s *DealStore) CouponCodeExists(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.coupons[code]
	return ok, nil
}

func (s *DealStore) filterDeals(match func(*domain.Deal) bool) []*domain.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Deal
	for _, d := range s.deals {
		if match(d) {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt.Before(out[j].ExpiresAt) })
	return out
}

func (s *DealStore) WithDealLock(ctx context.Context, dealID string, fn func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error) error {
	s.mu.Lock()
	if _, ok := s.deals[dealID]; !ok {
		s.mu.Unlock()
		return domain.ErrDealNotFound
	}
	sem, ok := s.locks[dealID]
	if !ok {
		sem = make(chan struct{}, 1)
		s.locks[dealID] = sem
	}
	s.mu.Unlock()

	timer := time.NewTimer(s.lockTimeout)
	defer timer.Stop()
	select {
	case sem <- struct{}{}:
	case <-timer.C:
		return domain.ErrConcurrencyConflict
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, ctx.Err())
	}
	defer func() { <-sem }()

	s.mu.Lock()
	deal := s.deals[dealID].Clone()
	s.mu.Unlock()

	tx := &memTx{store: s, dealID: dealID, coupons: make(map[string]string)}
	if err := fn(ctx, tx, deal); err != nil {
		return err
	}
	// an abandoned caller must not commit, as a cancelled postgres tx would not
	if err := ctx.Err(); err != nil {
		return err
	}
	return tx.commit()
}

type memTx struct {
	store   *DealStore
	dealID  string
	deal    *domain.Deal
	created []*domain.Claim
	// claim id -> coupon code
	coupons map[string]string
}

func (t *memTx) SaveDeal(_ context.Context, deal *domain.Deal) error {
	if deal.ID != t.dealID {
		return fmt.Errorf("deal %s is not locked by this transaction", deal.ID)
	}
	t.deal = deal.Clone()
	return nil
}

func (t *memTx) HasClaim(_ context.Context, dealID, customerID string) (bool, error) {
	for _, c := range t.created {
		if c.DealID == dealID && c.CustomerID == customerID {
			return true, nil
		}
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, c := range t.store.claims[dealID] {
		if c.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) CreateClaim(ctx context.Context, claim *domain.Claim) error {
	exists, err := t.HasClaim(ctx, claim.DealID, claim.CustomerID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyClaimed
	}
	t.created = append(t.created, claim.Clone())
	return nil
}

func (t *memTx) ListClaims(_ context.Context, dealID string) ([]*domain.Claim, error) {
	t.store.mu.Lock()
	claims := cloneClaims(t.store.claims[dealID])
	t.store.mu.Unlock()

	for _, c := range t.created {
		if c.DealID == dealID {
			claims = append(claims, c.Clone())
		}
	}
	for _, c := range claims {
		if code, ok := t.coupons[c.ID]; ok {
			c.CouponCode = &code
		}
	}
	return claims, nil
}

func (t *memTx) SetCouponCode(_ context.Context, claimID, code string) error {
	for id, staged := range t.coupons {
		if staged == code && id != claimID {
			return domain.ErrCouponCollision
		}
	}
	t.coupons[claimID] = code
	return nil
}

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for claimID, code := range t.coupons {
		if owner, ok := s.coupons[code]; ok && owner != claimID {
			return domain.ErrCouponCollision
		}
	}

	claims := s.claims[t.dealID]
	for _, c := range t.created {
		claims = append(claims, c.Clone())
	}
	for _, c := range claims {
		code, ok := t.coupons[c.ID]
		if !ok {
			continue
		}
		if c.CouponCode != nil {
			delete(s.coupons, *c.CouponCode)
		}
		c.CouponCode = &code
		s.coupons[code] = c.ID
	}
	s.claims[t.dealID] = claims

	if t.deal != nil {
		s.deals[t.dealID] = t.deal
	}
	return nil
}

func cloneClaims(in []*domain.Claim) []*domain.Claim {
	out := make([]*domain.Claim, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
