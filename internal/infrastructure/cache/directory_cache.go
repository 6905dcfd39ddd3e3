package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// Directory is the read path for shop and customer lookups the notification
// fan-out does per recipient.
type Directory interface {
	domain.ShopDirectory
	domain.CustomerDirectory
}

type cachedEntry struct {
	value     interface{}
	fetchedAt time.Time
}

// DirectoryCache keeps recently looked up shops and customers in an LRU.
// Follower lists are not cached, they change with every follow.
type DirectoryCache struct {
	next  Directory
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewDirectoryCache(next Directory, size int, ttl time.Duration) (*DirectoryCache, error) {
	if size <= 0 {
		size = 1024
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory cache: %w", err)
	}
	return &DirectoryCache{next: next, cache: c, ttl: ttl, now: time.Now}, nil
}

func (d *DirectoryCache) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	if v, ok := d.lookup("shop:" + shopID); ok {
		shop := *v.(*domain.Shop)
		return &shop, nil
	}
	shop, err := d.next.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	cp := *shop
	d.cache.Add("shop:"+shopID, cachedEntry{value: &cp, fetchedAt: d.now()})
	return shop, nil
}

func (d *DirectoryCache) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	if v, ok := d.lookup("customer:" + customerID); ok {
		customer := *v.(*domain.Customer)
		return &customer, nil
	}
	customer, err := d.next.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	d.remember(customer)
	return customer, nil
}

func (d *DirectoryCache) ListShopFollowers(ctx context.Context, shopID string) ([]*domain.Customer, error) {
	followers, err := d.next.ListShopFollowers(ctx, shopID)
	if err != nil {
		return nil, err
	}
	for _, c := range followers {
		d.remember(c)
	}
	return followers, nil
}

func (d *DirectoryCache) remember(c *domain.Customer) {
	cp := *c
	d.cache.Add("customer:"+c.ID, cachedEntry{value: &cp, fetchedAt: d.now()})
}

func (d *DirectoryCache) lookup(key string) (interface{}, bool) {
	raw, ok := d.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(cachedEntry)
	if d.ttl > 0 && d.now().Sub(entry.fetchedAt) > d.ttl {
		d.cache.Remove(key)
		return nil, false
	}
	return entry.value, true
}
