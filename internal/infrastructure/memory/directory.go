package memory

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

type Directory struct {
	mu        sync.RWMutex
	shops     map[string]*domain.Shop
	customers map[string]*domain.Customer
	followers map[string][]string
}

func NewDirectory() *Directory {
	return &Directory{
		shops:     make(map[string]*domain.Shop),
		customers: make(map[string]*domain.Customer),
		followers: make(map[string][]string),
	}
}

func (d *Directory) AddShop(shop *domain.Shop) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shops[shop.ID] = shop
}

func (d *Directory) AddCustomer(customer *domain.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[customer.ID] = customer
}

func (d *Directory) Follow(shopID, customerID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.followers[shopID] = append(d.followers[shopID], customerID)
}

func (d *Directory) GetShop(_ context.Context, shopID string) (*domain.Shop, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	shop, ok := d.shops[shopID]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	s := *shop
	return &s, nil
}

func (d *Directory) GetCustomer(_ context.Context, customerID string) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	customer, ok := d.customers[customerID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	c := *customer
	return &c, nil
}

func (d *Directory) ListShopFollowers(_ context.Context, shopID string) ([]*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*domain.Customer
	for _, id := range d.followers[shopID] {
		if c, ok := d.customers[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}
