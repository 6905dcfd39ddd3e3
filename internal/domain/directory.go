package domain

//go:generate mockgen -source=directory.go -destination=mock/directory.go -package=mock

import "context"

type Shop struct {
	ID         string
	Name       string
	OwnerID    string
	OwnerName  string
	OwnerPhone string
}

type Customer struct {
	ID    string
	Name  string
	Phone string
}

type ShopDirectory interface {
	GetShop(ctx context.Context, shopID string) (*Shop, error)
}

type CustomerDirectory interface {
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	ListShopFollowers(ctx context.Context, shopID string) ([]*Customer, error)
}
