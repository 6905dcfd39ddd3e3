package models

import "time"

// Shops, customers and followers are owned by the account service; this
// service only reads them.

type ShopModel struct {
	ID         string `gorm:"primaryKey"`
	Name       string
	OwnerID    string
	OwnerName  string
	OwnerPhone string
}

func (ShopModel) TableName() string {
	return "shops"
}

type CustomerModel struct {
	ID    string `gorm:"primaryKey"`
	Name  string
	Phone string
}

func (CustomerModel) TableName() string {
	return "customers"
}

type ShopFollowerModel struct {
	ShopID     string `gorm:"primaryKey"`
	CustomerID string `gorm:"primaryKey"`
	CreatedAt  time.Time
}

func (ShopFollowerModel) TableName() string {
	return "shop_followers"
}
