package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/models"
)

// DefaultDirectoryRepository reads shops, customers and followers.
type DefaultDirectoryRepository struct {
	DB *gorm.DB
}

func NewDefaultDirectoryRepository(db *gorm.DB) *DefaultDirectoryRepository {
	return &DefaultDirectoryRepository{DB: db}
}

func (r *DefaultDirectoryRepository) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	var shop models.ShopModel
	if err := r.DB.WithContext(ctx).First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShopNotFound
		}
		return nil, err
	}
	return mappers.ToDomainShop(&shop), nil
}

func (r *DefaultDirectoryRepository) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer models.CustomerModel
	if err := r.DB.WithContext(ctx).First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCustomer(&customer), nil
}

func (r *DefaultDirectoryRepository) ListShopFollowers(ctx context.Context, shopID string) ([]*domain.Customer, error) {
	var list []models.CustomerModel
	err := r.DB.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Joins("JOIN shop_followers ON shop_followers.customer_id = customers.id").
		Where("shop_followers.shop_id = ?", shopID).
		Order("shop_followers.created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(list))
	for i := range list {
		customers = append(customers, mappers.ToDomainCustomer(&list[i]))
	}
	return customers, nil
}
