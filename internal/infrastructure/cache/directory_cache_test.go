package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain/mock"
)

type mockDirectory struct {
	*mock.MockShopDirectory
	*mock.MockCustomerDirectory
}

func newMockDirectory(t *testing.T) mockDirectory {
	ctrl := gomock.NewController(t)
	return mockDirectory{
		MockShopDirectory:     mock.NewMockShopDirectory(ctrl),
		MockCustomerDirectory: mock.NewMockCustomerDirectory(ctrl),
	}
}

func TestDirectoryCache_ServesRepeatLookups(t *testing.T) {
	next := newMockDirectory(t)
	next.MockShopDirectory.EXPECT().
		GetShop(gomock.Any(), "shop-1").
		Return(&domain.Shop{ID: "shop-1", Name: "Corner Bakery"}, nil).
		Times(1)

	c, err := NewDirectoryCache(next, 16, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		shop, err := c.GetShop(context.Background(), "shop-1")
		require.NoError(t, err)
		assert.Equal(t, "Corner Bakery", shop.Name)
	}
}

func TestDirectoryCache_ExpiresEntries(t *testing.T) {
	next := newMockDirectory(t)
	next.MockCustomerDirectory.EXPECT().
		GetCustomer(gomock.Any(), "c1").
		Return(&domain.Customer{ID: "c1", Name: "Ana"}, nil).
		Times(2)

	c, err := NewDirectoryCache(next, 16, time.Minute)
	require.NoError(t, err)
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, err = c.GetCustomer(context.Background(), "c1")
	require.NoError(t, err)
	_, err = c.GetCustomer(context.Background(), "c1")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = c.GetCustomer(context.Background(), "c1")
	require.NoError(t, err)
}

func TestDirectoryCache_FollowersPrimeCustomers(t *testing.T) {
	next := newMockDirectory(t)
	next.MockCustomerDirectory.EXPECT().
		ListShopFollowers(gomock.Any(), "shop-1").
		Return([]*domain.Customer{{ID: "c1", Name: "Ana"}, {ID: "c2", Name: "Ben"}}, nil)

	c, err := NewDirectoryCache(next, 16, time.Minute)
	require.NoError(t, err)

	followers, err := c.ListShopFollowers(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	customer, err := c.GetCustomer(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "Ben", customer.Name)
}

func TestDirectoryCache_DoesNotCacheMisses(t *testing.T) {
	next := newMockDirectory(t)
	next.MockShopDirectory.EXPECT().
		GetShop(gomock.Any(), "gone").
		Return(nil, domain.ErrShopNotFound).
		Times(2)

	c, err := NewDirectoryCache(next, 16, time.Minute)
	require.NoError(t, err)

	_, err = c.GetShop(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
	_, err = c.GetShop(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestDirectoryCache_ReturnsCopies(t *testing.T) {
	next := newMockDirectory(t)
	next.MockShopDirectory.EXPECT().
		GetShop(gomock.Any(), "shop-1").
		Return(&domain.Shop{ID: "shop-1", Name: "Corner Bakery"}, nil)

	c, err := NewDirectoryCache(next, 16, time.Minute)
	require.NoError(t, err)

	shop, err := c.GetShop(context.Background(), "shop-1")
	require.NoError(t, err)
	shop.Name = "changed"

	again, err := c.GetShop(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "Corner Bakery", again.Name)
}
