package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/models"
)

// postgres error codes that mean the row lock could not be taken in time
const (
	pgLockNotAvailable     = "55P03"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

type DefaultDealStore struct {
	DB          *gorm.DB
	LockTimeout time.Duration
}

func NewDefaultDealStore(db *gorm.DB, lockTimeout time.Duration) *DefaultDealStore {
	return &DefaultDealStore{DB: db, LockTimeout: lockTimeout}
}

func (s *DefaultDealStore) CreateDeal(ctx context.Context, deal *domain.Deal) error {
	if err := s.DB.WithContext(ctx).Create(mappers.ToGORMDeal(deal)).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *DefaultDealStore) GetDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	var deal models.DealModel
	if err := s.DB.WithContext(ctx).First(&deal, "id = ?", dealID).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainDeal(&deal), nil
}

func (s *DefaultDealStore) GetClaims(ctx context.Context, dealID string) ([]*domain.Claim, error) {
	return listClaims(s.DB.WithContext(ctx), dealID)
}

func (s *DefaultDealStore) FindExpiredLiveDeals(ctx context.Context, now time.Time) ([]*domain.Deal, error) {
	return s.findDeals(ctx, "status = ? AND expires_at <= ?", domain.StatusLive, now)
}

func (s *DefaultDealStore) FindDueScheduledDeals(ctx context.Context, now time.Time) ([]*domain.Deal, error) {
	return s.findDeals(ctx, "status = ? AND starts_at <= ?", domain.StatusScheduled, now)
}

func (s *DefaultDealStore) findDeals(ctx context.Context, query string, args ...interface{}) ([]*domain.Deal, error) {
	var list []models.DealModel
	if err := s.DB.WithContext(ctx).Where(query, args...).Order("expires_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	deals := make([]*domain.Deal, 0, len(list))
	for i := range list {
		deals = append(deals, mappers.ToDomainDeal(&list[i]))
	}
	return deals, nil
}

func (s *DefaultDealStore) CouponCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.ClaimModel{}).Where("coupon_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// WithDealLock runs fn inside a transaction holding SELECT ... FOR UPDATE on the
// deal row. The lock wait is bounded by LockTimeout; running out of it surfaces
// as ErrConcurrencyConflict.
func (s *DefaultDealStore) WithDealLock(ctx context.Context, dealID string, fn func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.LockTimeout > 0 {
			stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.LockTimeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		var deal models.DealModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&deal, "id = ?", dealID).Error; err != nil {
			return err
		}
		return fn(ctx, &dealTx{db: tx}, mappers.ToDomainDeal(&deal))
	})
	return translateError(err)
}

type dealTx struct {
	db *gorm.DB
}

func (t *dealTx) SaveDeal(_ context.Context, deal *domain.Deal) error {
	return t.db.Save(mappers.ToGORMDeal(deal)).Error
}

func (t *dealTx) HasClaim(_ context.Context, dealID, customerID string) (bool, error) {
	var count int64
	err := t.db.Model(&models.ClaimModel{}).
		Where("deal_id = ? AND customer_id = ?", dealID, customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *dealTx) CreateClaim(_ context.Context, claim *domain.Claim) error {
	return translateError(t.db.Create(mappers.ToGORMClaim(claim)).Error)
}

func (t *dealTx) ListClaims(_ context.Context, dealID string) ([]*domain.Claim, error) {
	return listClaims(t.db, dealID)
}

func (t *dealTx) SetCouponCode(_ context.Context, claimID, code string) error {
	err := t.db.Model(&models.ClaimModel{}).
		Where("id = ?", claimID).
		Update("coupon_code", code).Error
	return translateError(err)
}

func listClaims(db *gorm.DB, dealID string) ([]*domain.Claim, error) {
	var list []models.ClaimModel
	if err := db.Where("deal_id = ?", dealID).Order("position ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainClaims(list), nil
}

// translateError maps driver errors onto domain errors. Anything it does not
// recognise, domain errors from the callback included, passes through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrDealNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgLockNotAvailable, pgSerializationFailure, pgDeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrConcurrencyConflict, pgErr.Message)
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case models.ClaimDealCustomerConstraint:
			return domain.ErrAlreadyClaimed
		case models.ClaimCouponCodeConstraint:
			return domain.ErrCouponCollision
		}
	}
	return err
}
