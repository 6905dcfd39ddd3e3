package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/models"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), domain.ErrDealNotFound},
		{"lock timeout", &pgconn.PgError{Code: pgLockNotAvailable}, domain.ErrConcurrencyConflict},
		{"serialization", &pgconn.PgError{Code: pgSerializationFailure}, domain.ErrConcurrencyConflict},
		{"deadlock", &pgconn.PgError{Code: pgDeadlockDetected}, domain.ErrConcurrencyConflict},
		{"duplicate claim", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: models.ClaimDealCustomerConstraint}, domain.ErrAlreadyClaimed},
		{"duplicate coupon", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: models.ClaimCouponCodeConstraint}, domain.ErrCouponCollision},
		{"other", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
