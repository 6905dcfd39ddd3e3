package coupon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jaevor/go-nanoid"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// Alphabet leaves out 0/O and 1/I so codes survive being read aloud at a till.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type CodeChecker interface {
	CouponCodeExists(ctx context.Context, code string) (bool, error)
}

// Generator issues PREFIX-XXXXXXXX codes checked against the claims already
// holding a code. The database unique index stays the final arbiter.
type Generator struct {
	checker     CodeChecker
	next        func() string
	maxAttempts int
}

func NewGenerator(checker CodeChecker, length, maxAttempts int) (*Generator, error) {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	next, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, fmt.Errorf("failed to init coupon code generator: %w", err)
	}
	return &Generator{checker: checker, next: next, maxAttempts: maxAttempts}, nil
}

func (g *Generator) Generate(ctx context.Context, prefix string) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		code := g.next()
		if prefix != "" {
			code = strings.ToUpper(prefix) + "-" + code
		}

		exists, err := g.checker.CouponCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check coupon code: %w", err)
		}
		if !exists {
			return code, nil
		}
		slog.Debug("coupon code collision", "attempt", attempt)
	}
	return "", fmt.Errorf("%w after %d attempts", domain.ErrCouponCollision, g.maxAttempts)
}
