package domain

import (
	"context"
	"time"
)

// SweepLocker guards a periodic job so only one instance runs at a time. The
// lock expires on its own after ttl so a hung holder cannot block later runs.
type SweepLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}
