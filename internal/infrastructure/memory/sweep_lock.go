package memory

import (
	"context"
	"sync"
	"time"
)

// SweepLocker is a single-process stand-in for the redis lock.
type SweepLocker struct {
	mu      sync.Mutex
	holders map[string]lease
	seq     uint64
	now     func() time.Time
}

type lease struct {
	token     uint64
	expiresAt time.Time
}

func NewSweepLocker() *SweepLocker {
	return &SweepLocker{holders: make(map[string]lease), now: time.Now}
}

func (l *SweepLocker) TryLock(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.holders[key]; ok && now.Before(held.expiresAt) {
		return nil, false, nil
	}
	l.seq++
	token := l.seq
	l.holders[key] = lease{token: token, expiresAt: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if held, ok := l.holders[key]; ok && held.token == token {
			delete(l.holders, key)
		}
		return nil
	}
	return release, true, nil
}
