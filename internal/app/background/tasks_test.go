package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
)

type sweepCounter struct {
	dealusecase.DealUsecase
	runs atomic.Int32
	err  error
}

func (s *sweepCounter) RunExpirySweep(context.Context) (*dealusecase.SweepReport, error) {
	s.runs.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &dealusecase.SweepReport{Selected: 1, Expired: 1}, nil
}

func TestStartAll_SweepsUntilCancelled(t *testing.T) {
	uc := &sweepCounter{}
	bt := NewBackgroundTasks(uc, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bt.StartAll(ctx) }()

	assert.Eventually(t, func() bool { return uc.runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("StartAll did not return after cancel")
	}
}

func TestStartAll_KeepsGoingAfterFailure(t *testing.T) {
	uc := &sweepCounter{err: errors.New("db down")}
	bt := NewBackgroundTasks(uc, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bt.StartAll(ctx) }()

	assert.Eventually(t, func() bool { return uc.runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestNewBackgroundTasks_Defaults(t *testing.T) {
	bt := NewBackgroundTasks(&sweepCounter{}, 0, nil)
	assert.Equal(t, time.Minute, bt.SweepInterval)
	assert.NotNil(t, bt.Logger)
}
