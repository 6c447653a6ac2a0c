package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := NewPool(3, 10, nil)
	p.Start()

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		ok := p.Submit(Job{Name: "count", Run: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}})
		require.True(t, ok)
	}

	require.NoError(t, p.Stop(context.Background()))
	assert.EqualValues(t, 10, ran.Load())
	assert.Equal(t, 3, p.WorkerCount())
}

func TestPool_SubmitFailsWhenFullOrStopped(t *testing.T) {
	p := NewPool(1, 1, nil)

	noop := Job{Name: "noop", Run: func(ctx context.Context) error { return nil }}
	assert.True(t, p.Submit(noop))
	assert.False(t, p.Submit(noop), "queue of one is full before Start")
	assert.Equal(t, 1, p.QueueLength())

	p.Start()
	require.NoError(t, p.Stop(context.Background()))
	assert.False(t, p.Submit(noop))
	assert.NoError(t, p.Stop(context.Background()), "second stop is a no-op")
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	p := NewPool(1, 4, nil)
	p.Start()

	var after atomic.Bool
	p.Submit(Job{Name: "fail", Run: func(ctx context.Context) error { return errors.New("boom") }})
	p.Submit(Job{Name: "panic", Run: func(ctx context.Context) error { panic("boom") }})
	p.Submit(Job{Name: "after", Run: func(ctx context.Context) error { after.Store(true); return nil }})

	require.NoError(t, p.Stop(context.Background()))
	assert.True(t, after.Load())
}

func TestPool_StopTimeoutCancelsRunningJobs(t *testing.T) {
	p := NewPool(1, 1, nil)
	p.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	p.Submit(Job{Name: "slow", Run: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("running job was not cancelled")
	}
}
