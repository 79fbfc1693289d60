package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler(t *testing.T) {
	t.Run("runs job until cancelled", func(t *testing.T) {
		s := New(zap.NewNop().Sugar())

		var runs int32
		err := s.AddJob("@every 1s", NewJob("count", func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		}))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
		defer cancel()
		require.NoError(t, s.Run(ctx))

		require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(1))
	})

	t.Run("invalid schedule", func(t *testing.T) {
		s := New(zap.NewNop().Sugar())
		err := s.AddJob("every now and then", NewJob("noop", func(ctx context.Context) error {
			return nil
		}))
		require.Error(t, err)
	})
}
