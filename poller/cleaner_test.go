package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/poller/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cleanerNow = time.Unix(1_700_000_000, 0)

func newTestCleaner(t *testing.T, cfg CleanerConfig) (*Cleaner, *mocks.MessageDeleter) {
	t.Helper()
	storage := mocks.NewMessageDeleter(t)
	c, err := NewCleaner(log.GetDefaultLogger(), cfg, storage)
	require.NoError(t, err)
	c.timeNow = func() time.Time { return cleanerNow }
	return c, storage
}

func TestNewCleanerValidation(t *testing.T) {
	storage := mocks.NewMessageDeleter(t)
	_, err := NewCleaner(log.GetDefaultLogger(), CleanerConfig{Interval: time.Hour, Scope: "all"}, storage)
	require.ErrorContains(t, err, "unknown cleaner scope")

	_, err = NewCleaner(log.GetDefaultLogger(), CleanerConfig{Interval: time.Hour, Scope: ScopeDirection}, storage)
	require.ErrorContains(t, err, "at least one direction")

	_, err = NewCleaner(log.GetDefaultLogger(), CleanerConfig{Scope: ScopeGlobal}, storage)
	require.ErrorContains(t, err, "interval")
}

func TestCleanerSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("global", func(t *testing.T) {
		c, storage := newTestCleaner(t, CleanerConfig{
			Interval:        time.Hour,
			RetentionPeriod: 24 * time.Hour,
			Scope:           ScopeGlobal,
			// ignored with the global scope
			Directions: []message.Direction{message.DirectionL1ToL2},
		})
		storage.EXPECT().DeleteMessages(ctx, cleanerNow.Add(-24*time.Hour), []message.Direction(nil)).Return(3, nil).Once()
		deleted, err := c.Sweep(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(3), deleted)
	})

	t.Run("direction", func(t *testing.T) {
		c, storage := newTestCleaner(t, CleanerConfig{
			Interval:        time.Hour,
			RetentionPeriod: time.Hour,
			Scope:           ScopeDirection,
			Directions:      []message.Direction{message.DirectionL2ToL1},
		})
		storage.EXPECT().DeleteMessages(ctx, cleanerNow.Add(-time.Hour), []message.Direction{message.DirectionL2ToL1}).
			Return(0, nil).Once()
		deleted, err := c.Sweep(ctx)
		require.NoError(t, err)
		require.Zero(t, deleted)
	})

	t.Run("error", func(t *testing.T) {
		c, storage := newTestCleaner(t, CleanerConfig{Interval: time.Hour, Scope: ScopeGlobal})
		storage.EXPECT().DeleteMessages(ctx, cleanerNow, []message.Direction(nil)).Return(0, errors.New("disk full")).Once()
		_, err := c.Sweep(ctx)
		require.ErrorContains(t, err, "disk full")
	})
}

func TestCleanerStart(t *testing.T) {
	c, storage := newTestCleaner(t, CleanerConfig{
		Interval:        time.Second,
		RetentionPeriod: time.Hour,
		Scope:           ScopeGlobal,
	})
	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan struct{}, 1)
	storage.EXPECT().DeleteMessages(mock.Anything, cleanerNow.Add(-time.Hour), []message.Direction(nil)).
		RunAndReturn(func(context.Context, time.Time, []message.Direction) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 1, nil
		})

	done := make(chan error)
	go func() { done <- c.Start(ctx) }()

	select {
	case <-swept:
	case <-time.After(5 * time.Second):
		t.Fatal("retention sweep did not run")
	}
	cancel()
	require.NoError(t, <-done)
}
