package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyflow/leadfunnel/pkg/async"
)

func TestAsync_Await(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	result, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.True(t, f.IsComplete())
}

func TestAsync_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	f := async.Async(context.Background(), struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		return "", wantErr
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, wantErr)
}

func TestAsync_PreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	invoked := false
	f := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (int, error) {
		invoked = true
		return 1, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, invoked)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), struct{}{}, func(ctx context.Context, _ struct{}) (int, error) {
		time.Sleep(time.Second)
		return 1, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestWaitAllSettled_CollectsAllOutcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	failure := errors.New("branch failed")

	ok := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		return "ok", nil
	})
	failed := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		return "", failure
	})
	slow := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "slow", nil
	})

	results := async.WaitAllSettled(ok, failed, slow)
	require.Len(t, results, 3)

	assert.Equal(t, "ok", results[0].Value)
	assert.NoError(t, results[0].Err)

	assert.ErrorIs(t, results[1].Err, failure)

	// A failing sibling must not prevent the slow branch from settling.
	assert.Equal(t, "slow", results[2].Value)
	assert.NoError(t, results[2].Err)
}
