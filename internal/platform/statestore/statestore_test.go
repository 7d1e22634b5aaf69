package statestore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ecodeed/academy_backend/internal/platform/statestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ConsumeIsSingleUse(t *testing.T) {
	store := statestore.NewMemory()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "state-1", "verifier-1", time.Minute))

	v, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, "verifier-1", v)

	_, err = store.Consume(ctx, "state-1")
	require.ErrorIs(t, err, statestore.ErrNotFound)
}

func TestMemory_ConsumeUnknownKey(t *testing.T) {
	store := statestore.NewMemory()
	defer store.Close()

	_, err := store.Consume(context.Background(), "never-stored")
	require.ErrorIs(t, err, statestore.ErrNotFound)
}

func TestMemory_Expiry(t *testing.T) {
	store := statestore.NewMemory()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "state-2", "verifier-2", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := store.Consume(ctx, "state-2")
	require.ErrorIs(t, err, statestore.ErrNotFound)
}

func TestMemory_ConcurrentConsumersOneWinner(t *testing.T) {
	store := statestore.NewMemory()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "contended", "v", time.Minute))

	const n = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Consume(ctx, "contended"); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}

func TestNew_DefaultsToMemory(t *testing.T) {
	store, err := statestore.New(statestore.Config{})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(context.Background(), "k", "v", time.Minute))
	v, err := store.Consume(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}
