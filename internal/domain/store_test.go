package domain

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_AndGet(t *testing.T) {
	store := NewAccountStore()

	err := store.Create("acc-1", decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	account, err := store.Get("acc-1")
	require.NoError(t, err)

	snapshot := account.Snapshot()
	assert.Equal(t, "acc-1", snapshot.ID)
	assert.True(t, snapshot.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestCreate_Duplicate(t *testing.T) {
	store := NewAccountStore()

	require.NoError(t, store.Create("acc-1", decimal.Zero))

	err := store.Create("acc-1", decimal.RequireFromString("500.00"))
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// The original balance survives the rejected second create.
	account, err := store.Get("acc-1")
	require.NoError(t, err)
	assert.True(t, account.Snapshot().Balance.IsZero())
}

func TestCreate_NegativeBalance(t *testing.T) {
	store := NewAccountStore()

	err := store.Create("acc-1", decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, ErrNegativeBalance)

	_, err = store.Get("acc-1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGet_NotFound(t *testing.T) {
	store := NewAccountStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// TestCreate_ConcurrentSameID verifies that of N racing creates for one id,
// exactly one wins and the rest observe ErrDuplicateAccount.
func TestCreate_ConcurrentSameID(t *testing.T) {
	const callers = 32

	store := NewAccountStore()
	results := make(chan error, callers)

	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < callers; i++ {
		go func() {
			start.Wait()
			results <- store.Create("contested", decimal.RequireFromString("10.00"))
		}()
	}
	start.Done()

	var created, duplicates int
	for i := 0; i < callers; i++ {
		err := <-results
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrDuplicateAccount):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, callers-1, duplicates)
}

func TestCreate_ConcurrentDistinctIDs(t *testing.T) {
	const accounts = 200

	store := NewAccountStore()

	var wg sync.WaitGroup
	for i := 0; i < accounts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Create(fmt.Sprintf("acc-%03d", i), decimal.NewFromInt(int64(i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < accounts; i++ {
		account, err := store.Get(fmt.Sprintf("acc-%03d", i))
		require.NoError(t, err)
		assert.True(t, account.Snapshot().Balance.Equal(decimal.NewFromInt(int64(i))))
	}
}
