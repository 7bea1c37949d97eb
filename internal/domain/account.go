package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Account is the core domain entity holding an account's identity and balance.
// The balance is protected by a per-account guard owned by the AccountStore;
// it is created together with the account and is never shared between
// accounts. All mutations go through the TransferEngine while the guard is
// held, so reads taken without it are advisory only.
type Account struct {
	id      string
	balance decimal.Decimal

	// guard is a capacity-1 channel used as the account's mutual-exclusion
	// lock. A channel instead of sync.Mutex so acquisition can observe
	// context cancellation without leaving state half-applied.
	guard chan struct{}
}

func newAccount(id string, balance decimal.Decimal) *Account {
	return &Account{
		id:      id,
		balance: balance,
		guard:   make(chan struct{}, 1),
	}
}

// ID returns the immutable account identifier.
func (a *Account) ID() string {
	return a.id
}

// lock acquires the account guard, failing with ErrTimeout once ctx is done.
// The pre-check keeps an already-expired context from racing a free guard.
func (a *Account) lock(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	select {
	case a.guard <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}

// unlock releases the account guard. Must only be called after a successful lock.
func (a *Account) unlock() {
	<-a.guard
}

// Snapshot returns the account id and balance at read time. The balance may be
// stale the moment this returns and must never be used as the basis for a
// mutation decision; the TransferEngine re-reads under the guard.
func (a *Account) Snapshot() AccountSnapshot {
	a.guard <- struct{}{}
	balance := a.balance
	<-a.guard
	return AccountSnapshot{ID: a.id, Balance: balance}
}

// AccountSnapshot is a point-in-time, read-only view of an account.
type AccountSnapshot struct {
	ID      string          `json:"account_id"`
	Balance decimal.Decimal `json:"balance"`
}
