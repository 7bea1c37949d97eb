package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransferEngine moves funds between accounts held in an AccountStore.
// Concurrent transfers on disjoint account pairs run fully in parallel;
// transfers sharing an account serialize on that account's guard.
type TransferEngine struct {
	store    *AccountStore
	notifier Notifier
	logger   *zap.Logger
}

// NewTransferEngine creates a TransferEngine.
func NewTransferEngine(store *AccountStore, notifier Notifier, logger *zap.Logger) *TransferEngine {
	return &TransferEngine{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Transfer atomically moves amount from one account to the other:
//
//  1. Reject non-positive amounts and self-transfers up front.
//  2. Resolve both accounts before any guard is taken.
//  3. Acquire both guards in canonical order: the lexicographically lower
//     account id first. Every caller agrees on this order, so two transfers
//     between the same pair — in either direction — can never wait on each
//     other in a cycle.
//  4. Re-validate sufficiency under both guards, mutate both balances, and
//     release in reverse-acquisition order.
//  5. Notify both account holders outside the guarded section.
//
// A rejection (including ErrTimeout from an expired ctx) leaves both balances
// untouched. Nothing is retried internally; retry policy belongs to the caller.
func (e *TransferEngine) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if fromID == toID {
		// A self-transfer would acquire the same non-reentrant guard twice.
		return ErrSameAccount
	}

	from, err := e.store.Get(fromID)
	if err != nil {
		return err
	}
	to, err := e.store.Get(toID)
	if err != nil {
		return err
	}

	first, second := from, to
	if strings.Compare(from.id, to.id) > 0 {
		first, second = to, from
	}

	if err := first.lock(ctx); err != nil {
		return err
	}
	if err := second.lock(ctx); err != nil {
		first.unlock()
		return err
	}

	// Sufficiency must be decided here, under both guards. Any earlier read
	// of the balance could race with a concurrent transfer.
	if from.balance.Cmp(amount) < 0 {
		second.unlock()
		first.unlock()
		return ErrInsufficientFunds
	}

	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)

	second.unlock()
	first.unlock()

	e.notify(ctx, fromID, fmt.Sprintf("transferred %s to account %s", amount, toID))
	e.notify(ctx, toID, fmt.Sprintf("received %s from account %s", amount, fromID))

	return nil
}

// notify delivers a single notification, logging delivery failures. The
// transfer is already committed at this point, so errors are never propagated.
func (e *TransferEngine) notify(ctx context.Context, accountID, message string) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Notify(ctx, accountID, message); err != nil {
		e.logger.Warn("failed to deliver account notification",
			zap.String("account_id", accountID),
			zap.Error(err),
		)
	}
}
