package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountsService is the synchronous API consumed by the transport layer.
// It composes the AccountStore and the TransferEngine; callers never touch
// accounts directly.
type AccountsService struct {
	store  *AccountStore
	engine *TransferEngine
}

// NewAccountsService creates a new AccountsService.
func NewAccountsService(store *AccountStore, engine *TransferEngine) *AccountsService {
	return &AccountsService{
		store:  store,
		engine: engine,
	}
}

// CreateAccount creates an account with the given id and initial balance.
// Returns ErrDuplicateAccount if the id is already taken.
func (s *AccountsService) CreateAccount(id string, initialBalance decimal.Decimal) error {
	return s.store.Create(id, initialBalance)
}

// GetAccount returns a snapshot of the account's id and balance at read time.
func (s *AccountsService) GetAccount(id string) (AccountSnapshot, error) {
	account, err := s.store.Get(id)
	if err != nil {
		return AccountSnapshot{}, err
	}
	return account.Snapshot(), nil
}

// Transfer moves amount between the two accounts. See TransferEngine.Transfer
// for the protocol and the error taxonomy.
func (s *AccountsService) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	return s.engine.Transfer(ctx, fromID, toID, amount)
}
