package domain

import (
	"hash/fnv"
	"sync"

	"github.com/shopspring/decimal"
)

// shardCount is the number of buckets the account map is split across.
// Must be a power of two.
const shardCount = 32

// AccountStore is a thread-safe, sharded mapping from account id to account.
// Each id hashes to one bucket with its own RWMutex, so creates and lookups on
// unrelated accounts never serialize on a single lock. The store owns every
// Account it creates, including the per-account guard used by the
// TransferEngine.
type AccountStore struct {
	shards [shardCount]storeShard
}

type storeShard struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewAccountStore creates an empty AccountStore.
func NewAccountStore() *AccountStore {
	s := &AccountStore{}
	for i := range s.shards {
		s.shards[i].accounts = make(map[string]*Account)
	}
	return s
}

func (s *AccountStore) shardFor(id string) *storeShard {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.shards[h.Sum32()&(shardCount-1)]
}

// Create inserts a new account with the given non-negative initial balance.
// Returns ErrDuplicateAccount if the id is already taken. The insert is
// linearizable: of any number of concurrent Create calls with the same id,
// exactly one succeeds.
func (s *AccountStore) Create(id string, initialBalance decimal.Decimal) error {
	if initialBalance.IsNegative() {
		return ErrNegativeBalance
	}

	shard := s.shardFor(id)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, ok := shard.accounts[id]; ok {
		return ErrDuplicateAccount
	}
	shard.accounts[id] = newAccount(id, initialBalance)
	return nil
}

// Get retrieves an account by id, or ErrAccountNotFound if it doesn't exist.
func (s *AccountStore) Get(id string) (*Account, error) {
	shard := s.shardFor(id)
	shard.mu.RLock()
	account, ok := shard.accounts[id]
	shard.mu.RUnlock()

	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
