// Package memory implements the ledger ports with an in-process store.
// It is the default backend: process-lifetime state, no persistence.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

type Store struct {
	mu       sync.Mutex
	txs      []core.Transaction // newest first
	accounts []core.Account
	goals    []core.Goal
	now      func() time.Time
}

func New(accounts []core.Account, goals []core.Goal) *Store {
	return &Store{
		accounts: accounts,
		goals:    goals,
		now:      time.Now,
	}
}

// NewWithDefaults seeds the demo account and goal sets.
func NewWithDefaults() *Store {
	return New(DefaultAccounts(), DefaultGoals())
}

// DefaultAccounts is the fixed startup account set.
func DefaultAccounts() []core.Account {
	return []core.Account{
		{ID: "1", Name: "Checking", Type: core.Checking, Balance: core.Money{Cents: 124750}},
		{ID: "2", Name: "Savings", Type: core.Savings, Balance: core.Money{Cents: 85000}},
		{ID: "3", Name: "Cash", Type: core.Cash, Balance: core.Money{Cents: 4575}},
	}
}

// DefaultGoals is the fixed startup goal set.
func DefaultGoals() []core.Goal {
	return []core.Goal{
		{ID: "1", Title: "Emergency Fund", Target: core.Money{Cents: 80000}, Current: core.Money{Cents: 50000}, Category: "savings"},
		{ID: "2", Title: "New Laptop", Target: core.Money{Cents: 120000}, Current: core.Money{Cents: 20000}, Category: "technology"},
		{ID: "3", Title: "Spring Break Fund", Target: core.Money{Cents: 60000}, Current: core.Money{Cents: 15000}, Category: "travel"},
	}
}

// Append stores the transaction and returns it with the generated id and
// timestamp filled in. New records are prepended so reads come back
// newest first.
func (s *Store) Append(_ context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()
	t.OccurredAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append([]core.Transaction{t}, s.txs...)
	return t, nil
}

// All returns a snapshot copy of the sequence, newest first.
func (s *Store) All(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

func (s *Store) Accounts(_ context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *Store) Goals(_ context.Context) ([]core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Goal, len(s.goals))
	copy(out, s.goals)
	return out, nil
}
