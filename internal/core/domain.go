package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

type (
	// Kind tells income and expense transactions apart.
	Kind string

	// Frequency is the repetition cadence of a recurring expense template.
	Frequency string

	Money struct {
		Cents int64
	}

	// Transaction is a single immutable ledger entry. The store assigns
	// ID and OccurredAt at append time; everything else comes from the caller.
	Transaction struct {
		ID          string
		Description string
		Amount      Money
		Category    Category
		Kind        Kind
		OccurredAt  time.Time
		Recurring   bool
		Frequency   Frequency
	}

	// Account is static display data. Balances are not derived from the
	// ledger and are never mutated by transactions.
	Account struct {
		ID      string
		Name    string
		Type    AccountType
		Balance Money
	}

	AccountType string

	// Goal tracks saving progress toward a target. The Current/Target
	// ratio is kept raw; clamping happens only at display time.
	Goal struct {
		ID       string
		Title    string
		Target   Money
		Current  Money
		Category string
	}
)

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
	Cash     AccountType = "cash"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidFrequency = errors.New("invalid frequency")
)

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidKind
	}
}

func (f Frequency) Validate() error {
	switch f {
	case Daily, Weekly, Monthly:
		return nil
	default:
		return ErrInvalidFrequency
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if !t.Category.Valid() {
		return ErrUnknownCategory
	}
	if t.Recurring {
		if err := t.Frequency.Validate(); err != nil {
			return err
		}
	}
	return nil
}
