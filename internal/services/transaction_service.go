// Package services carries the orchestration logic between the HTTP
// surface, the classifier, the ledger backends and the sync queue.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/classify"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/ledger"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/stats"
)

// SyncPublisher pushes transaction-created events to the export queue.
type SyncPublisher interface {
	PublishTransactionCreated(ctx context.Context, id string) error
}

// TransactionService is the engine's external interface: submissions go
// through Submit, reporting goes through Summary and Insights.
type TransactionService struct {
	writer    ledger.TransactionWriter
	lister    ledger.TransactionLister
	accounts  ledger.AccountReader
	goals     ledger.GoalReader
	publisher SyncPublisher
}

func NewTransactionService(w ledger.TransactionWriter, l ledger.TransactionLister, a ledger.AccountReader, g ledger.GoalReader, p SyncPublisher) *TransactionService {
	return &TransactionService{
		writer:    w,
		lister:    l,
		accounts:  a,
		goals:     g,
		publisher: p,
	}
}

// SubmitRequest is a user submission before the store fills in id and
// timestamp. Category is optional: when absent the classifier decides.
type SubmitRequest struct {
	Description string
	Amount      core.Money
	Category    core.Category
	Kind        core.Kind
	Recurring   bool
	Frequency   core.Frequency
}

// Submit validates the request, resolves the category and appends the
// transaction. Validation failures reject the whole submission; nothing
// is written. A failed sync publish is logged but never fails the append.
func (s *TransactionService) Submit(ctx context.Context, req SubmitRequest) (core.Transaction, error) {
	desc := strings.TrimSpace(req.Description)

	t := core.Transaction{
		Description: desc,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Recurring:   req.Recurring,
		Frequency:   req.Frequency,
	}

	switch {
	case req.Kind == core.Income:
		t.Category = core.CategoryIncome
	case req.Recurring:
		// Recurring templates land in the ledger tagged recurring, with
		// the cadence appended to the description.
		t.Category = core.CategoryRecurring
		if err := req.Frequency.Validate(); err != nil {
			return core.Transaction{}, err
		}
		t.Description = fmt.Sprintf("%s (%s)", desc, req.Frequency)
	case req.Category != "":
		// An explicit category always takes precedence over the classifier,
		// but it must come from the closed set.
		if !req.Category.Valid() {
			return core.Transaction{}, core.ErrUnknownCategory
		}
		t.Category = req.Category
	default:
		t.Category = classify.Classify(desc)
	}

	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	stored, err := s.writer.Append(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", stored.ID,
		"category", stored.Category,
		"kind", stored.Kind,
		"amount_cents", stored.Amount.Cents)

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionCreated(ctx, stored.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sync message",
				"id", stored.ID, "error", err)
			// The append already succeeded; sync catches up later.
		}
	}

	return stored, nil
}

// Transactions returns the full ledger, newest first.
func (s *TransactionService) Transactions(ctx context.Context) ([]core.Transaction, error) {
	return s.lister.All(ctx)
}

// Summary recomputes all derived statistics from the full ledger.
func (s *TransactionService) Summary(ctx context.Context, now time.Time) (core.Summary, error) {
	txs, err := s.lister.All(ctx)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	return stats.Summarize(txs, now), nil
}

// Insights derives the presentation values from the current summary and
// goal set.
func (s *TransactionService) Insights(ctx context.Context, now time.Time) (core.Insights, error) {
	sum, err := s.Summary(ctx, now)
	if err != nil {
		return core.Insights{}, err
	}
	goals, err := s.goals.Goals(ctx)
	if err != nil {
		return core.Insights{}, fmt.Errorf("list goals: %w", err)
	}
	return stats.DeriveInsights(sum, goals), nil
}

// Accounts returns the static account set.
func (s *TransactionService) Accounts(ctx context.Context) ([]core.Account, error) {
	return s.accounts.Accounts(ctx)
}

// Goals returns the saving goals.
func (s *TransactionService) Goals(ctx context.Context) ([]core.Goal, error) {
	return s.goals.Goals(ctx)
}
