package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/ledger"
)

// RecurringProcessor materializes recurring templates into concrete
// expense transactions when their cadence says they are due. Templates
// are the ledger entries tagged recurring; materialized expenses go back
// through the normal Submit path so they get classified and synced like
// any other entry.
type RecurringProcessor struct {
	lister  ledger.TransactionLister
	service *TransactionService

	mu      sync.Mutex
	lastRun map[string]time.Time // template id -> last materialization
}

func NewRecurringProcessor(lister ledger.TransactionLister, service *TransactionService) *RecurringProcessor {
	return &RecurringProcessor{
		lister:  lister,
		service: service,
		lastRun: make(map[string]time.Time),
	}
}

// ProcessDue walks all recurring templates and submits an expense for
// each one that is due. Returns the number of expenses created.
func (p *RecurringProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	if p.lister == nil || p.service == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	txs, err := p.lister.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	processed := 0
	for _, tmpl := range txs {
		if !tmpl.Recurring {
			continue
		}

		checker, err := CheckerFor(tmpl.Frequency)
		if err != nil {
			slog.WarnContext(ctx, "Skipping template with unknown frequency",
				"id", tmpl.ID, "frequency", tmpl.Frequency)
			continue
		}

		p.mu.Lock()
		last := p.lastRun[tmpl.ID]
		p.mu.Unlock()
		if last.IsZero() {
			// The template entry itself already hit the ledger on the day
			// it was created; start counting from there.
			last = tmpl.OccurredAt
		}

		if !checker.IsDue(last, now, tmpl.OccurredAt) {
			continue
		}

		_, err = p.service.Submit(ctx, SubmitRequest{
			Description: baseDescription(tmpl),
			Amount:      tmpl.Amount,
			Kind:        core.Expense,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to materialize recurring expense",
				"template_id", tmpl.ID,
				"description", tmpl.Description,
				"error", err)
			continue
		}

		p.mu.Lock()
		p.lastRun[tmpl.ID] = now
		p.mu.Unlock()
		processed++

		slog.InfoContext(ctx, "Materialized recurring expense",
			"template_id", tmpl.ID,
			"description", tmpl.Description,
			"amount_cents", tmpl.Amount.Cents)
	}

	return processed, nil
}

// baseDescription strips the " (frequency)" suffix the submit path adds
// to recurring templates.
func baseDescription(t core.Transaction) string {
	suffix := fmt.Sprintf(" (%s)", t.Frequency)
	return strings.TrimSuffix(t.Description, suffix)
}
