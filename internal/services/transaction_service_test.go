package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/ledger/memory"
)

func newTestService() (*TransactionService, *memory.Store) {
	store := memory.NewWithDefaults()
	return NewTransactionService(store, store, store, store, nil), store
}

func TestSubmitClassifiesWhenCategoryAbsent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tx, err := svc.Submit(ctx, SubmitRequest{
		Description: "Coffee at Starbucks",
		Amount:      core.Money{Cents: 550},
		Kind:        core.Expense,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if tx.Category != core.CategoryFood {
		t.Errorf("category = %q, want food", tx.Category)
	}
	if tx.ID == "" || tx.OccurredAt.IsZero() {
		t.Error("expected store-assigned id and timestamp")
	}
}

func TestSubmitExplicitCategoryWins(t *testing.T) {
	svc, _ := newTestService()

	// "coffee" would classify as food, but the explicit label wins.
	tx, err := svc.Submit(context.Background(), SubmitRequest{
		Description: "coffee table for the dorm",
		Amount:      core.Money{Cents: 4500},
		Category:    core.CategoryOther,
		Kind:        core.Expense,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if tx.Category != core.CategoryOther {
		t.Errorf("category = %q, want other", tx.Category)
	}
}

func TestSubmitIncomeForcesIncomeCategory(t *testing.T) {
	svc, _ := newTestService()

	tx, err := svc.Submit(context.Background(), SubmitRequest{
		Description: "Part-time job salary",
		Amount:      core.Money{Cents: 45000},
		Kind:        core.Income,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if tx.Category != core.CategoryIncome {
		t.Errorf("category = %q, want income", tx.Category)
	}
}

func TestSubmitRecurringTemplate(t *testing.T) {
	svc, _ := newTestService()

	tx, err := svc.Submit(context.Background(), SubmitRequest{
		Description: "Netflix subscription",
		Amount:      core.Money{Cents: 1599},
		Kind:        core.Expense,
		Recurring:   true,
		Frequency:   core.Monthly,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if tx.Category != core.CategoryRecurring {
		t.Errorf("category = %q, want recurring", tx.Category)
	}
	if !strings.HasSuffix(tx.Description, "(monthly)") {
		t.Errorf("description = %q, want frequency suffix", tx.Description)
	}
}

func TestSubmitRejections(t *testing.T) {
	cases := []struct {
		name string
		req  SubmitRequest
		want error
	}{
		{
			"empty description",
			SubmitRequest{Description: "   ", Amount: core.Money{Cents: 100}, Kind: core.Expense},
			core.ErrEmptyDescription,
		},
		{
			"zero amount",
			SubmitRequest{Description: "x", Kind: core.Expense},
			core.ErrInvalidAmount,
		},
		{
			"negative amount",
			SubmitRequest{Description: "x", Amount: core.Money{Cents: -100}, Kind: core.Expense},
			core.ErrInvalidAmount,
		},
		{
			"unknown explicit category",
			SubmitRequest{Description: "x", Amount: core.Money{Cents: 100}, Category: "gadgets", Kind: core.Expense},
			core.ErrUnknownCategory,
		},
		{
			"recurring without frequency",
			SubmitRequest{Description: "x", Amount: core.Money{Cents: 100}, Kind: core.Expense, Recurring: true},
			core.ErrInvalidFrequency,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newTestService()
			ctx := context.Background()
			if _, err := svc.Submit(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("Submit error = %v, want %v", err, tc.want)
			}
			// Rejection means no partial write.
			all, _ := store.All(ctx)
			if len(all) != 0 {
				t.Fatalf("store has %d entries after rejection, want 0", len(all))
			}
		})
	}
}

func TestServiceSummaryAndInsights(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mustSubmit := func(req SubmitRequest) {
		t.Helper()
		if _, err := svc.Submit(ctx, req); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	mustSubmit(SubmitRequest{Description: "salary", Amount: core.Money{Cents: 45000}, Kind: core.Income})
	mustSubmit(SubmitRequest{Description: "coffee", Amount: core.Money{Cents: 550}, Kind: core.Expense})
	mustSubmit(SubmitRequest{Description: "textbook", Amount: core.Money{Cents: 8999}, Kind: core.Expense})

	now := time.Now()
	sum, err := svc.Summary(ctx, now)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalIncome.Cents != 45000 {
		t.Errorf("TotalIncome = %d, want 45000", sum.TotalIncome.Cents)
	}
	if sum.TotalExpenses.Cents != 9549 {
		t.Errorf("TotalExpenses = %d, want 9549", sum.TotalExpenses.Cents)
	}

	ins, err := svc.Insights(ctx, now)
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(ins.GoalProgress) != 3 {
		t.Errorf("got %d goals, want 3 seeded goals", len(ins.GoalProgress))
	}
	if ins.Recommendation == "" {
		t.Error("expected a recommendation string")
	}
}
