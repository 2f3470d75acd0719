package core

import (
	"errors"
	"strings"
	"testing"
)

func validTransaction() Transaction {
	return Transaction{
		Description: "Lunch at cafe",
		Amount:      Money{Cents: 550},
		Category:    CategoryFood,
		Kind:        Expense,
	}
}

func TestTransactionValidate(t *testing.T) {
	cases := []struct {
		name    string
		mut     func(*Transaction)
		wantErr error
	}{
		{"valid", func(tx *Transaction) {}, nil},
		{"empty description", func(tx *Transaction) { tx.Description = "   " }, ErrEmptyDescription},
		{"zero amount", func(tx *Transaction) { tx.Amount.Cents = 0 }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount.Cents = -100 }, ErrInvalidAmount},
		{"bad kind", func(tx *Transaction) { tx.Kind = "transfer" }, ErrInvalidKind},
		{"bad category", func(tx *Transaction) { tx.Category = "crypto" }, ErrUnknownCategory},
		{"recurring needs frequency", func(tx *Transaction) { tx.Recurring = true }, ErrInvalidFrequency},
		{"recurring with frequency", func(tx *Transaction) {
			tx.Recurring = true
			tx.Frequency = Monthly
			tx.Category = CategoryRecurring
		}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mut(&tx)
			err := tx.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	t.Run("description too long", func(t *testing.T) {
		tx := validTransaction()
		tx.Description = strings.Repeat("x", 201)
		if tx.Validate() == nil {
			t.Fatal("expected error for 201-char description")
		}
	})
}

func TestCategoryValidAndLabel(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
		if c.Label() == "" {
			t.Errorf("%s has empty label", c)
		}
	}
	if Category("crypto").Valid() {
		t.Error("unknown category should be invalid")
	}
	if got := CategoryFood.Label(); got != "Food & Dining" {
		t.Errorf("food label = %s", got)
	}
}

func TestGoalDisplayPercent(t *testing.T) {
	cases := []struct {
		percent float64
		want    float64
	}{
		{62.5, 62.5},
		{150, 100},
		{-10, 0},
		{0, 0},
	}
	for _, tc := range cases {
		g := GoalProgress{Percent: tc.percent}
		if got := g.DisplayPercent(); got != tc.want {
			t.Errorf("DisplayPercent(%v) = %v, want %v", tc.percent, got, tc.want)
		}
	}
}
