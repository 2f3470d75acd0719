package core

import (
	"errors"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"5.50", 550, false},
		{"89.99", 8999, false},
		{"12,34", 1234, false},
		{"7", 700, false},
		{".5", 50, false},
		{"1.005", 101, false}, // rounds half up
		{"1.004", 100, false},
		{"1.9999", 200, false},
		{" 3.25 ", 325, false},
		{"", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"12a.50", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDecimalToCents(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseDecimalToCents(%q) err = %v, want ErrInvalidAmount", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimalToCents(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestMoneyDollars(t *testing.T) {
	if got := (Money{Cents: 8999}).Dollars(); got != 89.99 {
		t.Errorf("Dollars() = %v, want 89.99", got)
	}
	if got := (Money{Cents: 550}).Add(Money{Cents: 450}); got.Cents != 1000 {
		t.Errorf("Add() = %d, want 1000", got.Cents)
	}
}
