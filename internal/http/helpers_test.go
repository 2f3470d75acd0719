package http

import "testing"

func TestFormatDollars(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{550, "$5.50"},
		{8999, "$89.99"},
		{100_000, "$1000.00"},
		{-1250, "-$12.50"},
	}
	for _, tc := range cases {
		if got := formatDollars(tc.cents); got != tc.want {
			t.Errorf("formatDollars(%d) = %s, want %s", tc.cents, got, tc.want)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"line\x00feed", "linefeed"},
		{"tabs\tkept", "tabs\tkept"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRateLimiterAllows(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < 60; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("1.2.3.4") {
		t.Error("request 61 within a minute should be rejected")
	}
	if !rl.allow("5.6.7.8") {
		t.Error("different client should not share the window")
	}
}
