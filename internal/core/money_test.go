package core

import "testing"

func TestParseValueToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"100", 10000, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0", 0, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-2.50", -250, true},
		{"+3", 300, true},
		{"abc", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"1.2.3", 0, false},
		{"12a", 0, false},
		{"-", 0, false},
		{".", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseValueToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{60000, "600"},
		{1250, "12.5"},
		{1, "0.01"},
		{0, "0"},
		{-250, "-2.5"},
		{-5, "-0.05"},
		{10101, "101.01"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("Cents=%d: got %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	b, err := (Money{Cents: 1250}).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(b) != "12.5" {
		t.Fatalf("got %q, want 12.5", string(b))
	}
}
