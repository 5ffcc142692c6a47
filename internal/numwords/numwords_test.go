package numwords

import (
	"errors"
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "Zero"},
		{1, "One Only"},
		{7, "Seven Only"},
		{10, "Ten Only"},
		{14, "Fourteen Only"},
		{19, "Nineteen Only"},
		{20, "Twenty Only"},
		{47, "Forty Seven Only"},
		{90, "Ninety Only"},
		{100, "One Hundred Only"},
		{105, "One Hundred Five Only"},
		{300, "Three Hundred Only"},
		{800, "Eight Hundred Only"},
		{999, "Nine Hundred Ninety Nine Only"},
		{1000, "One Thousand Only"},
		{1230, "One Thousand Two Hundred Thirty Only"},
		{5000, "Five Thousand Only"},
		{12345, "Twelve Thousand Three Hundred Forty Five Only"},
	}

	for _, tc := range cases {
		got, err := Words(tc.n)
		if err != nil {
			t.Fatalf("Words(%d) returned unexpected error: %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("Words(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestWords_PositiveAmountsEndWithOnly(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		got, err := Words(n)
		if err != nil {
			t.Fatalf("Words(%d) returned unexpected error: %v", n, err)
		}
		if !strings.HasSuffix(got, " Only") {
			t.Fatalf("Words(%d) = %q, expected the Only suffix", n, got)
		}
		if strings.Contains(got, "  ") {
			t.Fatalf("Words(%d) = %q contains a double space", n, got)
		}
	}
}

func TestWords_NegativeRejected(t *testing.T) {
	_, err := Words(-1)
	if err == nil {
		t.Fatal("expected error for negative amount, got nil")
	}
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}
