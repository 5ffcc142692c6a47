package receipt

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		prefix string
		year   int
		seq    int
		want   string
	}{
		{"DPS", 2025, 1, "DPS-2025-001"},
		{"DPS", 2025, 12, "DPS-2025-012"},
		{"DPS", 2025, 106, "DPS-2025-106"},
		{"DPS", 2026, 999, "DPS-2026-999"},
		// No cap: the sequence simply outgrows the padding.
		{"DPS", 2026, 1000, "DPS-2026-1000"},
		{"KV", 2026, 5, "KV-2026-005"},
	}

	for _, tc := range cases {
		got := Format(tc.prefix, tc.year, tc.seq)
		if got.String() != tc.want {
			t.Errorf("Format(%q, %d, %d) = %q, want %q",
				tc.prefix, tc.year, tc.seq, got, tc.want)
		}
	}
}
