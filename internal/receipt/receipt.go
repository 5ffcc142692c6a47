// Package receipt defines the receipt number format. Allocation itself
// (deciding the next sequence) is owned by the registration store, which
// is the sole point of numbering; this package only formats.
package receipt

import "fmt"

// No is a receipt number, the unique human-facing identifier of one
// registration, e.g. "DPS-2026-001".
type No string

func (n No) String() string {
	return string(n)
}

// Format renders a receipt number as PREFIX-YEAR-SEQ with the sequence
// zero-padded to width 3. There is no upper cap: sequence 1000 renders
// as "1000".
func Format(prefix string, year, seq int) No {
	return No(fmt.Sprintf("%s-%d-%03d", prefix, year, seq))
}
