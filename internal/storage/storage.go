// Package storage defines the Storage interface — the contract the
// registration store must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care how registrations are
// persisted. By depending only on this interface:
//
//   - Switching the backing store = implement the interface for the new
//     backend, change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass anything that satisfies the interface.
package storage

import (
	"errors"

	"github.com/aanand-mishra/examreg-api/internal/types"
)

// ErrReceiptNotFound is returned when no persisted registration carries
// the requested receipt number.
var ErrReceiptNotFound = errors.New("no registration found for that receipt number")

// Storage is the registration store contract. The store is append-only:
// registrations are immutable once written, so there are no update or
// delete operations.
type Storage interface {
	// CreateRegistration allocates the next receipt number, stamps the
	// record with the current time, and appends it. The store is the
	// sole point of numbering: callers never pass a receipt number in.
	CreateRegistration(scholarNo, studentName, class string, exams []string, totalAmount int) (types.Registration, error)

	// GetRegistrations returns every persisted registration in file
	// order (append order = receipt-number order). An absent store file
	// means no records yet: empty slice, nil error. Any other read or
	// parse failure is returned as an error, never masked as "empty".
	GetRegistrations() ([]types.Registration, error)

	// FindRegistrations returns the registrations whose scholar number
	// OR receipt number string-equals the query, in store order, with
	// no duplicates.
	FindRegistrations(query string) ([]types.Registration, error)

	// GetRegistrationByReceiptNo returns the single registration with
	// the given receipt number, or ErrReceiptNotFound.
	GetRegistrationByReceiptNo(receiptNo string) (types.Registration, error)
}
