// Package csvstore implements the storage.Storage interface on top of a
// single append-only CSV file — the system of record for registrations.
//
// FILE FORMAT
// ───────────
// One header row, then one row per registration, columns in fixed order:
//
//	Receipt No, Timestamp, Scholar No, Student Name, Class, Exams, Total Amount
//
// The Exams column is a single field holding the selected exam names
// joined with ", ". That encoding is part of the store's external
// contract; the test suite guards that no reference exam name contains
// the delimiter.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aanand-mishra/examreg-api/internal/config"
	"github.com/aanand-mishra/examreg-api/internal/receipt"
	"github.com/aanand-mishra/examreg-api/internal/storage"
	"github.com/aanand-mishra/examreg-api/internal/types"
)

// timestampLayout is the wire format of the Timestamp column.
const timestampLayout = "2006-01-02 15:04:05"

// examsSeparator joins the selected exam names into the Exams column.
const examsSeparator = ", "

// header is written exactly once, when the store file is created.
var header = []string{
	"Receipt No", "Timestamp", "Scholar No", "Student Name",
	"Class", "Exams", "Total Amount",
}

// Store is the CSV-backed implementation of storage.Storage.
//
// The mutex serializes the count → allocate → append sequence of
// CreateRegistration. Without it, two near-simultaneous submissions
// would read the same row count and collide on the same receipt number.
// The lock closes that race for every writer inside this process; a
// second process appending to the same file remains unsupported.
type Store struct {
	path   string
	prefix string

	mu sync.Mutex

	// now is stubbed in tests to pin the allocation year and timestamp.
	now func() time.Time
}

// New returns a Store writing to cfg.StoragePath with cfg.ReceiptPrefix
// as the receipt number prefix. The file itself is created lazily on
// the first append, so a freshly configured service with no
// registrations yet reads back as empty rather than failing.
func New(cfg *config.Config) *Store {
	return &Store{
		path:   cfg.StoragePath,
		prefix: cfg.ReceiptPrefix,
		now:    time.Now,
	}
}

// CreateRegistration allocates the next receipt number and appends the
// record, all under one lock.
//
// The sequence is derived from the total row count plus one, while the
// receipt text embeds the current year — so the numeric suffix does NOT
// reset at year boundaries despite looking year-scoped. That is the
// documented numbering behaviour of this system; do not "fix" it here
// without a coordinated decision, or existing receipt numbers could be
// re-issued.
func (s *Store) CreateRegistration(scholarNo, studentName, class string, exams []string, totalAmount int) (types.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readAll()
	if err != nil {
		return types.Registration{}, fmt.Errorf("CreateRegistration: %w", err)
	}

	now := s.now()
	rec := types.Registration{
		ReceiptNo:   receipt.Format(s.prefix, now.Year(), len(existing)+1).String(),
		Timestamp:   now.Format(timestampLayout),
		ScholarNo:   scholarNo,
		StudentName: studentName,
		Class:       class,
		Exams:       exams,
		TotalAmount: totalAmount,
	}

	if err := s.append(rec); err != nil {
		return types.Registration{}, fmt.Errorf("CreateRegistration: %w", err)
	}

	return rec, nil
}

// GetRegistrations returns every persisted registration in file order.
func (s *Store) GetRegistrations() ([]types.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.readAll()
	if err != nil {
		return nil, fmt.Errorf("GetRegistrations: %w", err)
	}
	return recs, nil
}

// FindRegistrations returns the registrations whose Scholar No OR
// Receipt No string-equals the query, preserving store order. A row can
// match at most once, so the result carries no duplicates.
func (s *Store) FindRegistrations(query string) ([]types.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.readAll()
	if err != nil {
		return nil, fmt.Errorf("FindRegistrations: %w", err)
	}

	matches := make([]types.Registration, 0)
	for _, rec := range recs {
		if rec.ScholarNo == query || rec.ReceiptNo == query {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// GetRegistrationByReceiptNo returns the registration carrying the
// given receipt number, or storage.ErrReceiptNotFound.
func (s *Store) GetRegistrationByReceiptNo(receiptNo string) (types.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.readAll()
	if err != nil {
		return types.Registration{}, fmt.Errorf("GetRegistrationByReceiptNo: %w", err)
	}

	for _, rec := range recs {
		if rec.ReceiptNo == receiptNo {
			return rec, nil
		}
	}
	return types.Registration{}, storage.ErrReceiptNotFound
}

// readAll loads the whole store file. Callers must hold s.mu.
//
// An absent file is a normal state (no registrations yet) and yields an
// empty slice with a nil error. Every other failure — permissions, a
// short row, a non-numeric amount — is a real error and is surfaced,
// not silently degraded to "no records".
func (s *Store) readAll() ([]types.Registration, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.Registration{}, nil
		}
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}

	recs := make([]types.Registration, 0, max(len(rows)-1, 0))
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		rec, err := unmarshalRow(row)
		if err != nil {
			return nil, fmt.Errorf("parse store row %d: %w", i+1, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// append writes one record, creating the containing directory and the
// file (with its header row) when absent. Callers must hold s.mu.
func (s *Store) append(rec types.Registration) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	// O_APPEND keeps each row write a single atomic append; the header
	// is only needed when O_CREATE actually created the file.
	_, statErr := os.Stat(s.path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open store for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write store header: %w", err)
		}
	}
	if err := w.Write(marshalRow(rec)); err != nil {
		return fmt.Errorf("write store row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush store: %w", err)
	}
	return nil
}

func marshalRow(rec types.Registration) []string {
	return []string{
		rec.ReceiptNo,
		rec.Timestamp,
		rec.ScholarNo,
		rec.StudentName,
		rec.Class,
		strings.Join(rec.Exams, examsSeparator),
		strconv.Itoa(rec.TotalAmount),
	}
}

func unmarshalRow(row []string) (types.Registration, error) {
	if len(row) != len(header) {
		return types.Registration{}, fmt.Errorf("expected %d columns, got %d", len(header), len(row))
	}

	total, err := strconv.Atoi(row[6])
	if err != nil {
		return types.Registration{}, fmt.Errorf("total amount: %w", err)
	}

	return types.Registration{
		ReceiptNo:   row[0],
		Timestamp:   row[1],
		ScholarNo:   row[2],
		StudentName: row[3],
		Class:       row[4],
		Exams:       strings.Split(row[5], examsSeparator),
		TotalAmount: total,
	}, nil
}
