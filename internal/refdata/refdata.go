// Package refdata loads and serves the two read-only reference datasets:
// the student table and the exam price list. Both come from XLSX
// workbooks, are loaded once at process start, and are cached in memory
// for the process lifetime. Nothing in this system ever writes them.
package refdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aanand-mishra/examreg-api/internal/config"
	"github.com/aanand-mishra/examreg-api/internal/types"
)

// Expected column headers. Resolution is by header name, not position,
// so reordering columns in the workbook is harmless.
const (
	colScholarNo   = "scholar_No"
	colStudentName = "student_name"
	colClass       = "class"
	colSection     = "section"
	colFatherName  = "father_name"
	colFatherMob   = "father_mob"
	colMotherName  = "mother_name"
	colMotherMob   = "mother_mob"

	colExamName = "exam_name"
	colExamFee  = "exam_fee"
)

// RefData is the in-memory view of both reference datasets.
type RefData struct {
	students map[string]types.Student // keyed by scholar number
	exams    []types.ExamOption       // workbook order, drives the form
	examFees map[string]int           // keyed by exam name
}

// New builds a RefData from already-decoded tables. Loaders use it, and
// tests can construct reference data without touching the filesystem.
func New(students []types.Student, exams []types.ExamOption) *RefData {
	r := &RefData{
		students: make(map[string]types.Student, len(students)),
		exams:    exams,
		examFees: make(map[string]int, len(exams)),
	}
	for _, s := range students {
		r.students[s.ScholarNo] = s
	}
	for _, e := range exams {
		r.examFees[e.Name] = e.Fee
	}
	return r
}

// Load reads both workbooks named in the config. Any failure here is
// fatal at startup — there is no degraded mode without reference data.
func Load(cfg *config.Config) (*RefData, error) {
	students, err := LoadStudents(cfg.StudentDataPath)
	if err != nil {
		return nil, fmt.Errorf("refdata.Load: %w", err)
	}

	exams, err := LoadExamOptions(cfg.ExamOptionsPath)
	if err != nil {
		return nil, fmt.Errorf("refdata.Load: %w", err)
	}

	return New(students, exams), nil
}

// StudentByScholarNo returns the reference student with the given
// scholar number. Exact match only — no fuzzy matching.
func (r *RefData) StudentByScholarNo(scholarNo string) (types.Student, bool) {
	s, ok := r.students[strings.TrimSpace(scholarNo)]
	return s, ok
}

// Exams returns the full price list in workbook order.
func (r *RefData) Exams() []types.ExamOption {
	return r.exams
}

// LineItems resolves a set of selected exam names to priced line items
// plus their total. The order of the returned items follows the price
// list (as the original form rendered its invoice), not the selection
// order, and duplicate selections collapse to one line item. An exam
// name not on the price list is an error.
func (r *RefData) LineItems(selected []string) ([]types.LineItem, int, error) {
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		if _, ok := r.examFees[name]; !ok {
			return nil, 0, fmt.Errorf("unknown exam option: %q", name)
		}
		want[name] = true
	}

	items := make([]types.LineItem, 0, len(want))
	total := 0
	for _, opt := range r.exams {
		if want[opt.Name] {
			items = append(items, types.LineItem{ExamName: opt.Name, Fee: opt.Fee})
			total += opt.Fee
		}
	}
	return items, total, nil
}

// LoadStudents reads the student reference workbook: first sheet, one
// header row, one student per row. Scholar numbers are normalized to
// trimmed strings so numeric cells compare equal to query strings.
func LoadStudents(path string) ([]types.Student, error) {
	rows, idx, err := openSheet(path, []string{
		colScholarNo, colStudentName, colClass, colSection,
		colFatherName, colFatherMob, colMotherName, colMotherMob,
	})
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	students := make([]types.Student, 0, len(rows))
	for _, row := range rows {
		scholarNo := strings.TrimSpace(cell(row, idx[colScholarNo]))
		if scholarNo == "" {
			// Trailing blank rows are common in hand-edited workbooks.
			continue
		}
		students = append(students, types.Student{
			ScholarNo:    scholarNo,
			Name:         cell(row, idx[colStudentName]),
			Class:        cell(row, idx[colClass]),
			Section:      cell(row, idx[colSection]),
			FatherName:   cell(row, idx[colFatherName]),
			FatherMobile: cell(row, idx[colFatherMob]),
			MotherName:   cell(row, idx[colMotherName]),
			MotherMobile: cell(row, idx[colMotherMob]),
		})
	}
	return students, nil
}

// LoadExamOptions reads the price list workbook: first sheet, one
// header row, one exam option per row. Fees must be non-negative
// integers — amounts are whole currency units.
func LoadExamOptions(path string) ([]types.ExamOption, error) {
	rows, idx, err := openSheet(path, []string{colExamName, colExamFee})
	if err != nil {
		return nil, fmt.Errorf("load exam options: %w", err)
	}

	seen := make(map[string]bool, len(rows))
	exams := make([]types.ExamOption, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(cell(row, idx[colExamName]))
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("load exam options: duplicate exam name %q (row %d)", name, i+2)
		}
		seen[name] = true

		fee, err := strconv.Atoi(cell(row, idx[colExamFee]))
		if err != nil {
			return nil, fmt.Errorf("load exam options: fee for %q (row %d): %w", name, i+2, err)
		}
		if fee < 0 {
			return nil, fmt.Errorf("load exam options: negative fee for %q (row %d)", name, i+2)
		}

		exams = append(exams, types.ExamOption{Name: name, Fee: fee})
	}
	return exams, nil
}

// openSheet opens the first sheet of a workbook, resolves the wanted
// header names to column indices from the first row, and returns the
// data rows.
func openSheet(path string, wantCols []string) ([][]string, map[string]int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("workbook %s: sheet %q is empty", path, sheet)
	}

	idx := make(map[string]int, len(wantCols))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range wantCols {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("workbook %s: missing column %q", path, col)
		}
	}

	return rows[1:], idx, nil
}

// cell returns row[i], tolerating the short rows excelize produces when
// trailing cells are empty.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
