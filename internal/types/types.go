// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, refdata, and the renderer can all import types
// without depending on each other.
package types

// Student is a read-only reference entity loaded from the student
// workbook at startup. It is never mutated by this system; the scholar
// number is the lookup key and is always handled as a string, even when
// the workbook stores it as a number.
type Student struct {
	ScholarNo    string `json:"scholar_no"`
	Name         string `json:"student_name"`
	Class        string `json:"class"`
	Section      string `json:"section"`
	FatherName   string `json:"father_name"`
	FatherMobile string `json:"father_mob"`
	MotherName   string `json:"mother_name"`
	MotherMobile string `json:"mother_mob"`
}

// ExamOption is one entry of the fixed price list, loaded from the
// options workbook. The exam name is the unique key.
type ExamOption struct {
	Name string `json:"exam_name"`
	Fee  int    `json:"exam_fee"`
}

// LineItem is one (exam name, fee) pair contributing to a registration's
// total. A registration's invoice is an ordered list of these.
type LineItem struct {
	ExamName string `json:"exam_name"`
	Fee      int    `json:"exam_fee"`
}

// Registration is the only entity this system creates. It is immutable
// once written: created on submission, read back for display, search,
// and re-print — never updated or deleted.
//
// ReceiptNo has the form PREFIX-YEAR-SEQ (e.g. "DPS-2026-001") and is
// unique within the store. Timestamp uses the layout
// "2006-01-02 15:04:05".
type Registration struct {
	ReceiptNo   string   `json:"receipt_no"`
	Timestamp   string   `json:"timestamp"`
	ScholarNo   string   `json:"scholar_no"`
	StudentName string   `json:"student_name"`
	Class       string   `json:"class"`
	Exams       []string `json:"exams"`
	TotalAmount int      `json:"total_amount"`
}

// RegistrationRequest is the payload for POST /api/registrations.
//
// The validate tags are checked by go-playground/validator before any
// store mutation happens: a request with no exams selected is rejected
// while the store is still untouched.
type RegistrationRequest struct {
	ScholarNo string   `json:"scholar_no" validate:"required"`
	Exams     []string `json:"exams"      validate:"required,min=1,dive,required"`
}
