package refdata

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/aanand-mishra/examreg-api/internal/config"
	"github.com/aanand-mishra/examreg-api/internal/types"
)

// writeWorkbook authors a single-sheet XLSX fixture with the given rows
// (header first), the same shape the production workbooks have.
func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving fixture workbook: %v", err)
	}
}

func writeStudentWorkbook(t *testing.T, path string) {
	writeWorkbook(t, path, [][]interface{}{
		{"scholar_No", "student_name", "class", "section",
			"father_name", "father_mob", "mother_name", "mother_mob"},
		// Numeric scholar number on purpose: must still load as "4639".
		{4639, "Asha Rao", "8", "B", "Vikram Rao", "9876500001", "Meera Rao", "9876500002"},
		{"5120", "Rohan Mehta", "6", "A", "Anil Mehta", "9876500003", "Kavita Mehta", "9876500004"},
	})
}

func writeOptionsWorkbook(t *testing.T, path string) {
	writeWorkbook(t, path, [][]interface{}{
		{"exam_name", "exam_fee"},
		{"Science", 500},
		{"Math", 300},
		{"General Knowledge", 400},
	})
}

func TestLoadStudents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stud_data.xlsx")
	writeStudentWorkbook(t, path)

	students, err := LoadStudents(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("loaded %d students, want 2", len(students))
	}

	want := types.Student{
		ScholarNo:    "4639",
		Name:         "Asha Rao",
		Class:        "8",
		Section:      "B",
		FatherName:   "Vikram Rao",
		FatherMobile: "9876500001",
		MotherName:   "Meera Rao",
		MotherMobile: "9876500002",
	}
	if !reflect.DeepEqual(students[0], want) {
		t.Errorf("first student = %+v, want %+v", students[0], want)
	}
}

func TestLoadStudents_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stud_data.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"scholar_No", "student_name"},
		{"4639", "Asha Rao"},
	})

	if _, err := LoadStudents(path); err == nil {
		t.Fatal("expected an error for a workbook missing columns, got nil")
	}
}

func TestLoadExamOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.xlsx")
	writeOptionsWorkbook(t, path)

	exams, err := LoadExamOptions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []types.ExamOption{
		{Name: "Science", Fee: 500},
		{Name: "Math", Fee: 300},
		{Name: "General Knowledge", Fee: 400},
	}
	if !reflect.DeepEqual(exams, want) {
		t.Errorf("exams = %+v, want %+v", exams, want)
	}
}

func TestLoadExamOptions_RejectsDuplicateNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"exam_name", "exam_fee"},
		{"Science", 500},
		{"Science", 600},
	})

	if _, err := LoadExamOptions(path); err == nil {
		t.Fatal("expected an error for duplicate exam names, got nil")
	}
}

func TestLoadExamOptions_NoNameContainsTheStoreDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.xlsx")
	writeOptionsWorkbook(t, path)

	exams, err := LoadExamOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	// The store joins selections with ", "; an exam name containing the
	// delimiter would make the Exams column ambiguous on read-back.
	for _, e := range exams {
		if strings.Contains(e.Name, ", ") {
			t.Errorf("exam name %q contains the reserved delimiter \", \"", e.Name)
		}
	}
}

func TestStudentByScholarNo(t *testing.T) {
	ref := New(
		[]types.Student{{ScholarNo: "4639", Name: "Asha Rao", Class: "8", Section: "B"}},
		nil,
	)

	got, ok := ref.StudentByScholarNo("4639")
	if !ok {
		t.Fatal("expected scholar 4639 to be found")
	}
	if got.Name != "Asha Rao" {
		t.Errorf("name = %q, want Asha Rao", got.Name)
	}

	// Exact match only.
	if _, ok := ref.StudentByScholarNo("463"); ok {
		t.Error("partial scholar number must not match")
	}
	if _, ok := ref.StudentByScholarNo("0000"); ok {
		t.Error("unknown scholar number must not match")
	}
}

func TestLineItems(t *testing.T) {
	ref := New(nil, []types.ExamOption{
		{Name: "Science", Fee: 500},
		{Name: "Math", Fee: 300},
		{Name: "General Knowledge", Fee: 400},
	})

	t.Run("selection priced in price-list order", func(t *testing.T) {
		// Selected out of order: the invoice follows the price list.
		items, total, err := ref.LineItems([]string{"Math", "Science"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []types.LineItem{
			{ExamName: "Science", Fee: 500},
			{ExamName: "Math", Fee: 300},
		}
		if !reflect.DeepEqual(items, want) {
			t.Errorf("items = %+v, want %+v", items, want)
		}
		if total != 800 {
			t.Errorf("total = %d, want 800", total)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		items, total, err := ref.LineItems([]string{"Math", "Math"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || total != 300 {
			t.Errorf("duplicate selection priced as %+v (total %d), want one Math line at 300", items, total)
		}
	})

	t.Run("unknown exam rejected", func(t *testing.T) {
		if _, _, err := ref.LineItems([]string{"Astrology"}); err == nil {
			t.Fatal("expected an error for an exam not on the price list, got nil")
		}
	})
}

func TestLoad_ComposesBothWorkbooks(t *testing.T) {
	dir := t.TempDir()
	studPath := filepath.Join(dir, "stud_data.xlsx")
	optPath := filepath.Join(dir, "options.xlsx")
	writeStudentWorkbook(t, studPath)
	writeOptionsWorkbook(t, optPath)

	ref, err := Load(&config.Config{
		StudentDataPath: studPath,
		ExamOptionsPath: optPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ref.StudentByScholarNo("5120"); !ok {
		t.Error("expected scholar 5120 to be loaded")
	}
	if len(ref.Exams()) != 3 {
		t.Errorf("loaded %d exam options, want 3", len(ref.Exams()))
	}
}
