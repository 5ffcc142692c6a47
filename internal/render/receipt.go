// Package render produces the printable examination registration
// receipt. The layout is fixed: letterhead, receipt number, a student &
// family details grid, the fee line-item table with a grand-total row,
// the amount in words, and two signature lines. There is no branching
// beyond iterating the line items.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/aanand-mishra/examreg-api/internal/types"
)

// ReceiptData carries everything the template needs. The caller
// resolves students and prices; the renderer only places fields.
type ReceiptData struct {
	Letterhead string
	ReceiptNo  string
	Student    types.Student
	// RegDate is the registration date shown in the details grid,
	// already formatted for display (e.g. "14-Mar-2026").
	RegDate    string
	Items      []types.LineItem
	Total      int
	TotalWords string
}

// Receipt renders the registration receipt and returns the PDF bytes.
func Receipt(data ReceiptData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Page border.
	pdf.Rect(5, 5, 200, 287, "D")

	// Letterhead.
	pdf.SetY(15)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, data.Letterhead, "", 1, "C", false, 0, "")

	pdf.SetY(45)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, fmt.Sprintf("Receipt No: %s", data.ReceiptNo), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "EXAMINATION REGISTRATION RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Student & family details grid. Each row is a label/value pair on
	// the left and another on the right, boxed with shared borders.
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, " STUDENT & FAMILY DETAILS", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	detailsRow(pdf, " Student Name:", data.Student.Name, " Scholar No:", data.Student.ScholarNo)
	detailsRow(pdf, " Class / Sec:",
		fmt.Sprintf("%s / %s", data.Student.Class, data.Student.Section),
		" Reg. Date:", data.RegDate)
	detailsRow(pdf, " Father's Name:", data.Student.FatherName, " Father Mob:", data.Student.FatherMobile)
	detailsRow(pdf, " Mother's Name:", data.Student.MotherName, " Mother Mob:", data.Student.MotherMobile)
	pdf.Ln(8)

	// Fee table.
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 10, " Exam Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 10, " Amount (INR)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range data.Items {
		pdf.CellFormat(140, 10, fmt.Sprintf(" %s", item.ExamName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 10, fmt.Sprintf("%d.00", item.Fee), "1", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(140, 10, " GRAND TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 10, fmt.Sprintf("Rs. %d.00", data.Total), "1", 1, "C", false, 0, "")

	// Legal amount line.
	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(190, 8, fmt.Sprintf("Amount in words: Rupees %s", data.TotalWords), "", "L", false)

	// Signature block, anchored to the bottom of the page.
	pdf.SetY(-40)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(95, 10, "__________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, 10, "__________________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(95, 5, "Authorized Signatory", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, 5, "Parent Signature", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt %s: %w", data.ReceiptNo, err)
	}
	return buf.Bytes(), nil
}

// detailsRow draws one row of the details grid: two label cells and two
// value cells, with the outer borders closed on each side.
func detailsRow(pdf *fpdf.Fpdf, leftLabel, leftValue, rightLabel, rightValue string) {
	pdf.CellFormat(35, 8, leftLabel, "LTB", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, leftValue, "RTB", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, rightLabel, "LTB", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, rightValue, "RTB", 1, "L", false, 0, "")
}
