// Package registration contains the HTTP handlers for the registration
// workflow: submitting a registration, viewing and searching the saved
// records, and printing or re-printing the PDF receipt.
//
// The original form held the current student and last receipt number in
// ambient session state between re-runs. Here every request carries its
// own data: handlers resolve the student and the price list per call,
// and the store is the only state that survives between requests.
package registration

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/examreg-api/internal/numwords"
	"github.com/aanand-mishra/examreg-api/internal/refdata"
	"github.com/aanand-mishra/examreg-api/internal/render"
	"github.com/aanand-mishra/examreg-api/internal/storage"
	"github.com/aanand-mishra/examreg-api/internal/types"
	"github.com/aanand-mishra/examreg-api/internal/utils/response"
)

// timestampLayout matches the store's Timestamp column; regDateLayout
// is the display form printed on receipts (e.g. "14-Mar-2026").
const (
	timestampLayout = "2006-01-02 15:04:05"
	regDateLayout   = "02-Jan-2006"
)

// CreateResponse is the 201 body for a successful submission. It
// carries everything the client needs to show the invoice summary
// without a second round trip.
type CreateResponse struct {
	Registration  types.Registration `json:"registration"`
	LineItems     []types.LineItem   `json:"line_items"`
	AmountInWords string             `json:"amount_in_words"`
}

// Create handles POST /api/registrations
//
// Request body (JSON):
//
//	{ "scholar_no": "4639", "exams": ["Science", "Math"] }
//
// The pipeline is validate → resolve → persist, in that order: every
// rejection happens before the store is touched, so a failed submission
// never consumes a receipt number.
//
// Success response (201 Created): a CreateResponse.
//
// Error responses:
//
//	400 Bad Request — empty/malformed body, no exams selected, or an
//	                  exam name not on the price list
//	404 Not Found   — scholar number not in the reference dataset
//	500 Internal    — store append failure (not retried)
func Create(store storage.Storage, ref *refdata.RefData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a registration")

		var req types.RegistrationRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		st, ok := ref.StudentByScholarNo(req.ScholarNo)
		if !ok {
			response.WriteJSON(w, http.StatusNotFound,
				response.GeneralError(errors.New("scholar number not found")))
			return
		}

		items, total, err := ref.LineItems(req.Exams)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		words, err := numwords.Words(total)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		// The store allocates the receipt number and rejects nothing
		// itself; everything invalid was caught above. Persist the
		// exam names in invoice order so the stored Exams field and
		// the printed table agree.
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.ExamName
		}

		rec, err := store.CreateRegistration(st.ScholarNo, st.Name, st.Class, names, total)
		if err != nil {
			slog.Error("error saving registration",
				slog.String("scholar_no", st.ScholarNo),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("registration saved",
			slog.String("receipt_no", rec.ReceiptNo),
			slog.Int("total_amount", rec.TotalAmount))

		response.WriteJSON(w, http.StatusCreated, CreateResponse{
			Registration:  rec,
			LineItems:     items,
			AmountInWords: words,
		})
	}
}

// GetList handles GET /api/registrations
//
// Returns every saved registration in file order (the "view all saved
// registrations" panel). An empty store returns [] — but a store that
// cannot be read returns 500, not an empty list.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing registrations")

		recs, err := store.GetRegistrations()
		if err != nil {
			slog.Error("error reading registrations", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, recs)
	}
}

// Search handles GET /api/registrations/search?q=<query>
//
// Matches the query against the scholar number OR the receipt number
// (string equality on both). Zero matches is a valid outcome: 200 with
// an empty list. A missing query is a 400.
func Search(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		slog.Info("searching registrations", slog.String("query", query))

		if query == "" {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("query parameter q is required")))
			return
		}

		recs, err := store.FindRegistrations(query)
		if err != nil {
			slog.Error("error searching registrations",
				slog.String("query", query),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, recs)
	}
}

// ReceiptPDF handles GET /api/receipts/{receiptNo}
//
// Renders the receipt for a saved registration and serves it as a PDF
// download named Receipt_<receiptNo>.pdf — or Copy_<receiptNo>.pdf when
// ?copy=1 is set, marking a re-print. Line items are reconstructed from
// the stored exam names against the live price list, and the family
// details come from the reference dataset, exactly as the original
// re-print flow did.
//
// Error responses:
//
//	404 Not Found — no registration with that receipt number
//	409 Conflict  — the student has since left the reference dataset,
//	                so the family details block cannot be filled
//	500 Internal  — store read, price-list, or render failure
func ReceiptPDF(store storage.Storage, ref *refdata.RefData, letterhead string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receiptNo := r.PathValue("receiptNo")
		reprint := r.URL.Query().Get("copy") == "1"
		slog.Info("printing receipt",
			slog.String("receipt_no", receiptNo),
			slog.Bool("reprint", reprint))

		rec, err := store.GetRegistrationByReceiptNo(receiptNo)
		if errors.Is(err, storage.ErrReceiptNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		st, ok := ref.StudentByScholarNo(rec.ScholarNo)
		if !ok {
			response.WriteJSON(w, http.StatusConflict,
				response.GeneralError(fmt.Errorf(
					"scholar %s is no longer in the reference dataset; receipt cannot be reconstructed",
					rec.ScholarNo)))
			return
		}

		items, total, err := ref.LineItems(rec.Exams)
		if err != nil {
			// An exam was renamed or removed from the price list after
			// this registration was saved.
			response.WriteJSON(w, http.StatusConflict, response.GeneralError(err))
			return
		}
		// Prefer the persisted total: the receipt must reproduce what
		// was charged, even if fees changed since.
		if total != rec.TotalAmount {
			slog.Warn("price list changed since registration",
				slog.String("receipt_no", rec.ReceiptNo),
				slog.Int("stored_total", rec.TotalAmount),
				slog.Int("current_total", total))
		}

		words, err := numwords.Words(rec.TotalAmount)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		ts, err := time.Parse(timestampLayout, rec.Timestamp)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(fmt.Errorf("stored timestamp %q is invalid: %w", rec.Timestamp, err)))
			return
		}

		pdfBytes, err := render.Receipt(render.ReceiptData{
			Letterhead: letterhead,
			ReceiptNo:  rec.ReceiptNo,
			Student:    st,
			RegDate:    ts.Format(regDateLayout),
			Items:      items,
			Total:      rec.TotalAmount,
			TotalWords: words,
		})
		if err != nil {
			slog.Error("error rendering receipt",
				slog.String("receipt_no", rec.ReceiptNo),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		filename := fmt.Sprintf("Receipt_%s.pdf", rec.ReceiptNo)
		if reprint {
			filename = fmt.Sprintf("Copy_%s.pdf", rec.ReceiptNo)
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(pdfBytes)
	}
}
