// Package student contains the HTTP handlers for the read-only student
// reference data.
//
// HANDLER PATTERN — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for dependencies, so each handler here is
// a factory: it accepts its dependencies once at route registration and
// returns the actual handler, which closes over them:
//
//	router.HandleFunc("GET /api/students/{scholarNo}", student.GetByScholarNo(ref))
package student

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/examreg-api/internal/refdata"
	"github.com/aanand-mishra/examreg-api/internal/utils/response"
)

// GetByScholarNo handles GET /api/students/{scholarNo}
//
// Looks up one student in the reference dataset, exact match only.
// The form uses this to auto-fill the student and parent fields once a
// scholar number is typed.
//
// Success response (200 OK):
//
//	{ "scholar_no": "4639", "student_name": "Asha Rao", ... }
//
// Error responses:
//
//	404 Not Found — no student with that scholar number
func GetByScholarNo(ref *refdata.RefData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scholarNo := r.PathValue("scholarNo")
		slog.Info("looking up student", slog.String("scholar_no", scholarNo))

		st, ok := ref.StudentByScholarNo(scholarNo)
		if !ok {
			// Non-fatal: the form shows a warning and stays usable.
			response.WriteJSON(w, http.StatusNotFound,
				response.GeneralError(errors.New("scholar number not found")))
			return
		}

		response.WriteJSON(w, http.StatusOK, st)
	}
}
