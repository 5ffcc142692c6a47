// Package exam serves the fixed exam price list the form renders its
// checkboxes from.
package exam

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/examreg-api/internal/refdata"
	"github.com/aanand-mishra/examreg-api/internal/utils/response"
)

// List handles GET /api/exams
//
// Returns every exam option in price-list order:
//
//	[ { "exam_name": "Science", "exam_fee": 500 }, ... ]
func List(ref *refdata.RefData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing exam options")
		response.WriteJSON(w, http.StatusOK, ref.Exams())
	}
}
