package student

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aanand-mishra/examreg-api/internal/refdata"
	"github.com/aanand-mishra/examreg-api/internal/types"
)

func lookup(t *testing.T, ref *refdata.RefData, scholarNo string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+scholarNo, nil)
	req.SetPathValue("scholarNo", scholarNo)
	w := httptest.NewRecorder()
	GetByScholarNo(ref)(w, req)
	return w
}

func TestGetByScholarNo(t *testing.T) {
	ref := refdata.New([]types.Student{{
		ScholarNo: "4639",
		Name:      "Asha Rao",
		Class:     "8",
		Section:   "B",
	}}, nil)

	t.Run("found", func(t *testing.T) {
		w := lookup(t, ref, "4639")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var st types.Student
		if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
			t.Fatal(err)
		}
		if st.Name != "Asha Rao" || st.Class != "8" || st.Section != "B" {
			t.Errorf("unexpected student payload: %+v", st)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := lookup(t, ref, "9999")
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
