package exam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/aanand-mishra/examreg-api/internal/refdata"
	"github.com/aanand-mishra/examreg-api/internal/types"
)

func TestList(t *testing.T) {
	options := []types.ExamOption{
		{Name: "Science", Fee: 500},
		{Name: "Math", Fee: 300},
	}
	ref := refdata.New(nil, options)

	req := httptest.NewRequest(http.MethodGet, "/api/exams", nil)
	w := httptest.NewRecorder()
	List(ref)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []types.ExamOption
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, options) {
		t.Errorf("price list = %+v, want %+v (same order)", got, options)
	}
}
