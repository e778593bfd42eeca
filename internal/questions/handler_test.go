package questions

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daybook/backend/internal/generator"
	"github.com/daybook/backend/internal/models"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestWriteServiceError_Mapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &ValidationError{Msg: "rating must be between 1 and 5"}, http.StatusBadRequest},
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"upstream", &generator.UpstreamError{Op: "generate", Err: errors.New("timeout")}, http.StatusBadGateway},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		writeServiceError(rec, c.err)
		if rec.Code != c.status {
			t.Errorf("%s: status = %d, want %d", c.name, rec.Code, c.status)
		}
	}
}

func TestWriteServiceError_InternalDetailHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("pq: connection refused on 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	body := decodeErrorBody(t, rec)
	if body != "Internal server error" {
		t.Errorf("body = %q, want the fixed message", body)
	}
	if strings.Contains(body, "10.0.0.5") {
		t.Error("internal error detail leaked into the response body")
	}
}
