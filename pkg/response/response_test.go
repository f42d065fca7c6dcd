package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-backoffice/pkg/apperror"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", apperror.NotFound("client", "Client not found"), http.StatusNotFound, "Client not found"},
		{"conflict", apperror.Conflict("property", "Property is referenced by appointments"), http.StatusConflict, "Property is referenced by appointments"},
		{"unauthorized", apperror.Unauthorized("Invalid email or password"), http.StatusUnauthorized, "Invalid email or password"},
		{"too many", apperror.TooManyRequests("Too many login attempts"), http.StatusTooManyRequests, "Too many login attempts"},
		{"unexpected hides cause", apperror.Unexpected(errors.New("pq: secret detail")), http.StatusInternalServerError, "Failed to do thing"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Failed to do thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err, "Failed to do thing")

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decode(t, rec)
			if body.Success {
				t.Fatalf("expected success=false")
			}
			if body.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestFromErrorValidationListsFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := apperror.Validation("Validation failed", map[string]string{
		"valor":    "valor must be greater than 0",
		"endereco": "endereco is required",
	})

	FromError(rec, err, "unused")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode(t, rec)
	want := []string{"endereco is required", "valor must be greater than 0"}
	if len(body.Errors) != len(want) {
		t.Fatalf("errors = %v, want %v", body.Errors, want)
	}
	for i := range want {
		if body.Errors[i] != want[i] {
			t.Fatalf("errors[%d] = %q, want %q", i, body.Errors[i], want[i])
		}
	}
	fields, ok := body.Error.(map[string]interface{})
	if !ok || fields["valor"] != "valor must be greater than 0" {
		t.Fatalf("unexpected error map: %#v", body.Error)
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("got %d with %d bytes", rec.Code, rec.Body.Len())
	}
}
