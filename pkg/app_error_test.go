package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "missing", http.StatusNotFound)
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
		if e.Error() != "NOT_FOUND: missing" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if e.IsServerError() {
			t.Fatalf("404 is not a server error")
		}
	})

	t.Run("wrapped cause is reachable", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if !e.IsServerError() {
			t.Fatalf("expected server error")
		}
	})

	t.Run("details do not leak into the original", func(t *testing.T) {
		base := NewDomainErrorSimple("VALIDATION_ERROR", "invalid", http.StatusBadRequest)
		withDetails := base.WithDetails([]string{"termsAccepted"})
		if base.Details != nil {
			t.Fatalf("base error was mutated")
		}
		body := withDetails.ToHTTPError()
		if body.Code != "VALIDATION_ERROR" || body.Details == nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
