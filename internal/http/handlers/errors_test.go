package handlers

import (
	"errors"
	"net/http"
	"testing"

	"astroeph-api/internal/corerr"
)

func TestStatusForErrorMapsKnownKinds(t *testing.T) {
	cases := []struct {
		kind corerr.Kind
		want int
	}{
		{corerr.InvalidInput, http.StatusBadRequest},
		{corerr.EphemerisUnavailable, http.StatusServiceUnavailable},
		{corerr.ReturnNotFound, http.StatusUnprocessableEntity},
		{corerr.CatalogMiss, http.StatusInternalServerError},
		{corerr.NumericDegeneracy, http.StatusInternalServerError},
	}
	for _, c := range cases {
		err := corerr.New(c.kind, "test")
		if got := statusForError(err); got != c.want {
			t.Errorf("statusForError(%v) = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestStatusForErrorUnwrapsWrappedCoreError(t *testing.T) {
	wrapped := errorsJoinWrap(corerr.New(corerr.InvalidInput, "bad input"))
	if got := statusForError(wrapped); got != http.StatusBadRequest {
		t.Errorf("statusForError(wrapped) = %d, want %d", got, http.StatusBadRequest)
	}
}

func errorsJoinWrap(err error) error {
	return &wrappedError{inner: err}
}

type wrappedError struct{ inner error }

func (w *wrappedError) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrappedError) Unwrap() error { return w.inner }

func TestStatusForErrorPlainErrorIsInternal(t *testing.T) {
	if got := statusForError(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("statusForError(plain) = %d, want %d", got, http.StatusInternalServerError)
	}
}
