package corerr

import (
	"errors"
	"testing"
)

func TestNewAndIs(t *testing.T) {
	err := New(InvalidInput, "bad coordinates")
	if !Is(err, InvalidInput) {
		t.Error("expected Is to match the error's own kind")
	}
	if Is(err, EphemerisUnavailable) {
		t.Error("expected Is to reject a non-matching kind")
	}
}

func TestIsRejectsPlainErrors(t *testing.T) {
	plain := errors.New("not a core error")
	if Is(plain, InvalidInput) {
		t.Error("expected Is to reject an error that isn't *Error")
	}
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(NumericDegeneracy, "latitude %v exceeds polar bound", 70.5)
	want := "[NUMERIC_DEGENERACY] latitude 70.5 exceeds polar bound"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFatalKinds(t *testing.T) {
	fatal := []Kind{EphemerisUnavailable, InvalidInput}
	notFatal := []Kind{ReturnNotFound, CatalogMiss, NumericDegeneracy}
	for _, k := range fatal {
		if !Fatal(k) {
			t.Errorf("expected %v to be fatal", k)
		}
	}
	for _, k := range notFatal {
		if Fatal(k) {
			t.Errorf("expected %v to not be fatal", k)
		}
	}
}
