package domain

import (
	"strings"
	"testing"
)

func TestFormatLongitudeProducesDMS(t *testing.T) {
	got := FormatLongitude(45.5)
	if !strings.Contains(got, "°") || !strings.Contains(got, "'") || !strings.Contains(got, "\"") {
		t.Errorf("FormatLongitude(45.5) = %q, expected DMS format", got)
	}
}

func TestFormatDegreeInSignStaysUnderThirty(t *testing.T) {
	got := FormatDegreeInSign(95) // 5 degrees into Cancer
	want := "5°00'00\""
	if got != want {
		t.Errorf("FormatDegreeInSign(95) = %q, want %q", got, want)
	}
}
