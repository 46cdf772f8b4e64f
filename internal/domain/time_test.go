package domain

import (
	"testing"
	"time"
)

func TestParseTimeUTC(t *testing.T) {
	inst, err := ParseTime(2000, 1, 1, "12:00:00", "UTC")
	if err != nil {
		t.Fatalf("ParseTime returned error: %v", err)
	}
	if inst.UTCTime.Hour() != 12 {
		t.Errorf("expected UTC hour 12, got %d", inst.UTCTime.Hour())
	}
	if inst.GMTOffset != 0 {
		t.Errorf("expected zero GMT offset for UTC, got %v", inst.GMTOffset)
	}
}

func TestParseTimeInvalidTimezone(t *testing.T) {
	if _, err := ParseTime(2000, 1, 1, "12:00:00", "Not/AZone"); err == nil {
		t.Error("expected an error for an invalid timezone")
	}
}

func TestParseTimeInvalidTimeFormat(t *testing.T) {
	if _, err := ParseTime(2000, 1, 1, "not-a-time", "UTC"); err == nil {
		t.Error("expected an error for an invalid time string")
	}
}

func TestParseTimeShortFormFallback(t *testing.T) {
	inst, err := ParseTime(2000, 6, 15, "08:30", "UTC")
	if err != nil {
		t.Fatalf("ParseTime with HH:MM returned error: %v", err)
	}
	if inst.UTCTime.Hour() != 8 || inst.UTCTime.Minute() != 30 {
		t.Errorf("expected 08:30, got %02d:%02d", inst.UTCTime.Hour(), inst.UTCTime.Minute())
	}
}

func TestCalculateJulianDayKnownEpoch(t *testing.T) {
	// Noon UTC on 2000-01-01 is JD 2451545.0, the standard J2000 epoch.
	utc := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	jd := CalculateJulianDay(utc)
	if diff := jd - 2451545.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("CalculateJulianDay(J2000 noon) = %v, want 2451545.0", jd)
	}
}

func TestAddDaysPreservesClockTime(t *testing.T) {
	inst := FromUTC(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	later := inst.AddDays(1)
	if later.UTCTime.Day() != 2 {
		t.Errorf("expected day 2 after AddDays(1), got %d", later.UTCTime.Day())
	}
	if later.UTCTime.Hour() != 12 {
		t.Errorf("expected clock time preserved at hour 12, got %d", later.UTCTime.Hour())
	}
}

func TestAddDaysFractionalAcrossMonthBoundary(t *testing.T) {
	inst := FromUTC(time.Date(2000, 1, 31, 23, 0, 0, 0, time.UTC))
	later := inst.AddDays(1.5)
	if later.UTCTime.Month() != time.February {
		t.Errorf("expected month rollover into February, got %v", later.UTCTime.Month())
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{2000: true, 1900: false, 2024: true, 2023: false, 2400: true}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonthLeapFebruary(t *testing.T) {
	if got := DaysInMonth(2, 2000); got != 29 {
		t.Errorf("DaysInMonth(Feb, 2000) = %d, want 29", got)
	}
	if got := DaysInMonth(2, 2001); got != 28 {
		t.Errorf("DaysInMonth(Feb, 2001) = %d, want 28", got)
	}
}

func TestParseDateStringFormats(t *testing.T) {
	y, m, d, err := ParseDateString("2000-01-15")
	if err != nil || y != 2000 || m != 1 || d != 15 {
		t.Errorf("ParseDateString(ISO) = %d-%d-%d err=%v, want 2000-1-15 nil", y, m, d, err)
	}
	if _, _, _, err := ParseDateString("not a date"); err == nil {
		t.Error("expected an error for an unparsable date string")
	}
}
