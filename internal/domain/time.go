package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Instant is a UTC moment plus the local civil time it was derived from: a
// UTC moment with sub-second precision, with all internal computation in
// UTC/TT. JulianDay is the UT Julian Day Number, the only calendar
// representation the astro package consumes.
type Instant struct {
	LocalTime time.Time `json:"local_time"`
	UTCTime   time.Time `json:"utc_time"`
	JulianDay float64   `json:"julian_day"`
	Timezone  string    `json:"timezone"`
	GMTOffset float64   `json:"gmt_offset"`
}

// ParseTime resolves a civil birth date/time in an IANA timezone into an
// Instant. Callers must supply a known zone name; the core never derives an
// offset from coordinates.
func ParseTime(year, month, day int, timeStr, timezone string) (*Instant, error) {
	parsedTime, err := time.Parse("15:04:05", timeStr)
	if err != nil {
		parsedTime, err = time.Parse("15:04", timeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid time format: %s", timeStr)
		}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %s", timezone)
	}

	localTime := time.Date(year, time.Month(month), day,
		parsedTime.Hour(), parsedTime.Minute(), parsedTime.Second(), 0, loc)
	utcTime := localTime.UTC()
	_, offsetSeconds := localTime.Zone()

	return &Instant{
		LocalTime: localTime,
		UTCTime:   utcTime,
		JulianDay: CalculateJulianDay(utcTime),
		Timezone:  timezone,
		GMTOffset: float64(offsetSeconds) / 3600.0,
	}, nil
}

// FromUTC builds an Instant directly from a UTC time, bypassing any
// timezone lookup. Used by the time-form calculator when it evaluates
// transformed instants (progressed dates, return candidates) that have no
// civil timezone of their own.
func FromUTC(utc time.Time) *Instant {
	return &Instant{
		LocalTime: utc,
		UTCTime:   utc,
		JulianDay: CalculateJulianDay(utc),
		Timezone:  "UTC",
	}
}

// CalculateJulianDay computes the UT Julian Day Number for a UTC time using
// the standard Meeus-style integer algorithm.
func CalculateJulianDay(utcTime time.Time) float64 {
	year := utcTime.Year()
	month := int(utcTime.Month())
	day := utcTime.Day()
	hour := utcTime.Hour()
	minute := utcTime.Minute()
	second := utcTime.Second()

	decimalHours := float64(hour) + float64(minute)/60.0 + float64(second)/3600.0

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	jd := int(365.25*float64(year+4716)) + int(30.6001*float64(month+1)) + day + b - 1524

	return float64(jd) + (decimalHours-12.0)/24.0
}

// FormatTimeForDisplay formats the instant's local time for display.
func (i Instant) FormatTimeForDisplay() string {
	return i.LocalTime.Format("2006-01-02 15:04:05 MST")
}

// AddDays returns a new Instant `days` (fractional) later, preserving the
// original local clock time where possible. Used by progressions and the
// return-finders; deliberately routes through time.Time arithmetic rather
// than manual calendar rollover.
func (i Instant) AddDays(days float64) *Instant {
	whole := int(days)
	frac := days - float64(whole)
	d := time.Duration(frac * float64(24*time.Hour))
	newUTC := i.UTCTime.AddDate(0, 0, whole).Add(d)
	newLocal := newUTC
	if loc := i.LocalTime.Location(); loc != nil {
		newLocal = newUTC.In(loc)
	}
	return &Instant{
		LocalTime: newLocal,
		UTCTime:   newUTC,
		JulianDay: CalculateJulianDay(newUTC),
		Timezone:  i.Timezone,
		GMTOffset: i.GMTOffset,
	}
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || (year%400 == 0)
}

// DaysInMonth returns the number of days in the given month/year.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDateString parses a handful of common date string formats.
func ParseDateString(dateStr string) (year, month, day int, err error) {
	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"02/01/2006",
		"2006/01/02",
		"01-02-2006",
		"02-01-2006",
	}

	for _, format := range formats {
		if t, e := time.Parse(format, dateStr); e == nil {
			return t.Year(), int(t.Month()), t.Day(), nil
		}
	}

	parts := strings.Fields(dateStr)
	if len(parts) == 3 {
		if d, e1 := strconv.Atoi(parts[0]); e1 == nil {
			if y, e2 := strconv.Atoi(parts[2]); e2 == nil {
				if m := parseMonthName(parts[1]); m > 0 {
					return y, m, d, nil
				}
			}
		}
	}

	return 0, 0, 0, fmt.Errorf("unable to parse date string: %s", dateStr)
}

func parseMonthName(monthStr string) int {
	months := map[string]int{
		"january": 1, "jan": 1,
		"february": 2, "feb": 2,
		"march": 3, "mar": 3,
		"april": 4, "apr": 4,
		"may":  5,
		"june": 6, "jun": 6,
		"july": 7, "jul": 7,
		"august": 8, "aug": 8,
		"september": 9, "sep": 9,
		"october": 10, "oct": 10,
		"november": 11, "nov": 11,
		"december": 12, "dec": 12,
	}
	return months[strings.ToLower(monthStr)]
}
