package astro

import (
	"math"
	"time"

	"astroeph-api/internal/logging"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
)

// meanObliquityJ2000 is the fallback used when the dynamical nutation series
// cannot be evaluated: fall back to the J2000 mean value and log a warning,
// never a hard failure.
const meanObliquityJ2000 = 23.4392811

// Frame provides the time-scale and sidereal-time services the natal and
// house calculators build on. GAST's equation-of-equinoxes term is grounded
// on meeus's IAU nutation series; the GMST polynomial is a Meeus-22.2-style
// formula.
type Frame struct {
	logger *logging.Logger
}

// NewFrame constructs a Frame service.
func NewFrame(logger *logging.Logger) *Frame {
	return &Frame{logger: logger}
}

// UTCToTT applies the (slowly varying) leap-second/ΔT correction, returning
// the Julian Day in Terrestrial Time. A fixed modern-era offset is used
// rather than a full ΔT table lookup; precise to within a few seconds over
// the ephemeris's practical date range.
func (f *Frame) UTCToTT(utcJulianDay float64) float64 {
	const deltaTSeconds = 69.0 // modern-era TT-UTC, updated periodically by IERS
	return utcJulianDay + deltaTSeconds/86400.0
}

// ObliquityOfDate returns the true obliquity of the ecliptic (mean plus
// nutation) in degrees for a UT Julian Day. Falls back to the J2000 mean
// value if the nutation series cannot be evaluated.
func (f *Frame) ObliquityOfDate(utcJulianDay float64) (eps float64) {
	jde := f.UTCToTT(utcJulianDay)
	defer func() {
		if r := recover(); r != nil {
			f.logger.Warn().Interface("panic", r).Msg("nutation series failed, falling back to J2000 mean obliquity")
			eps = meanObliquityJ2000
		}
	}()
	eps0 := nutation.MeanObliquity(jde)
	_, deps := nutation.Nutation(jde)
	epsDeg := (eps0 + deps).Deg()
	if math.IsNaN(epsDeg) || math.IsInf(epsDeg, 0) {
		return meanObliquityJ2000
	}
	return epsDeg
}

// GAST returns Greenwich Apparent Sidereal Time in degrees [0,360) for a UT
// Julian Day: the Meeus GMST polynomial plus the nutation-grounded equation
// of the equinoxes.
func (f *Frame) GAST(utcJulianDay float64) float64 {
	gmst := gmstDegrees(utcJulianDay)

	jde := f.UTCToTT(utcJulianDay)
	dpsi, deps := nutation.Nutation(jde)
	eps0 := nutation.MeanObliquity(jde)
	eqEqDeg := dpsi.Rad() * math.Cos((eps0 + deps).Rad()) * 180 / math.Pi

	return wrap360(gmst + eqEqDeg)
}

// RAMC is the Right Ascension of the Medium Coeli: GAST converted to degrees
// of arc and offset by the observer's east longitude.
func (f *Frame) RAMC(utcJulianDay, longitudeEast float64) float64 {
	return wrap360(f.GAST(utcJulianDay) + longitudeEast)
}

// gmstDegrees computes Greenwich Mean Sidereal Time in degrees using the
// standard Meeus 12.2 polynomial.
func gmstDegrees(jd float64) float64 {
	t := (jd - 2451545.0) / 36525.0
	gmst := 280.46061837 + 360.98564736629*(jd-2451545.0) +
		0.000387933*t*t - t*t*t/38710000.0
	return wrap360(gmst)
}

func wrap360(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// TimeToJulianDay is a thin wrapper over meeus's calendar conversion, used
// where a second, independently-grounded JD computation is useful as a
// cross-check against domain.CalculateJulianDay.
func TimeToJulianDay(t time.Time) float64 {
	return julian.TimeToJD(t)
}
