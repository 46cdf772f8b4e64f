package astro

import (
	"math"
	"time"

	"astroeph-api/internal/corerr"
	"astroeph-api/internal/domain"
)

// transitOrbSchedule is tighter than the natal orb set.
var transitOrbSchedule = map[domain.AspectKind]float64{
	domain.Conjunction: 8,
	domain.Opposition:  6,
	domain.Square:      6,
	domain.Trine:       6,
	domain.Sextile:     4,
	domain.Quincunx:    4,
	domain.SemiSextile: 2,
}

// maxRootFindIterations bounds every return-finder bisection loop: a hard
// iteration ceiling to guarantee termination.
const maxRootFindIterations = 64

// TimeFormCalculator computes transits, secondary progressions, and
// solar/lunar returns.
type TimeFormCalculator struct {
	ephemeris *Ephemeris
	natal     *NatalCalculator
	houses    *HouseCalculator
	facade    *ChartFacade
}

// NewTimeFormCalculator builds a TimeFormCalculator over shared services.
func NewTimeFormCalculator(ephemeris *Ephemeris, natal *NatalCalculator, houses *HouseCalculator, facade *ChartFacade) *TimeFormCalculator {
	return &TimeFormCalculator{ephemeris: ephemeris, natal: natal, houses: houses, facade: facade}
}

// Transits evaluates the sky at transitInstant (observed from the natal
// location, by convention) against the natal body table, emitting only
// transit-to-natal aspects, sorted exact/applying/separating then by
// ascending orb.
func (tc *TimeFormCalculator) Transits(natalChart *domain.Chart, transitInstant *domain.Instant) (domain.TransitReport, error) {
	transitBodies, err := tc.natal.BodyStates(transitInstant.JulianDay)
	if err != nil {
		return domain.TransitReport{}, err
	}

	natalByBody := indexByBody(natalChart.Bodies)
	var aspects []domain.Aspect
	for _, t := range transitBodies {
		n, ok := natalByBody[t.Body]
		if !ok {
			continue
		}
		if a, found := detectTransitAspect(t, n); found {
			aspects = append(aspects, a)
		}
	}
	SortTransitStyle(aspects)

	return domain.TransitReport{
		NatalChartID:   natalChart.ID,
		TransitInstant: transitInstant.UTCTime,
		TransitBodies:  transitBodies,
		Aspects:        aspects,
	}, nil
}

// detectTransitAspect matches one transiting body against its natal
// counterpart under the tighter transit orb schedule; the natal body is
// treated as stationary regardless of its own recorded daily_motion.
func detectTransitAspect(transit, natal domain.BodyState) (domain.Aspect, bool) {
	delta := domain.AngularDistance(transit.Longitude, natal.Longitude)
	for kind, orbBudget := range transitOrbSchedule {
		def, ok := domain.DefinitionFor(kind)
		if !ok {
			continue
		}
		orb := math.Abs(delta - def.TargetAngle)
		if orb > orbBudget {
			continue
		}
		applying := transit.DailyMotion < 0
		if !transit.Retrograde {
			nextDelta := domain.AngularDistance(transit.Longitude+transit.DailyMotion*0.01, natal.Longitude)
			applying = math.Abs(nextDelta-def.TargetAngle) < math.Abs(delta-def.TargetAngle)
		}
		return domain.Aspect{
			BodyA: transit.Body, BodyB: natal.Body, Kind: kind,
			ExactAngle: def.TargetAngle, Orb: orb, Nature: def.Nature,
			Strength:   clampBase(def.BaseStrength*(1-orb/orbBudget), def.BaseStrength),
			Applying:   applying,
			Separating: !applying,
			Exact:      orb < 0.1,
		}, true
	}
	return domain.Aspect{}, false
}

// SecondaryProgressions implements the day-for-a-year mapping: progressed
// instant = birth instant + (days_elapsed/365.25) days, keeping the
// original clock time. Progressed-progressed and natal-natal pairs are
// never produced since Synastry only emits cross-table pairs.
func (tc *TimeFormCalculator) SecondaryProgressions(natalChart *domain.Chart, natalInstant, targetInstant *domain.Instant) (domain.ProgressionReport, error) {
	daysElapsed := targetInstant.UTCTime.Sub(natalInstant.UTCTime).Hours() / 24
	progressionDays := daysElapsed / 365.25
	progressed := natalInstant.AddDays(progressionDays)

	progressedBodies, err := tc.natal.BodyStates(progressed.JulianDay)
	if err != nil {
		return domain.ProgressionReport{}, err
	}

	engine := NewAspectEngine(false, false)
	raw := engine.Synastry(progressedBodies, natalChart.Bodies)
	aspects := make([]domain.Aspect, 0, len(raw))
	for _, a := range raw {
		a.ProgressedBody = a.BodyA
		a.NatalBody = a.BodyB
		aspects = append(aspects, a)
	}

	return domain.ProgressionReport{
		NatalChartID:      natalChart.ID,
		ProgressedInstant: progressed.UTCTime,
		ProgressedBodies:  progressedBodies,
		Aspects:           aspects,
	}, nil
}

// longitudeDiff returns the signed difference (target - actual), used as
// the root function for return-finding: it crosses zero exactly when the
// body reaches the natal longitude.
func (tc *TimeFormCalculator) longitudeDiff(body domain.BodyId, targetLongitude, julianDay float64) (float64, error) {
	v, err := tc.ephemeris.EclipticState(julianDay, body)
	if err != nil {
		return 0, err
	}
	return domain.SignedDiff(v.Longitude, targetLongitude), nil
}

// findReturn brackets and bisects for the instant a body's longitude
// equals targetLongitude, scanning [low,high] at stepDays resolution.
// Returns the bracket midpoint and found=false on failure: a best-effort
// bracket midpoint with an estimated=true flag.
func (tc *TimeFormCalculator) findReturn(body domain.BodyId, targetLongitude, low, high, stepDays float64) (float64, bool) {
	prevJD := low
	prevVal, err := tc.longitudeDiff(body, targetLongitude, low)
	if err != nil {
		return (low + high) / 2, false
	}

	for jd := low + stepDays; jd <= high; jd += stepDays {
		val, err := tc.longitudeDiff(body, targetLongitude, jd)
		if err != nil {
			continue
		}
		if sign(val) != sign(prevVal) && math.Abs(val-prevVal) < 180 {
			return bisect(func(x float64) (float64, error) {
				return tc.longitudeDiff(body, targetLongitude, x)
			}, prevJD, jd), true
		}
		prevJD, prevVal = jd, val
	}
	return (low + high) / 2, false
}

func sign(v float64) int {
	if v >= 0 {
		return 1
	}
	return -1
}

func bisect(f func(float64) (float64, error), low, high float64) float64 {
	const minuteInDays = 1.0 / 1440.0
	for i := 0; i < maxRootFindIterations && (high-low) > minuteInDays; i++ {
		mid := (low + high) / 2
		valLow, errLow := f(low)
		valMid, errMid := f(mid)
		if errLow != nil || errMid != nil {
			break
		}
		if sign(valMid) == sign(valLow) {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2
}

// SolarReturn finds the instant in targetYear the Sun returns to its natal
// longitude, bracketing ±7 days around the birthday and widening to ±30
// days on failure, then evaluates a full chart there using the natal
// location.
func (tc *TimeFormCalculator) SolarReturn(natalChart *domain.Chart, targetYear int, opts GenerateOptions) (domain.SolarReturnReport, error) {
	natalSun := natalChart.BodyByID(domain.Sun)
	if natalSun == nil {
		return domain.SolarReturnReport{}, ErrBodyNotFound
	}

	birthday := time.Date(targetYear, natalChart.UTCTime.Month(), natalChart.UTCTime.Day(),
		natalChart.UTCTime.Hour(), natalChart.UTCTime.Minute(), natalChart.UTCTime.Second(), 0, time.UTC)
	centerJD := domain.CalculateJulianDay(birthday)

	jd, found := tc.findReturn(domain.Sun, natalSun.Longitude, centerJD-7, centerJD+7, 1.0/24)
	if !found {
		jd, found = tc.findReturn(domain.Sun, natalSun.Longitude, centerJD-30, centerJD+30, 1.0/24)
	}
	returnInstant := domain.FromUTC(julianDayToTime(jd))

	chart, err := tc.facade.Generate("", domain.ChartTypeSolarReturn, natalChart.Name, natalChart.BirthInfo, returnInstant, opts)
	if err != nil {
		return domain.SolarReturnReport{}, err
	}

	return domain.SolarReturnReport{
		NatalChartID:  natalChart.ID,
		Year:          targetYear,
		ReturnInstant: returnInstant.UTCTime,
		Chart:         chart,
		Estimated:     !found,
	}, nil
}

// LunarReturn finds the instant the Moon returns to its natal longitude,
// searching −3..+30 days around the reference instant at 1-hour
// resolution, relaxed to 2-hour on miss.
func (tc *TimeFormCalculator) LunarReturn(natalChart *domain.Chart, referenceInstant *domain.Instant, opts GenerateOptions) (domain.LunarReturnReport, error) {
	natalMoon := natalChart.BodyByID(domain.Moon)
	if natalMoon == nil {
		return domain.LunarReturnReport{}, ErrBodyNotFound
	}

	centerJD := referenceInstant.JulianDay
	jd, found := tc.findReturn(domain.Moon, natalMoon.Longitude, centerJD-3, centerJD+30, 1.0/24)
	if !found {
		jd, found = tc.findReturn(domain.Moon, natalMoon.Longitude, centerJD-3, centerJD+30, 2.0/24)
	}
	returnInstant := domain.FromUTC(julianDayToTime(jd))

	chart, err := tc.facade.Generate("", domain.ChartTypeLunarReturn, natalChart.Name, natalChart.BirthInfo, returnInstant, opts)
	if err != nil {
		return domain.LunarReturnReport{}, err
	}

	return domain.LunarReturnReport{
		NatalChartID:     natalChart.ID,
		ReferenceInstant: referenceInstant.UTCTime,
		ReturnInstant:    returnInstant.UTCTime,
		Chart:            chart,
		Estimated:        !found,
	}, nil
}

// julianDayToTime converts a UT Julian Day back to a UTC time.Time.
func julianDayToTime(jd float64) time.Time {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z
	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e) + f
	var month float64
	if e < 14 {
		month = e - 1
	} else {
		month = e - 13
	}
	var year float64
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	dayInt := math.Floor(day)
	dayFrac := day - dayInt
	hours := dayFrac * 24
	hourInt := math.Floor(hours)
	minutes := (hours - hourInt) * 60
	minuteInt := math.Floor(minutes)
	seconds := (minutes - minuteInt) * 60

	return time.Date(int(year), time.Month(int(month)), int(dayInt), int(hourInt), int(minuteInt), int(seconds), 0, time.UTC)
}

func bodyLongitude(bodies []domain.BodyState, id domain.BodyId) float64 {
	for _, b := range bodies {
		if b.Body == id {
			return b.Longitude
		}
	}
	return 0
}

// ErrBodyNotFound is returned when a requested body has no recorded state.
var ErrBodyNotFound = corerr.New(corerr.InvalidInput, "body not found in chart")
