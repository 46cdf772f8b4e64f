package astro

import (
	"math"

	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
)

// NatalCalculator derives the ten-body state table plus the angular/derived
// points (ASC, MC, nodes, Part of Fortune) for a birth instant.
type NatalCalculator struct {
	ephemeris *Ephemeris
	frame     *Frame
	logger    *logging.Logger
}

// NewNatalCalculator builds a NatalCalculator over a shared Ephemeris/Frame.
func NewNatalCalculator(ephemeris *Ephemeris, frame *Frame, logger *logging.Logger) *NatalCalculator {
	return &NatalCalculator{ephemeris: ephemeris, frame: frame, logger: logger}
}

// crossCheckAscendant compares the independently-derived Ascendant against
// swephgo's own house computation, warning (never failing) on divergence
// beyond a degree — a sign one of the two RAMC/obliquity paths has drifted.
func (nc *NatalCalculator) crossCheckAscendant(utcJulianDay float64, location domain.Location, ascendant float64) {
	result, err := nc.ephemeris.Houses(utcJulianDay, location.Latitude, location.Longitude, domain.HousePlacidus)
	if err != nil {
		return
	}
	diff := math.Abs(domain.SignedDiff(result.Ascendant, ascendant))
	if diff > 1.0 {
		nc.logger.Warn().
			Float64("frame_ascendant", ascendant).
			Float64("swephgo_ascendant", result.Ascendant).
			Float64("diff_degrees", diff).
			Msg("ascendant cross-check diverged between frame and swephgo house computation")
	}
}

// Angles is the RAMC-derived set of chart angles; house calculators
// consume RAMC and obliquity directly.
type Angles struct {
	RAMC       float64
	Obliquity  float64
	Ascendant  float64
	Midheaven  float64
	AscRA      float64
}

// ComputeAngles derives RAMC, obliquity, Ascendant, and Midheaven for an
// instant/location pair.
func (nc *NatalCalculator) ComputeAngles(utcJulianDay float64, location domain.Location) Angles {
	ramc := nc.frame.RAMC(utcJulianDay, location.Longitude)
	obliquity := nc.frame.ObliquityOfDate(utcJulianDay)
	asc := ascendantLongitude(ramc, obliquity, location.Latitude)
	nc.crossCheckAscendant(utcJulianDay, location, asc)
	return Angles{
		RAMC:      ramc,
		Obliquity: obliquity,
		Ascendant: asc,
		Midheaven: domain.NormalizeAngle(ramc),
	}
}

// ascendantLongitude implements the Ascendant formula with the quadrant
// correction for a negative denominator.
func ascendantLongitude(ramcDeg, obliquityDeg, latitudeDeg float64) float64 {
	ramc := ramcDeg * math.Pi / 180
	eps := obliquityDeg * math.Pi / 180
	phi := latitudeDeg * math.Pi / 180

	numerator := math.Sin(ramc)
	denominator := math.Cos(ramc)*math.Cos(eps) - math.Tan(phi)*math.Sin(eps)

	asc := math.Atan2(numerator, denominator) * 180 / math.Pi
	if denominator < 0 {
		asc += 180
	}
	return domain.NormalizeAngle(asc)
}

// BodyStates evaluates all ten bodies at the instant, deriving daily_motion
// via wrap-aware ±1-day differencing.
func (nc *NatalCalculator) BodyStates(utcJulianDay float64) ([]domain.BodyState, error) {
	states := make([]domain.BodyState, 0, len(domain.TenBodies))
	for _, body := range domain.TenBodies {
		state, err := nc.bodyState(utcJulianDay, body)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

func (nc *NatalCalculator) bodyState(utcJulianDay float64, body domain.BodyId) (domain.BodyState, error) {
	now, err := nc.ephemeris.EclipticState(utcJulianDay, body)
	if err != nil {
		return domain.BodyState{}, err
	}
	eq, err := nc.ephemeris.EquatorialState(utcJulianDay, body)
	if err != nil {
		return domain.BodyState{}, err
	}

	before, errBefore := nc.ephemeris.EclipticState(utcJulianDay-1, body)
	after, errAfter := nc.ephemeris.EclipticState(utcJulianDay+1, body)

	dailyMotion := now.LonSpeed
	if errBefore == nil && errAfter == nil {
		dailyMotion = wrapAwareDailyMotion(before.Longitude, after.Longitude)
	}

	state := domain.NewBodyState(body, now.Longitude, now.Latitude, eq.Latitude, eq.Longitude, dailyMotion)
	return state, nil
}

// wrapAwareDailyMotion resolves the 0/360 branch crossing before averaging
// the ±1-day longitude samples.
func wrapAwareDailyMotion(lonBefore, lonAfter float64) float64 {
	diff := lonAfter - lonBefore
	if math.Abs(diff) > 180 {
		if diff > 0 {
			diff -= 360
		} else {
			diff += 360
		}
	}
	return diff / 2
}

// NorthNode derives the true lunar node longitude. Swiss Ephemeris's own
// SE_TRUE_NODE body id already performs the orbital-plane-normal/ecliptic
// intersection directly; the binding exposes no raw Cartesian state vector
// for a from-scratch r×v derivation, so the node body is queried directly
// rather than computed from orbital elements.
func (nc *NatalCalculator) NorthNode(utcJulianDay float64) (domain.BodyState, bool) {
	v, err := nc.ephemeris.TrueNodeState(utcJulianDay)
	if err != nil {
		return domain.BodyState{
			Body:      domain.NorthNode,
			Estimated: true,
		}, false
	}
	state := domain.NewBodyState(domain.NorthNode, v.Longitude, v.Latitude, 0, 0, v.LonSpeed)
	return state, true
}

// SouthNode is always exactly opposite the North Node.
func SouthNode(northNode domain.BodyState) domain.BodyState {
	s := northNode
	s.Body = domain.SouthNode
	s.Longitude = domain.NormalizeAngle(northNode.Longitude + 180)
	s.SignIndex = domain.SignIndexOf(s.Longitude)
	s.DegreeInSign = domain.DegreeInSign(s.Longitude)
	return s
}

// PartOfFortune computes the Arabic part with the day/night sign reversal
// Daytime is defined by the Sun lying in the hemisphere running from the
// Ascendant to the Descendant through the Midheaven.
func PartOfFortune(ascendant, midheaven, sunLongitude, moonLongitude float64) float64 {
	if isDaytimeBirth(ascendant, midheaven, sunLongitude) {
		return domain.NormalizeAngle(ascendant + moonLongitude - sunLongitude)
	}
	return domain.NormalizeAngle(ascendant + sunLongitude - moonLongitude)
}

// isDaytimeBirth reports whether the Sun lies in the upper-hemisphere
// semicircle (ASC→MC→DSC), the traditional day/night boundary.
func isDaytimeBirth(ascendant, midheaven, sun float64) bool {
	mcOffset := domain.NormalizeAngle(midheaven - ascendant)
	sunOffset := domain.NormalizeAngle(sun - ascendant)
	if mcOffset < 180 {
		return sunOffset < 180
	}
	return sunOffset >= 180
}
