package astro

import (
	"math"

	"astroeph-api/internal/corerr"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"

	"github.com/mshafiee/swephgo"
)

// sweID maps the swephgo body identifier used by the Swiss Ephemeris C core.
const (
	sweSun     = 0
	sweMoon    = 1
	sweMercury = 2
	sweVenus   = 3
	sweMars    = 4
	sweJupiter = 5
	sweSaturn  = 6
	sweUranus  = 7
	sweNeptune = 8
	swePluto   = 9
	sweTrueNode = 11

	sweflgSpeed      = 256
	sweflgEquatorial = 2048
)

var bodyToSwe = map[domain.BodyId]int{
	domain.Sun:     sweSun,
	domain.Moon:    sweMoon,
	domain.Mercury: sweMercury,
	domain.Venus:   sweVenus,
	domain.Mars:    sweMars,
	domain.Jupiter: sweJupiter,
	domain.Saturn:  sweSaturn,
	domain.Uranus:  sweUranus,
	domain.Neptune: sweNeptune,
	domain.Pluto:   swePluto,
}

// houseSystemCode maps a domain.HouseSystem to the swephgo house-system
// character. Houses is called only by the natal Ascendant cross-check, with
// Placidus; chart ASC/MC come from Frame and all cusp math is computed in
// houses.go, not delegated to the library's own cusp output.
func houseSystemCode(system domain.HouseSystem) rune {
	switch system {
	case domain.HouseKoch:
		return 'K'
	case domain.HouseWholeSign:
		return 'W'
	default:
		return 'P'
	}
}

// Ephemeris wraps the Swiss Ephemeris C library behind a position/velocity
// contract. It is a process-wide, read-only-after-init resource safe for
// concurrent use.
type Ephemeris struct {
	logger      *logging.Logger
	initialized bool
}

// NewEphemeris constructs and initializes the ephemeris provider.
func NewEphemeris(logger *logging.Logger, dataPath string) (*Ephemeris, error) {
	eph := &Ephemeris{logger: logger}
	if err := eph.initialize(dataPath); err != nil {
		return nil, err
	}
	return eph, nil
}

func (e *Ephemeris) initialize(dataPath string) error {
	swephgo.SetEphePath([]byte(dataPath))

	e.logger.Info().Str("data_path", dataPath).Msg("initializing Swiss Ephemeris")

	testJD := swephgo.Julday(2000, 1, 1, 12.0, 1)
	xx := make([]float64, 6)
	serr := make([]byte, 256)
	result := swephgo.Calc(testJD, sweSun, 0, xx, serr)
	if result < 0 {
		e.logger.Error().Int("result_code", int(result)).Str("error", string(serr)).
			Msg("Swiss Ephemeris test calculation failed")
		return corerr.Newf(corerr.EphemerisUnavailable, "swiss ephemeris initialization failed: %s", string(serr))
	}

	e.logger.Info().Float64("test_sun_longitude", xx[0]).Msg("Swiss Ephemeris initialized")
	e.initialized = true
	return nil
}

// JulianDay converts a UTC time to the Julian Day Number swephgo expects.
func (e *Ephemeris) JulianDay(utcHour float64, year, month, day int) float64 {
	return swephgo.Julday(year, month, day, utcHour, 1)
}

// vector is the raw (longitude, latitude, distance, speed×3) tuple swephgo
// returns from a single Calc call.
type vector struct {
	Longitude float64
	Latitude  float64
	Distance  float64
	LonSpeed  float64
	LatSpeed  float64
	DistSpeed float64
}

func (e *Ephemeris) calc(julianDay float64, sweBody, flags int) (vector, error) {
	if !e.initialized {
		return vector{}, corerr.New(corerr.EphemerisUnavailable, "ephemeris not initialized")
	}
	xx := make([]float64, 6)
	serr := make([]byte, 256)
	result := swephgo.Calc(julianDay, sweBody, flags|sweflgSpeed, xx, serr)
	if result < 0 {
		return vector{}, corerr.Newf(corerr.EphemerisUnavailable, "calc failed for body %d: %s", sweBody, string(serr))
	}
	return vector{
		Longitude: xx[0], Latitude: xx[1], Distance: xx[2],
		LonSpeed: xx[3], LatSpeed: xx[4], DistSpeed: xx[5],
	}, nil
}

// EclipticState returns a body's apparent ecliptic-of-date longitude,
// latitude, and daily motion at the given Julian Day.
func (e *Ephemeris) EclipticState(julianDay float64, body domain.BodyId) (vector, error) {
	sweBody, ok := bodyToSwe[body]
	if !ok {
		return vector{}, corerr.Newf(corerr.InvalidInput, "unsupported body for ephemeris lookup: %s", body)
	}
	return e.calc(julianDay, sweBody, 0)
}

// EquatorialState returns a body's right ascension and declination at the
// given Julian Day, used for declination aspects and RAMC-based house cusp
// derivation.
func (e *Ephemeris) EquatorialState(julianDay float64, body domain.BodyId) (vector, error) {
	sweBody, ok := bodyToSwe[body]
	if !ok {
		return vector{}, corerr.Newf(corerr.InvalidInput, "unsupported body for ephemeris lookup: %s", body)
	}
	return e.calc(julianDay, sweBody, sweflgEquatorial)
}

// TrueNodeState returns the Moon's true node ecliptic longitude, latitude
// and daily motion (the library's true-node body, ecliptic frame).
func (e *Ephemeris) TrueNodeState(julianDay float64) (vector, error) {
	return e.calc(julianDay, sweTrueNode, 0)
}

// MoonGeocentric returns the Moon's geocentric ecliptic position/speed.
func (e *Ephemeris) MoonGeocentric(julianDay float64) (vector, error) {
	return e.calc(julianDay, sweMoon, 0)
}

// houseResult is the raw swephgo Houses() output.
type houseResult struct {
	Cusps     []float64 // 1..12
	Ascendant float64
	Midheaven float64
	ARMC      float64
}

// Houses invokes swephgo's own house computation. Its only caller is the
// natal Ascendant cross-check; cusp math for Placidus/Koch is computed
// independently in houses.go, and the cusps returned here are not used.
func (e *Ephemeris) Houses(julianDay, latitude, longitude float64, system domain.HouseSystem) (houseResult, error) {
	if !e.initialized {
		return houseResult{}, corerr.New(corerr.EphemerisUnavailable, "ephemeris not initialized")
	}
	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)
	result := swephgo.Houses(julianDay, latitude, longitude, int(houseSystemCode(system)), cusps, ascmc)
	if result < 0 {
		return houseResult{}, corerr.New(corerr.NumericDegeneracy, "house computation failed, likely polar degeneracy")
	}
	return houseResult{
		Cusps:     cusps[1:13],
		Ascendant: ascmc[0],
		Midheaven: ascmc[1],
		ARMC:      ascmc[2],
	}, nil
}

// degreeInSign mirrors domain.DegreeInSign for callers limited to this
// package's vector type.
func degreeInSign(longitude float64) float64 {
	return math.Mod(domain.NormalizeAngle(longitude), 30)
}
