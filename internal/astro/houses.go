package astro

import (
	"math"

	"astroeph-api/internal/domain"
)

// HouseCalculator computes the twelve house cusps under Placidus, Koch, or
// Whole-Sign, and resolves body-to-house assignment.
type HouseCalculator struct{}

// NewHouseCalculator constructs a HouseCalculator. It holds no state; all
// inputs come from the angles the natal calculator already derived.
func NewHouseCalculator() *HouseCalculator {
	return &HouseCalculator{}
}

// CuspResult is the twelve raw cusp longitudes plus whether polar
// degeneracy forced a Whole-Sign substitution.
type CuspResult struct {
	Cusps           [12]float64
	PolarDegeneracy bool
}

// Compute derives the twelve cusp longitudes for a house system. Polar
// latitudes (|latitude| > 66.5°) substitute Whole-Sign for Placidus/Koch.
func (hc *HouseCalculator) Compute(system domain.HouseSystem, angles Angles, location domain.Location) CuspResult {
	if location.IsPolar() && system != domain.HouseWholeSign {
		return CuspResult{Cusps: wholeSignCusps(angles.Ascendant), PolarDegeneracy: true}
	}
	switch system {
	case domain.HouseWholeSign:
		return CuspResult{Cusps: wholeSignCusps(angles.Ascendant)}
	case domain.HouseKoch:
		return CuspResult{Cusps: kochCusps(angles, location.Latitude)}
	default:
		return CuspResult{Cusps: placidusCusps(angles, location.Latitude)}
	}
}

// wholeSignCusps puts every cusp at 0° of a sign, with house 1 starting at
// the Ascendant's own sign.
func wholeSignCusps(ascendant float64) [12]float64 {
	ascSign := domain.SignIndexOf(ascendant)
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		signIndex := ((ascSign+i-1)%12 + 12) % 12
		cusps[i] = float64(signIndex) * 30
	}
	return cusps
}

// placidusCusps implements the semi-arc method, using the closed-form
// RA→ecliptic-longitude approximation (equivalent in shape to the
// Ascendant formula, parameterized by an arbitrary right ascension instead
// of RAMC) rather than the canonical iterative solution — see DESIGN.md
// for the fidelity rationale.
func placidusCusps(angles Angles, latitude float64) [12]float64 {
	raAsc := rightAscensionOfEcliptic(angles.Ascendant, angles.Obliquity)
	raMC := angles.RAMC

	diurnal := foldTo180(domain.NormalizeAngle(raAsc - raMC))
	nocturnal := 180 - diurnal

	ra11 := raMC + diurnal/3
	ra12 := raMC + 2*diurnal/3
	ra2 := raAsc + nocturnal/3
	ra3 := raAsc + 2*nocturnal/3

	var cusps [12]float64
	cusps[0] = angles.Ascendant
	cusps[3] = domain.NormalizeAngle(angles.Midheaven + 180)
	cusps[6] = domain.NormalizeAngle(angles.Ascendant + 180)
	cusps[9] = angles.Midheaven

	cusps[10] = ascendantLongitude(ra11, angles.Obliquity, latitude)
	cusps[11] = ascendantLongitude(ra12, angles.Obliquity, latitude)
	cusps[1] = ascendantLongitude(ra2, angles.Obliquity, latitude)
	cusps[2] = ascendantLongitude(ra3, angles.Obliquity, latitude)

	cusps[4] = domain.NormalizeAngle(cusps[10] + 180)
	cusps[5] = domain.NormalizeAngle(cusps[11] + 180)
	cusps[7] = domain.NormalizeAngle(cusps[1] + 180)
	cusps[8] = domain.NormalizeAngle(cusps[2] + 180)

	return cusps
}

// kochCusps implements the Koch system's pseudo-RAMC offsets.
func kochCusps(angles Angles, latitude float64) [12]float64 {
	var cusps [12]float64
	cusps[0] = angles.Ascendant
	cusps[3] = domain.NormalizeAngle(angles.Midheaven + 180)
	cusps[6] = domain.NormalizeAngle(angles.Ascendant + 180)
	cusps[9] = angles.Midheaven

	offsets := map[int]float64{
		10: 30, 11: 60, 1: 210, 2: 240, 4: 120, 5: 150, 7: 300, 8: 330,
	}
	for idx, offset := range offsets {
		pseudoRAMC := angles.RAMC + offset
		cusps[idx] = ascendantLongitude(pseudoRAMC, angles.Obliquity, latitude)
	}
	return cusps
}

// rightAscensionOfEcliptic converts an ecliptic longitude (latitude 0) to
// right ascension.
func rightAscensionOfEcliptic(longitudeDeg, obliquityDeg float64) float64 {
	lon := longitudeDeg * math.Pi / 180
	eps := obliquityDeg * math.Pi / 180
	ra := math.Atan2(math.Sin(lon)*math.Cos(eps), math.Cos(lon)) * 180 / math.Pi
	return domain.NormalizeAngle(ra)
}

// foldTo180 folds a [0,360) angle into [0,180].
func foldTo180(angle float64) float64 {
	if angle > 180 {
		return 360 - angle
	}
	return angle
}

// BuildHouseSet converts raw cusp longitudes into domain.House records with
// sign/size metadata attached.
func BuildHouseSet(cusps [12]float64) []domain.House {
	slice := cusps[:]
	sizes := domain.CalculateHouseSizes(slice)
	houses := make([]domain.House, 12)
	for i := 0; i < 12; i++ {
		h := domain.NewHouse(i+1, cusps[i])
		h.Size = sizes[i]
		houses[i] = h
	}
	return houses
}

// AssignHouse resolves the house number containing a body longitude, the
// closed-open interval `[cusp[i], cusp[i+1])`.
func AssignHouse(cusps [12]float64, bodyLongitude float64) int {
	for i := 0; i < 12; i++ {
		h := domain.NewHouse(i+1, cusps[i])
		next := cusps[(i+1)%12]
		if h.ContainsPlanet(bodyLongitude, next) {
			return i + 1
		}
	}
	return 1
}
