package astro

import (
	"testing"

	"astroeph-api/internal/domain"
)

func TestWholeSignCuspsStartAtAscendantSign(t *testing.T) {
	cusps := wholeSignCusps(125.0) // Leo rising (sign 5)
	if cusps[0] != 120 {
		t.Errorf("house 1 cusp = %v, want 120 (start of Leo)", cusps[0])
	}
	for i := 0; i < 12; i++ {
		if int(cusps[i])%30 != 0 {
			t.Errorf("whole-sign cusp %d = %v, expected multiple of 30", i+1, cusps[i])
		}
	}
}

func TestComputeSubstitutesWholeSignAtPolarLatitude(t *testing.T) {
	hc := NewHouseCalculator()
	angles := Angles{Ascendant: 10, Midheaven: 280, Obliquity: 23.4, RAMC: 100}
	loc := domain.Location{Latitude: 70, Longitude: 0}
	result := hc.Compute(domain.HousePlacidus, angles, loc)
	if !result.PolarDegeneracy {
		t.Error("expected polar degeneracy flag at latitude 70")
	}
	if result.Cusps[0] != 0 {
		t.Errorf("expected whole-sign substitution, cusp 1 = %v", result.Cusps[0])
	}
}

func TestComputeNoPolarDegeneracyAtModerateLatitude(t *testing.T) {
	hc := NewHouseCalculator()
	angles := Angles{Ascendant: 10, Midheaven: 280, Obliquity: 23.4, RAMC: 100}
	loc := domain.Location{Latitude: 40, Longitude: 0}
	result := hc.Compute(domain.HousePlacidus, angles, loc)
	if result.PolarDegeneracy {
		t.Error("did not expect polar degeneracy at latitude 40")
	}
}

func TestPlacidusAnglesAnchorAngularHouses(t *testing.T) {
	angles := Angles{Ascendant: 10, Midheaven: 280, Obliquity: 23.4, RAMC: 100}
	cusps := placidusCusps(angles, 40)
	if cusps[0] != angles.Ascendant {
		t.Errorf("house 1 cusp = %v, want ascendant %v", cusps[0], angles.Ascendant)
	}
	if cusps[9] != angles.Midheaven {
		t.Errorf("house 10 cusp = %v, want midheaven %v", cusps[9], angles.Midheaven)
	}
	if got := domain.NormalizeAngle(cusps[6] - cusps[0]); got != 180 {
		t.Errorf("house 7 cusp should be opposite house 1, diff = %v", got)
	}
}

func TestAssignHouseWrapsThroughZero(t *testing.T) {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = float64(i) * 30
	}
	cusps[11] = 330
	if got := AssignHouse(cusps, 350); got != 12 {
		t.Errorf("AssignHouse(350) = %d, want house 12", got)
	}
	if got := AssignHouse(cusps, 5); got != 1 {
		t.Errorf("AssignHouse(5) = %d, want house 1", got)
	}
}
