package astro

import (
	"testing"

	"astroeph-api/internal/domain"
)

func TestSouthNodeAlwaysOpposite(t *testing.T) {
	north := domain.NewBodyState(domain.NorthNode, 45, 0, 0, 0, -0.05)
	south := SouthNode(north)
	if south.Body != domain.SouthNode {
		t.Errorf("expected SouthNode body id, got %v", south.Body)
	}
	if got := domain.AngularDistance(north.Longitude, south.Longitude); got != 180 {
		t.Errorf("north/south node separation = %v, want 180", got)
	}
}

func TestWrapAwareDailyMotionHandlesZeroCrossing(t *testing.T) {
	// Body moves from 359 to 1 degree, crossing 0; true motion is +2, not -358.
	got := wrapAwareDailyMotion(359, 1)
	if got != 1 {
		t.Errorf("wrapAwareDailyMotion(359,1) = %v, want 1 (half of the +2 wrap-corrected diff)", got)
	}
}

func TestWrapAwareDailyMotionOrdinary(t *testing.T) {
	got := wrapAwareDailyMotion(10, 12)
	if got != 1 {
		t.Errorf("wrapAwareDailyMotion(10,12) = %v, want 1", got)
	}
}

func TestAscendantLongitudeInRange(t *testing.T) {
	asc := ascendantLongitude(100, 23.44, 40)
	if asc < 0 || asc >= 360 {
		t.Errorf("ascendantLongitude out of [0,360): %v", asc)
	}
}

func TestPartOfFortuneDayNightReversal(t *testing.T) {
	// Ascendant 0, Midheaven 90: sun at 45 is daytime, sun at 200 is nighttime.
	dayPart := PartOfFortune(0, 90, 45, 180)
	nightPart := PartOfFortune(0, 90, 200, 180)
	if dayPart == nightPart {
		t.Error("expected day and night Part of Fortune formulas to diverge for asymmetric sun/moon longitudes")
	}
}

func TestIsDaytimeBirthAboveHorizon(t *testing.T) {
	if !isDaytimeBirth(0, 90, 45) {
		t.Error("expected sun at ascendant+45 to be classified daytime")
	}
	if isDaytimeBirth(0, 90, 200) {
		t.Error("expected sun at ascendant+200 to be classified nighttime")
	}
}
