package domain

import "testing"

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{359.999, 359.999},
		{360, 0},
		{720.5, 0.5},
		{-1, 359},
		{-361, 359},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeAngle(%v) = %v, out of [0,360)", c.in, got)
		}
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAngularDistanceSymmetric(t *testing.T) {
	pairs := [][2]float64{{10, 20}, {350, 10}, {0, 180}, {0, 0}, {190, 10}}
	for _, p := range pairs {
		d1 := AngularDistance(p[0], p[1])
		d2 := AngularDistance(p[1], p[0])
		if d1 != d2 {
			t.Errorf("AngularDistance not symmetric for %v: %v vs %v", p, d1, d2)
		}
		if d1 < 0 || d1 > 180 {
			t.Errorf("AngularDistance(%v) = %v, out of [0,180]", p, d1)
		}
	}
}

func TestAngularDistanceWrap(t *testing.T) {
	if got := AngularDistance(350, 10); got != 20 {
		t.Errorf("AngularDistance(350,10) = %v, want 20", got)
	}
	if got := AngularDistance(0, 180); got != 180 {
		t.Errorf("AngularDistance(0,180) = %v, want 180", got)
	}
}

func TestMidpointShorterArc(t *testing.T) {
	// 350 and 10 straddle 0; the shorter-arc midpoint is 0, not 180.
	got := Midpoint(350, 10)
	if got != 0 {
		t.Errorf("Midpoint(350,10) = %v, want 0", got)
	}
}

func TestMidpointOrdinary(t *testing.T) {
	got := Midpoint(10, 20)
	if got != 15 {
		t.Errorf("Midpoint(10,20) = %v, want 15", got)
	}
}

func TestSignIndexOfBoundaries(t *testing.T) {
	cases := []struct {
		lon  float64
		want int
	}{
		{0, 1}, {29.999, 1}, {30, 2}, {359.999, 12}, {360, 1}, {-30, 12},
	}
	for _, c := range cases {
		if got := SignIndexOf(c.lon); got != c.want {
			t.Errorf("SignIndexOf(%v) = %v, want %v", c.lon, got, c.want)
		}
	}
}

func TestDegreeInSignRange(t *testing.T) {
	for _, lon := range []float64{0, 15, 29.999, 30, 359.999, 400} {
		d := DegreeInSign(lon)
		if d < 0 || d >= 30 {
			t.Errorf("DegreeInSign(%v) = %v, out of [0,30)", lon, d)
		}
	}
}
