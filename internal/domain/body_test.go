package domain

import "testing"

func TestCanonicalOrderingStable(t *testing.T) {
	a, b := Canonical(Moon, Sun)
	if a != Sun || b != Moon {
		t.Errorf("Canonical(Moon, Sun) = (%v, %v), want (Sun, Moon)", a, b)
	}
	// Reversed input must produce the same canonical pair.
	a2, b2 := Canonical(Sun, Moon)
	if a2 != a || b2 != b {
		t.Errorf("Canonical not order-independent: (%v,%v) vs (%v,%v)", a, b, a2, b2)
	}
}

func TestCanonicalUnknownBodyFallsBackLexical(t *testing.T) {
	a, b := Canonical(SouthNode, NorthNode)
	if a != NorthNode || b != SouthNode {
		t.Errorf("Canonical(SouthNode, NorthNode) = (%v, %v), want lexical order", a, b)
	}
}

func TestIsRetrogradeByConvention(t *testing.T) {
	if IsRetrogradeByConvention(Sun, -1) {
		t.Error("Sun must never be retrograde by convention")
	}
	if !IsRetrogradeByConvention(NorthNode, 0.05) {
		t.Error("NorthNode must always be retrograde by convention")
	}
	if !IsRetrogradeByConvention(SouthNode, 0.05) {
		t.Error("SouthNode must always be retrograde by convention")
	}
	if !IsRetrogradeByConvention(Mars, -0.1) {
		t.Error("negative daily motion should mark a regular body retrograde")
	}
	if IsRetrogradeByConvention(Mars, 0.5) {
		t.Error("positive daily motion should not mark a regular body retrograde")
	}
}
