package astro

import (
	"testing"

	"astroeph-api/internal/domain"
)

func sunMoonSquareBodies() []domain.BodyState {
	sun := domain.NewBodyState(domain.Sun, 0, 0, 0, 0, 1.0)
	moon := domain.NewBodyState(domain.Moon, 90, 0, 0, 0, 12.0)
	return []domain.BodyState{sun, moon}
}

func TestDetectFindsSquareWithinOrb(t *testing.T) {
	engine := NewAspectEngine(false, false)
	aspects := engine.Detect(sunMoonSquareBodies())
	if len(aspects) != 1 {
		t.Fatalf("expected exactly one aspect, got %d", len(aspects))
	}
	if aspects[0].Kind != domain.Square {
		t.Errorf("expected square, got %v", aspects[0].Kind)
	}
}

func TestDetectIsSymmetricInInputOrder(t *testing.T) {
	engine := NewAspectEngine(false, false)
	bodies := sunMoonSquareBodies()
	reversed := []domain.BodyState{bodies[1], bodies[0]}

	a1 := engine.Detect(bodies)
	a2 := engine.Detect(reversed)
	if len(a1) != 1 || len(a2) != 1 {
		t.Fatalf("expected one aspect each, got %d and %d", len(a1), len(a2))
	}
	if a1[0].BodyA != a2[0].BodyA || a1[0].BodyB != a2[0].BodyB {
		t.Errorf("aspect pair ordering not canonical across input order: (%v,%v) vs (%v,%v)",
			a1[0].BodyA, a1[0].BodyB, a2[0].BodyA, a2[0].BodyB)
	}
}

func TestDetectNoDuplicatePairs(t *testing.T) {
	engine := NewAspectEngine(true, true)
	bodies := []domain.BodyState{
		domain.NewBodyState(domain.Sun, 0, 0, 10, 0, 1.0),
		domain.NewBodyState(domain.Moon, 2, 0, 10, 0, 12.0),
		domain.NewBodyState(domain.Mercury, 90, 0, -5, 0, 1.5),
	}
	aspects := engine.Detect(bodies)
	seen := make(map[[2]domain.BodyId]bool)
	for _, a := range aspects {
		key := [2]domain.BodyId{a.BodyA, a.BodyB}
		if seen[key] && !a.IsDeclination() {
			t.Errorf("duplicate non-declination aspect for pair %v", key)
		}
		seen[key] = true
	}
}

func TestExactAspectIsBothApplyingAndSeparating(t *testing.T) {
	sun := domain.NewBodyState(domain.Sun, 0, 0, 0, 0, 1.0)
	moon := domain.NewBodyState(domain.Moon, 90.0, 0, 0, 0, 12.0)
	aspect, ok := NewAspectEngine(false, false).detectPair(sun, moon)
	if !ok {
		t.Fatal("expected a detected aspect")
	}
	if !aspect.Exact {
		t.Skip("orb not exact for this fixture; adjust longitudes if this fails")
	}
	if !aspect.Applying || !aspect.Separating {
		t.Errorf("exact aspect must set both applying and separating, got applying=%v separating=%v",
			aspect.Applying, aspect.Separating)
	}
}

func TestSortTransitStyleOrdersExactFirst(t *testing.T) {
	aspects := []domain.Aspect{
		{Kind: domain.Trine, Orb: 5, Applying: false, Exact: false},
		{Kind: domain.Square, Orb: 0.05, Exact: true},
		{Kind: domain.Sextile, Orb: 2, Applying: true},
	}
	SortTransitStyle(aspects)
	if !aspects[0].Exact {
		t.Errorf("expected exact aspect first, got %+v", aspects[0])
	}
	if !aspects[1].Applying {
		t.Errorf("expected applying aspect second, got %+v", aspects[1])
	}
}

func TestDetectDeclinationParallelVsContraParallel(t *testing.T) {
	sameSignA := domain.NewBodyState(domain.Sun, 0, 0, 15, 0, 1)
	sameSignB := domain.NewBodyState(domain.Moon, 100, 0, 15.5, 0, 12)
	aspect, ok := detectDeclination(sameSignA, sameSignB)
	if !ok || aspect.Kind != domain.Parallel {
		t.Errorf("expected parallel for same-sign declinations, got %+v ok=%v", aspect, ok)
	}

	oppSignA := domain.NewBodyState(domain.Sun, 0, 0, 15, 0, 1)
	oppSignB := domain.NewBodyState(domain.Moon, 100, 0, -15.2, 0, 12)
	aspect2, ok2 := detectDeclination(oppSignA, oppSignB)
	if !ok2 || aspect2.Kind != domain.ContraParallel {
		t.Errorf("expected contra-parallel for opposite-sign declinations, got %+v ok=%v", aspect2, ok2)
	}
}
