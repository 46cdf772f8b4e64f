package astro

import (
	"testing"

	"astroeph-api/internal/domain"
)

func TestDetectPatternsGrandTrine(t *testing.T) {
	aspects := []domain.Aspect{
		{BodyA: domain.Sun, BodyB: domain.Moon, Kind: domain.Trine},
		{BodyA: domain.Moon, BodyB: domain.Mars, Kind: domain.Trine},
		{BodyA: domain.Sun, BodyB: domain.Mars, Kind: domain.Trine},
	}
	patterns := DetectPatterns(nil, aspects)
	found := false
	for _, p := range patterns {
		if p.Kind == "grand_trine" {
			found = true
			if len(p.Bodies) != 3 {
				t.Errorf("grand trine should name 3 bodies, got %d", len(p.Bodies))
			}
		}
	}
	if !found {
		t.Error("expected a grand trine to be detected")
	}
}

func TestDetectPatternsGrandTrineNoDuplicates(t *testing.T) {
	aspects := []domain.Aspect{
		{BodyA: domain.Sun, BodyB: domain.Moon, Kind: domain.Trine},
		{BodyA: domain.Moon, BodyB: domain.Mars, Kind: domain.Trine},
		{BodyA: domain.Sun, BodyB: domain.Mars, Kind: domain.Trine},
	}
	patterns := DetectPatterns(nil, aspects)
	count := 0
	for _, p := range patterns {
		if p.Kind == "grand_trine" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one grand trine found once, got %d", count)
	}
}

func TestDetectPatternsTSquare(t *testing.T) {
	aspects := []domain.Aspect{
		{BodyA: domain.Sun, BodyB: domain.Moon, Kind: domain.Opposition},
		{BodyA: domain.Sun, BodyB: domain.Mars, Kind: domain.Square},
		{BodyA: domain.Moon, BodyB: domain.Mars, Kind: domain.Square},
	}
	patterns := DetectPatterns(nil, aspects)
	found := false
	for _, p := range patterns {
		if p.Kind == "t_square" {
			found = true
		}
	}
	if !found {
		t.Error("expected a t-square to be detected")
	}
}

func TestDetectPatternsStellium(t *testing.T) {
	bodies := []domain.BodyState{
		domain.NewBodyState(domain.Sun, 10, 0, 0, 0, 1),
		domain.NewBodyState(domain.Mercury, 15, 0, 0, 0, 1),
		domain.NewBodyState(domain.Venus, 20, 0, 0, 0, 1),
	}
	patterns := DetectPatterns(bodies, nil)
	found := false
	for _, p := range patterns {
		if p.Kind == "stellium" && len(p.Bodies) == 3 {
			found = true
		}
	}
	if !found {
		t.Error("expected a stellium of three same-sign bodies")
	}
}

func TestDetectPatternsNoFalsePositiveStellium(t *testing.T) {
	bodies := []domain.BodyState{
		domain.NewBodyState(domain.Sun, 10, 0, 0, 0, 1),
		domain.NewBodyState(domain.Mercury, 100, 0, 0, 0, 1),
	}
	patterns := DetectPatterns(bodies, nil)
	for _, p := range patterns {
		if p.Kind == "stellium" {
			t.Errorf("did not expect a stellium with only two bodies in different signs: %+v", p)
		}
	}
}
