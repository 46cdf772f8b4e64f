package astro

import (
	"testing"

	"astroeph-api/internal/domain"
)

func TestDignityScoreOrdering(t *testing.T) {
	if DignityScore(domain.Exaltation) <= DignityScore(domain.Domicile) {
		t.Error("exaltation should score higher than domicile")
	}
	if DignityScore(domain.Domicile) <= DignityScore(domain.Peregrine) {
		t.Error("domicile should score higher than peregrine")
	}
	if DignityScore(domain.Fall) >= DignityScore(domain.Detriment) {
		t.Error("fall should score lower than detriment")
	}
}

func TestHouseScoreAngularHighest(t *testing.T) {
	angular := domain.NewHouse(1, 0)
	succedent := domain.NewHouse(2, 30)
	cadent := domain.NewHouse(3, 60)
	if HouseScore(angular) <= HouseScore(succedent) {
		t.Error("angular house should score higher than succedent")
	}
	if HouseScore(succedent) <= HouseScore(cadent) {
		t.Error("succedent house should score higher than cadent")
	}
}

func TestComputeStrengthsAggregatesAspectContributions(t *testing.T) {
	sun := domain.NewBodyState(domain.Sun, 125, 0, 0, 0, 1) // Leo: domicile for Sun
	sun.House = 1
	houses := []domain.House{domain.NewHouse(1, 0)}
	aspects := []domain.Aspect{
		{BodyA: domain.Sun, BodyB: domain.Moon, Nature: domain.Harmonious},
		{BodyA: domain.Mars, BodyB: domain.Sun, Nature: domain.Challenging},
	}
	strengths := ComputeStrengths([]domain.BodyState{sun}, houses, aspects)
	if len(strengths) != 1 {
		t.Fatalf("expected one strength record, got %d", len(strengths))
	}
	s := strengths[0]
	if s.DignityScore != 1 {
		t.Errorf("expected domicile score 1 for Sun in Leo, got %d", s.DignityScore)
	}
	if s.HouseScore != 2 {
		t.Errorf("expected angular house score 2, got %d", s.HouseScore)
	}
	if s.AspectScore != 0 {
		t.Errorf("expected net aspect score 0 (one harmonious, one challenging), got %d", s.AspectScore)
	}
	if s.OverallScore != s.DignityScore+s.HouseScore+s.AspectScore {
		t.Errorf("OverallScore should be the sum of components, got %d", s.OverallScore)
	}
}
