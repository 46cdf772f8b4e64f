package astro

import "astroeph-api/internal/domain"

// isSunMoonPair and isVenusMarsPair identify the cross-contribution bonus pairs.
func isSunMoonPair(a, b domain.BodyId) bool {
	return (a == domain.Sun && b == domain.Moon) || (a == domain.Moon && b == domain.Sun)
}

func isVenusMarsPair(a, b domain.BodyId) bool {
	return (a == domain.Venus && b == domain.Mars) || (a == domain.Mars && b == domain.Venus)
}

// CompatibilityScore implements weighted synastry scoring: Sun-Moon pairs
// carry a 3x multiplier, Venus-Mars pairs 2x, and any aspect touching
// Mercury gets a 1.5x boost.
func CompatibilityScore(synastryAspects []domain.Aspect) domain.CompatibilityScore {
	subScores := map[domain.BodyId]float64{
		domain.Sun: 0, domain.Moon: 0, domain.Venus: 0, domain.Mars: 0, domain.Mercury: 0,
	}

	var harmony, challenge, total float64
	for _, a := range synastryAspects {
		contribution := a.Strength * 10

		var harmonyShare, challengeShare float64
		switch a.Nature {
		case domain.Harmonious:
			harmonyShare = contribution
			challengeShare = 0.2 * contribution
		case domain.Challenging:
			challengeShare = contribution
			harmonyShare = 0.2 * contribution
		default:
			harmonyShare = 0.5 * contribution
			challengeShare = 0.5 * contribution
		}

		pairMultiplier := 1.0
		totalBonus := 0.0
		if isSunMoonPair(a.BodyA, a.BodyB) {
			pairMultiplier = 3.0
			if a.Nature == domain.Harmonious {
				totalBonus = 2.0 * contribution
			}
			subScores[domain.Sun] += contribution * pairMultiplier
			subScores[domain.Moon] += contribution * pairMultiplier
		} else if isVenusMarsPair(a.BodyA, a.BodyB) {
			pairMultiplier = 2.0
			if a.Nature == domain.Harmonious {
				totalBonus = 1.5 * contribution
			}
			subScores[domain.Venus] += contribution * pairMultiplier
			subScores[domain.Mars] += contribution * pairMultiplier
		}
		if a.BodyA == domain.Mercury || a.BodyB == domain.Mercury {
			subScores[domain.Mercury] += contribution * 1.5
		}

		harmony += harmonyShare
		challenge += challengeShare
		total += contribution + totalBonus
	}

	upperBound := float64(len(synastryAspects)) * 10
	if upperBound == 0 {
		upperBound = 1
	}

	score := domain.CompatibilityScore{
		TotalScore:     clamp0to100(total / upperBound * 100),
		HarmonyScore:   clamp0to100(harmony / upperBound * 100),
		ChallengeScore: clamp0to100(challenge / upperBound * 100),
		SubScores:      subScores,
	}
	score.Rating = ratingBand(score.TotalScore)
	return score
}

func clamp0to100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func ratingBand(total float64) string {
	switch {
	case total >= 80:
		return "excellent"
	case total >= 70:
		return "very good"
	case total >= 60:
		return "good"
	case total >= 50:
		return "moderate"
	case total >= 40:
		return "interesting-dynamics"
	case total >= 30:
		return "challenging"
	default:
		return "difficult"
	}
}
