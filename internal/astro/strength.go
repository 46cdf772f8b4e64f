package astro

import "astroeph-api/internal/domain"

// DignityScore maps a body's essential dignity to a traditional -2..+2
// strength score.
func DignityScore(dignity domain.Dignity) int {
	switch dignity {
	case domain.Exaltation:
		return 2
	case domain.Domicile:
		return 1
	case domain.Detriment:
		return -1
	case domain.Fall:
		return -2
	default:
		return 0
	}
}

// HouseScore scores a body's house placement by angularity: angular houses
// score highest, succedent moderate, cadent lowest.
func HouseScore(house domain.House) int {
	switch house.GetHouseType() {
	case "angular":
		return 2
	case "succedent":
		return 1
	default:
		return 0
	}
}

// BodyStrength is the aggregate strength score for one body: dignity +
// house angularity + a caller-supplied aspect contribution.
type BodyStrength struct {
	Body         domain.BodyId `json:"body"`
	DignityScore int           `json:"dignity_score"`
	HouseScore   int           `json:"house_score"`
	AspectScore  int           `json:"aspect_score"`
	OverallScore int           `json:"overall_score"`
}

// ComputeStrengths derives a BodyStrength for every body, given its house
// assignment and its net aspect contribution (positive per harmonious
// aspect, negative per challenging one).
func ComputeStrengths(bodies []domain.BodyState, houses []domain.House, aspects []domain.Aspect) []BodyStrength {
	houseByNumber := make(map[int]domain.House, len(houses))
	for _, h := range houses {
		houseByNumber[h.Number] = h
	}

	aspectScore := make(map[domain.BodyId]int)
	for _, a := range aspects {
		delta := 0
		switch a.Nature {
		case domain.Harmonious:
			delta = 1
		case domain.Challenging:
			delta = -1
		}
		aspectScore[a.BodyA] += delta
		aspectScore[a.BodyB] += delta
	}

	strengths := make([]BodyStrength, 0, len(bodies))
	for _, b := range bodies {
		dignity := DignityScore(b.Dignity)
		houseScore := 0
		if h, ok := houseByNumber[b.House]; ok {
			houseScore = HouseScore(h)
		}
		aspectPts := aspectScore[b.Body]
		strengths = append(strengths, BodyStrength{
			Body:         b.Body,
			DignityScore: dignity,
			HouseScore:   houseScore,
			AspectScore:  aspectPts,
			OverallScore: dignity + houseScore + aspectPts,
		})
	}
	return strengths
}
