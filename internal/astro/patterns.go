package astro

import "astroeph-api/internal/domain"

// Pattern is a detected multi-body aspect configuration: grand trines,
// T-squares, and stelliums fall out of pure structural graph search over
// an already-computed aspect set.
type Pattern struct {
	Kind  string          `json:"kind"`
	Bodies []domain.BodyId `json:"bodies"`
}

// DetectPatterns finds grand trines, T-squares, and stelliums over a
// computed body/aspect set.
func DetectPatterns(bodies []domain.BodyState, aspects []domain.Aspect) []Pattern {
	var patterns []Pattern
	patterns = append(patterns, grandTrines(aspects)...)
	patterns = append(patterns, tSquares(aspects)...)
	patterns = append(patterns, stelliums(bodies)...)
	return patterns
}

func aspectsOfKind(aspects []domain.Aspect, kind domain.AspectKind) map[domain.BodyId]map[domain.BodyId]bool {
	adj := make(map[domain.BodyId]map[domain.BodyId]bool)
	for _, a := range aspects {
		if a.Kind != kind {
			continue
		}
		if adj[a.BodyA] == nil {
			adj[a.BodyA] = make(map[domain.BodyId]bool)
		}
		if adj[a.BodyB] == nil {
			adj[a.BodyB] = make(map[domain.BodyId]bool)
		}
		adj[a.BodyA][a.BodyB] = true
		adj[a.BodyB][a.BodyA] = true
	}
	return adj
}

// grandTrines finds sets of three bodies all mutually in trine.
func grandTrines(aspects []domain.Aspect) []Pattern {
	adj := aspectsOfKind(aspects, domain.Trine)
	var patterns []Pattern
	seen := make(map[string]bool)
	for a := range adj {
		for b := range adj[a] {
			for c := range adj[b] {
				if c == a || !adj[a][c] {
					continue
				}
				key := tripleKey(a, b, c)
				if seen[key] {
					continue
				}
				seen[key] = true
				patterns = append(patterns, Pattern{Kind: "grand_trine", Bodies: []domain.BodyId{a, b, c}})
			}
		}
	}
	return patterns
}

// tSquares finds two opposed bodies both squaring a third (the apex).
func tSquares(aspects []domain.Aspect) []Pattern {
	oppositions := aspectsOfKind(aspects, domain.Opposition)
	squares := aspectsOfKind(aspects, domain.Square)

	var patterns []Pattern
	seen := make(map[string]bool)
	for a := range oppositions {
		for b := range oppositions[a] {
			for apex := range squares[a] {
				if squares[b][apex] {
					key := tripleKey(a, b, apex)
					if seen[key] {
						continue
					}
					seen[key] = true
					patterns = append(patterns, Pattern{Kind: "t_square", Bodies: []domain.BodyId{a, b, apex}})
				}
			}
		}
	}
	return patterns
}

// stelliums finds three or more bodies sharing a sign.
func stelliums(bodies []domain.BodyState) []Pattern {
	bySign := make(map[int][]domain.BodyId)
	for _, b := range bodies {
		bySign[b.SignIndex] = append(bySign[b.SignIndex], b.Body)
	}
	var patterns []Pattern
	for _, group := range bySign {
		if len(group) >= 3 {
			patterns = append(patterns, Pattern{Kind: "stellium", Bodies: group})
		}
	}
	return patterns
}

func tripleKey(a, b, c domain.BodyId) string {
	items := []domain.BodyId{a, b, c}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if items[j] < items[i] {
				items[i], items[j] = items[j], items[i]
			}
		}
	}
	return string(items[0]) + "|" + string(items[1]) + "|" + string(items[2])
}
