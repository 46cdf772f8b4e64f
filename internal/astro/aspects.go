package astro

import (
	"math"
	"sort"

	"astroeph-api/internal/domain"
)

// orbModifier returns the per-body orb adjustment: Sun/Moon +2.0,
// Jupiter/Saturn +1.0, Uranus/Neptune/Pluto -0.5, Nodes -1.0, else 0.
func orbModifier(body domain.BodyId) float64 {
	switch body {
	case domain.Sun, domain.Moon:
		return 2.0
	case domain.Jupiter, domain.Saturn:
		return 1.0
	case domain.Uranus, domain.Neptune, domain.Pluto:
		return -0.5
	case domain.NorthNode, domain.SouthNode:
		return -1.0
	default:
		return 0.0
	}
}

// AspectEngine detects and scores aspects between body-state tables.
type AspectEngine struct {
	IncludeMinor       bool
	IncludeDeclination bool
}

// NewAspectEngine constructs an AspectEngine with the given detection flags.
func NewAspectEngine(includeMinor, includeDeclination bool) *AspectEngine {
	return &AspectEngine{IncludeMinor: includeMinor, IncludeDeclination: includeDeclination}
}

// Detect finds every unordered-pair aspect within a single body-state
// table, one aspect per pair, plus declination aspects if enabled.
func (e *AspectEngine) Detect(bodies []domain.BodyState) []domain.Aspect {
	byID := indexByBody(bodies)
	var aspects []domain.Aspect

	for i := 0; i < len(domain.TenBodies); i++ {
		for j := i + 1; j < len(domain.TenBodies); j++ {
			a, okA := byID[domain.TenBodies[i]]
			b, okB := byID[domain.TenBodies[j]]
			if !okA || !okB {
				continue
			}
			if aspect, ok := e.detectPair(a, b); ok {
				aspects = append(aspects, aspect)
			}
			if e.IncludeDeclination {
				if aspect, ok := detectDeclination(a, b); ok {
					aspects = append(aspects, aspect)
				}
			}
		}
	}
	return aspects
}

func indexByBody(bodies []domain.BodyState) map[domain.BodyId]domain.BodyState {
	m := make(map[domain.BodyId]domain.BodyState, len(bodies))
	for _, b := range bodies {
		m[b.Body] = b
	}
	return m
}

// detectPair runs the ordered kind-candidate loop for one unordered body
// pair, stopping at the first match.
func (e *AspectEngine) detectPair(a, b domain.BodyState) (domain.Aspect, bool) {
	delta := domain.AngularDistance(a.Longitude, b.Longitude)
	mod := (orbModifier(a.Body) + orbModifier(b.Body)) / 2

	for _, def := range domain.AllAspectDefinitions(e.IncludeMinor) {
		effectiveOrb := def.BaseOrb + mod
		if def.Minor {
			effectiveOrb *= 0.7
		}
		orb := math.Abs(delta - def.TargetAngle)
		if orb > effectiveOrb {
			continue
		}

		bodyA, bodyB := domain.Canonical(a.Body, b.Body)
		sA, sB := a, b
		if bodyA != a.Body {
			sA, sB = b, a
		}

		applying, separating, exact := applyingSeparating(sA, sB, def.TargetAngle, orb)
		strength := def.BaseStrength * (1 - orb/effectiveOrb)
		if strength < 0 {
			strength = 0
		}
		if strength > def.BaseStrength {
			strength = def.BaseStrength
		}

		return domain.Aspect{
			BodyA:      bodyA,
			BodyB:      bodyB,
			Kind:       def.Kind,
			ExactAngle: def.TargetAngle,
			Orb:        orb,
			Nature:     def.Nature,
			Strength:   strength,
			Applying:   applying,
			Separating: separating,
			Exact:      exact,
		}, true
	}
	return domain.Aspect{}, false
}

// applyingSeparating implements the stationary threshold and
// sign(d|Δ−target|/dt) decision rule.
func applyingSeparating(a, b domain.BodyState, targetAngle, orb float64) (applying, separating, exact bool) {
	exact = orb < 0.1
	relativeSpeed := a.DailyMotion - b.DailyMotion
	if math.Abs(relativeSpeed) < 0.01 {
		return false, false, exact
	}

	delta := domain.AngularDistance(a.Longitude, b.Longitude)
	epsilon := 0.01
	deltaLater := domain.AngularDistance(a.Longitude+a.DailyMotion*epsilon, b.Longitude+b.DailyMotion*epsilon)

	derivSign := (math.Abs(deltaLater-targetAngle) - math.Abs(delta-targetAngle))
	if derivSign < 0 {
		applying = true
	} else if derivSign > 0 {
		separating = true
	}
	if exact {
		applying, separating = true, true
	}
	return applying, separating, exact
}

// detectDeclination implements parallel/contra-parallel detection.
func detectDeclination(a, b domain.BodyState) (domain.Aspect, bool) {
	const declinationOrb = 1.0
	magDiff := math.Abs(math.Abs(a.Declination) - math.Abs(b.Declination))
	if magDiff > declinationOrb {
		return domain.Aspect{}, false
	}

	sameSign := (a.Declination >= 0) == (b.Declination >= 0)
	bodyA, bodyB := domain.Canonical(a.Body, b.Body)

	if sameSign {
		return domain.Aspect{
			BodyA: bodyA, BodyB: bodyB, Kind: domain.Parallel,
			ExactAngle: 0, Orb: magDiff, Nature: domain.Harmonious,
			Strength: clamp01(0.6 * (1 - magDiff/declinationOrb)), Exact: magDiff < 0.1,
		}, true
	}
	return domain.Aspect{
		BodyA: bodyA, BodyB: bodyB, Kind: domain.ContraParallel,
		ExactAngle: 180, Orb: magDiff, Nature: domain.Challenging,
		Strength: clamp01(0.6 * (1 - magDiff/declinationOrb)), Exact: magDiff < 0.1,
	}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Grid builds the symmetric body→body→Aspect map.
func Grid(bodies []domain.BodyState, aspects []domain.Aspect) map[domain.BodyId]map[domain.BodyId]*domain.Aspect {
	grid := make(map[domain.BodyId]map[domain.BodyId]*domain.Aspect, len(bodies))
	for _, b1 := range bodies {
		grid[b1.Body] = make(map[domain.BodyId]*domain.Aspect, len(bodies))
		for _, b2 := range bodies {
			grid[b1.Body][b2.Body] = nil
		}
	}
	for i := range aspects {
		a := aspects[i]
		grid[a.BodyA][a.BodyB] = &a
		grid[a.BodyB][a.BodyA] = &a
	}
	return grid
}

// Synastry computes all ordered cross-chart pairs: no applying/separating
// since both charts are static.
func (e *AspectEngine) Synastry(bodiesA, bodiesB []domain.BodyState) []domain.Aspect {
	var aspects []domain.Aspect
	for _, a := range bodiesA {
		for _, b := range bodiesB {
			delta := domain.AngularDistance(a.Longitude, b.Longitude)
			mod := (orbModifier(a.Body) + orbModifier(b.Body)) / 2
			for _, def := range domain.AllAspectDefinitions(e.IncludeMinor) {
				effectiveOrb := def.BaseOrb + mod
				if def.Minor {
					effectiveOrb *= 0.7
				}
				orb := math.Abs(delta - def.TargetAngle)
				if orb > effectiveOrb {
					continue
				}
				strength := clampBase(def.BaseStrength*(1-orb/effectiveOrb), def.BaseStrength)
				aspects = append(aspects, domain.Aspect{
					BodyA: a.Body, BodyB: b.Body, Kind: def.Kind,
					ExactAngle: def.TargetAngle, Orb: orb, Nature: def.Nature,
					Strength: strength, Exact: orb < 0.1,
				})
				break
			}
		}
	}
	return aspects
}

func clampBase(v, base float64) float64 {
	if v < 0 {
		return 0
	}
	if v > base {
		return base
	}
	return v
}

// MidpointAspects checks, for every unordered pair's shorter-arc midpoint,
// conjunction/opposition/square against every other body.
func MidpointAspects(bodies []domain.BodyState) []domain.Aspect {
	const midpointOrb = 1.0
	kinds := []domain.AspectKind{domain.Conjunction, domain.Opposition, domain.Square}

	var aspects []domain.Aspect
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			p, q := bodies[i], bodies[j]
			midpoint := domain.Midpoint(p.Longitude, q.Longitude)

			for _, r := range bodies {
				if r.Body == p.Body || r.Body == q.Body {
					continue
				}
				delta := domain.AngularDistance(midpoint, r.Longitude)
				for _, kind := range kinds {
					def, _ := domain.DefinitionFor(kind)
					orb := math.Abs(delta - def.TargetAngle)
					if orb > midpointOrb {
						continue
					}
					strength := clampBase(def.BaseStrength*0.8*(1-orb/midpointOrb), def.BaseStrength*0.8)
					aspects = append(aspects, domain.Aspect{
						BodyA: p.Body, BodyB: q.Body, Kind: kind,
						ExactAngle: def.TargetAngle, Orb: orb, Nature: def.Nature,
						Strength: strength, Exact: orb < 0.1,
						NatalBody: r.Body,
					})
					break
				}
			}
		}
	}
	return aspects
}

// HarmonicAspects matches when Δ folds within orb of a multiple of 360/H.
func HarmonicAspects(bodies []domain.BodyState, harmonic int, orb float64) []domain.Aspect {
	if harmonic <= 0 {
		return nil
	}
	step := 360.0 / float64(harmonic)
	var aspects []domain.Aspect
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			delta := domain.AngularDistance(a.Longitude, b.Longitude)
			folded := math.Mod(delta, step)
			if folded > step/2 {
				folded = step - folded
			}
			if folded > orb {
				continue
			}
			bodyA, bodyB := domain.Canonical(a.Body, b.Body)
			strength := clampBase(0.3*(1-folded/orb), 0.3)
			aspects = append(aspects, domain.Aspect{
				BodyA: bodyA, BodyB: bodyB, Kind: domain.AspectKind("harmonic"),
				ExactAngle: step, Orb: folded, Nature: domain.Mystical,
				Strength: strength, Exact: folded < 0.1,
			})
		}
	}
	return aspects
}

// SortTransitStyle orders aspects exact-first, applying-next,
// separating-last, then by ascending orb.
func SortTransitStyle(aspects []domain.Aspect) {
	sort.SliceStable(aspects, func(i, j int) bool {
		ai, aj := aspects[i], aspects[j]
		rank := func(a domain.Aspect) int {
			switch {
			case a.Exact:
				return 0
			case a.Applying:
				return 1
			default:
				return 2
			}
		}
		ri, rj := rank(ai), rank(aj)
		if ri != rj {
			return ri < rj
		}
		return ai.Orb < aj.Orb
	})
}
