package domain

// BodyId enumerates the ten computed bodies plus the derived points the
// natal calculator attaches to every chart.
type BodyId string

const (
	Sun     BodyId = "sun"
	Moon    BodyId = "moon"
	Mercury BodyId = "mercury"
	Venus   BodyId = "venus"
	Mars    BodyId = "mars"
	Jupiter BodyId = "jupiter"
	Saturn  BodyId = "saturn"
	Uranus  BodyId = "uranus"
	Neptune BodyId = "neptune"
	Pluto   BodyId = "pluto"

	NorthNode     BodyId = "north_node"
	SouthNode     BodyId = "south_node"
	Ascendant     BodyId = "ascendant"
	Midheaven     BodyId = "midheaven"
	PartOfFortune BodyId = "part_of_fortune"
)

// TenBodies is the canonical enumeration order used to derive the
// unordered-pair ordering for aspect detection ("a < b in canonical order").
var TenBodies = []BodyId{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// bodyOrder maps a BodyId to its position in TenBodies, used to canonicalize
// unordered pairs so (a,b) and (b,a) always resolve to the same aspect.
var bodyOrder = func() map[BodyId]int {
	m := make(map[BodyId]int, len(TenBodies))
	for i, b := range TenBodies {
		m[b] = i
	}
	return m
}()

// Canonical returns a, b reordered so the lower-indexed body (per TenBodies,
// ties broken lexically for bodies outside the ten, e.g. nodes) comes first.
func Canonical(a, b BodyId) (BodyId, BodyId) {
	ia, aok := bodyOrder[a]
	ib, bok := bodyOrder[b]
	switch {
	case aok && bok:
		if ia <= ib {
			return a, b
		}
		return b, a
	case aok:
		return a, b
	case bok:
		return b, a
	default:
		if a <= b {
			return a, b
		}
		return b, a
	}
}

// IsRetrogradeByConvention reports whether a negative daily motion implies
// retrograde for this body. The Sun is never retrograde by convention; the
// lunar nodes are always retrograde by convention regardless of motion sign.
func IsRetrogradeByConvention(body BodyId, dailyMotion float64) bool {
	switch body {
	case Sun:
		return false
	case NorthNode, SouthNode:
		return true
	default:
		return dailyMotion < 0
	}
}
