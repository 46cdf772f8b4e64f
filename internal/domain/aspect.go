package domain

// AspectKind enumerates every aspect the engine can detect: the six majors
// (MajorAspects), seven minor and harmonic/esoteric aspects (MinorAspects),
// and the two declination aspects.
type AspectKind string

const (
	Conjunction    AspectKind = "conjunction"
	Opposition     AspectKind = "opposition"
	Trine          AspectKind = "trine"
	Square         AspectKind = "square"
	Sextile        AspectKind = "sextile"
	Quincunx       AspectKind = "quincunx"
	SemiSextile    AspectKind = "semi_sextile"
	SemiSquare     AspectKind = "semi_square"
	Sesquiquadrate AspectKind = "sesquiquadrate"
	Quintile       AspectKind = "quintile"
	BiQuintile     AspectKind = "bi_quintile"
	Septile        AspectKind = "septile"
	Novile         AspectKind = "novile"
	Parallel       AspectKind = "parallel"
	ContraParallel AspectKind = "contra_parallel"
)

// AspectNature classifies the emotional/behavioral quality of an aspect kind.
type AspectNature string

const (
	Harmonious  AspectNature = "harmonious"
	Challenging AspectNature = "challenging"
	Neutral     AspectNature = "neutral"
	Mystical    AspectNature = "mystical"
	Spiritual   AspectNature = "spiritual"
)

// AspectDefinition is the pure-data contract for one aspect kind: its target
// angle, base orb, nature, and baseline strength.
type AspectDefinition struct {
	Kind         AspectKind
	TargetAngle  float64
	BaseOrb      float64
	Nature       AspectNature
	BaseStrength float64
	Minor        bool
}

// MajorAspects, in detection priority order.
var MajorAspects = []AspectDefinition{
	{Conjunction, 0, 8, Neutral, 1.0, false},
	{Opposition, 180, 8, Challenging, 1.0, false},
	{Trine, 120, 7, Harmonious, 0.9, false},
	{Square, 90, 6, Challenging, 0.8, false},
	{Sextile, 60, 4, Harmonious, 0.7, false},
	{Quincunx, 150, 2, Neutral, 0.5, false},
}

// MinorAspects, included when include_minor is set.
var MinorAspects = []AspectDefinition{
	{SemiSextile, 30, 1, Harmonious, 0.4, true},
	{SemiSquare, 45, 1, Challenging, 0.4, true},
	{Sesquiquadrate, 135, 1, Challenging, 0.4, true},
	{Quintile, 72, 1, Mystical, 0.35, true},
	{BiQuintile, 144, 1, Mystical, 0.35, true},
	{Septile, 51.4286, 1, Mystical, 0.3, true},
	{Novile, 40, 1, Spiritual, 0.3, true},
}

// AllAspectDefinitions returns major aspects followed by minor aspects, in
// detection order.
func AllAspectDefinitions(includeMinor bool) []AspectDefinition {
	defs := make([]AspectDefinition, 0, len(MajorAspects)+len(MinorAspects))
	defs = append(defs, MajorAspects...)
	if includeMinor {
		defs = append(defs, MinorAspects...)
	}
	return defs
}

// DefinitionFor looks up the AspectDefinition for a kind.
func DefinitionFor(kind AspectKind) (AspectDefinition, bool) {
	for _, d := range MajorAspects {
		if d.Kind == kind {
			return d, true
		}
	}
	for _, d := range MinorAspects {
		if d.Kind == kind {
			return d, true
		}
	}
	if kind == Parallel {
		return AspectDefinition{Parallel, 0, 1, Harmonious, 0.6, false}, true
	}
	if kind == ContraParallel {
		return AspectDefinition{ContraParallel, 180, 1, Challenging, 0.6, false}, true
	}
	return AspectDefinition{}, false
}

// Aspect is a detected relation between two bodies.
type Aspect struct {
	BodyA      BodyId       `json:"body_a"`
	BodyB      BodyId       `json:"body_b"`
	Kind       AspectKind   `json:"kind"`
	ExactAngle float64      `json:"exact_angle"`
	Orb        float64      `json:"orb"`
	Nature     AspectNature `json:"nature"`
	Strength   float64      `json:"strength"`
	Applying   bool         `json:"applying"`
	Exact      bool         `json:"exact"`
	Separating bool         `json:"separating"`

	// ProgressedBody/NatalBody label a progressed-vs-natal aspect; empty for
	// ordinary same-chart aspects.
	ProgressedBody BodyId `json:"progressed_body,omitempty"`
	NatalBody      BodyId `json:"natal_body,omitempty"`
}

// IsMajor reports whether the aspect's kind is one of the six MajorAspects.
func (a Aspect) IsMajor() bool {
	for _, d := range MajorAspects {
		if d.Kind == a.Kind {
			return true
		}
	}
	return false
}

// IsMinor reports whether the aspect's kind is a minor/harmonic aspect.
func (a Aspect) IsMinor() bool {
	for _, d := range MinorAspects {
		if d.Kind == a.Kind {
			return true
		}
	}
	return false
}

// IsDeclination reports whether the aspect is parallel/contra-parallel.
func (a Aspect) IsDeclination() bool {
	return a.Kind == Parallel || a.Kind == ContraParallel
}
