package domain

// BodyState is the per-instant computed record for one body. It carries
// both the raw astronomical quantities and the derived sign/house metadata
// consumers need without recomputing anything.
type BodyState struct {
	Body         BodyId  `json:"body"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	Declination  float64 `json:"declination"`
	RightAsc     float64 `json:"right_ascension"`
	DailyMotion  float64 `json:"daily_motion"`
	Retrograde   bool    `json:"retrograde"`
	SignIndex    int     `json:"sign_index"`
	DegreeInSign float64 `json:"degree_in_sign"`
	House        int     `json:"house,omitempty"`
	Estimated    bool    `json:"estimated,omitempty"`

	// Dignity classifies the body's traditional strength in its current
	// sign (domicile/exaltation/detriment/fall/peregrine). Pure structural
	// classification data, not interpretive text.
	Dignity Dignity `json:"dignity,omitempty"`
}

// NewBodyState builds a BodyState from a computed longitude/latitude/motion,
// deriving sign_index, degree_in_sign, and the retrograde flag.
func NewBodyState(body BodyId, longitude, latitude, declination, rightAsc, dailyMotion float64) BodyState {
	bs := BodyState{
		Body:         body,
		Longitude:    NormalizeAngle(longitude),
		Latitude:     latitude,
		Declination:  declination,
		RightAsc:     rightAsc,
		DailyMotion:  dailyMotion,
		SignIndex:    SignIndexOf(longitude),
		DegreeInSign: DegreeInSign(longitude),
	}
	bs.Retrograde = IsRetrogradeByConvention(body, dailyMotion)
	bs.Dignity = ClassifyDignity(body, bs.SignIndex)
	return bs
}

// Sign returns the SignInfo this body currently occupies.
func (b BodyState) Sign() SignInfo {
	return SignByIndex(b.SignIndex)
}

// Dignity is the traditional essential-dignity classification of a body in
// a sign.
type Dignity string

const (
	Domicile   Dignity = "domicile"
	Exaltation Dignity = "exaltation"
	Detriment  Dignity = "detriment"
	Fall       Dignity = "fall"
	Peregrine  Dignity = "peregrine"
)

var domicileSigns = map[BodyId][]int{
	Sun: {5}, Moon: {4}, Mercury: {3, 6}, Venus: {2, 7}, Mars: {1, 8},
	Jupiter: {9, 12}, Saturn: {10, 11}, Uranus: {11}, Neptune: {12}, Pluto: {8},
}

var exaltationSigns = map[BodyId]int{
	Sun: 1, Moon: 2, Mercury: 6, Venus: 12, Mars: 10,
	Jupiter: 4, Saturn: 7, Uranus: 8, Neptune: 11, Pluto: 1,
}

// ClassifyDignity derives a body's essential dignity in a sign from the
// domicile/exaltation tables, with detriment/fall as the sign opposite
// domicile/exaltation respectively.
func ClassifyDignity(body BodyId, signIndex int) Dignity {
	for _, s := range domicileSigns[body] {
		if s == signIndex {
			return Domicile
		}
		if opposite(s) == signIndex {
			return Detriment
		}
	}
	if s, ok := exaltationSigns[body]; ok {
		if s == signIndex {
			return Exaltation
		}
		if opposite(s) == signIndex {
			return Fall
		}
	}
	return Peregrine
}

func opposite(signIndex int) int {
	return ((signIndex+6-1)%12 + 1)
}
