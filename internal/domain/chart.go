package domain

import "time"

// ChartType distinguishes the kind of chart record.
type ChartType string

const (
	ChartTypeNatal        ChartType = "natal"
	ChartTypeSynastry     ChartType = "synastry"
	ChartTypeComposite    ChartType = "composite"
	ChartTypeSolarReturn  ChartType = "solar_return"
	ChartTypeLunarReturn  ChartType = "lunar_return"
	ChartTypeProgressions ChartType = "progressions"
	ChartTypeTransits     ChartType = "transits"
)

// ChartAngle is one of the four chart angles (ASC/MC/IC/DSC) with its sign
// metadata precomputed for display.
type ChartAngle struct {
	Longitude    float64 `json:"longitude"`
	Sign         string  `json:"sign"`
	SignIndex    int     `json:"sign_index"`
	DegreeInSign string  `json:"degree_in_sign"`
}

func newChartAngle(longitude float64) ChartAngle {
	sign := SignForLongitude(longitude)
	return ChartAngle{
		Longitude:    NormalizeAngle(longitude),
		Sign:         sign.Name,
		SignIndex:    sign.Index,
		DegreeInSign: FormatDegreeInSign(longitude),
	}
}

// ChartAngles holds the four angles of a chart.
type ChartAngles struct {
	Ascendant  ChartAngle `json:"ascendant"`
	Midheaven  ChartAngle `json:"midheaven"`
	IC         ChartAngle `json:"ic"`
	Descendant ChartAngle `json:"descendant"`
}

// LunarPhase is an 8-way named categorization of the Moon-Sun angular
// distance plus a continuous [0,100] fraction.
type LunarPhase struct {
	Name              string  `json:"name"`
	AngleFromSun      float64 `json:"angle_from_sun"`
	PhaseFraction     float64 `json:"phase_fraction"`
	Waxing            bool    `json:"waxing"`
}

// BirthInfo is the civil birth data a chart was generated from.
type BirthInfo struct {
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Location Location `json:"location"`
}

// Chart is the immutable, fully-computed chart record. Chart owns its
// BodyState/House/Aspect tables by value; derived products borrow a
// reference instead of copying or mutating them.
type Chart struct {
	ID              string       `json:"id"`
	Type            ChartType    `json:"type"`
	Name            string       `json:"name"`
	BirthInfo       BirthInfo    `json:"birth_info"`
	UTCTime         time.Time    `json:"utc_time"`
	HouseSystem     string       `json:"house_system"`
	Bodies          []BodyState  `json:"bodies"`
	Houses          []House      `json:"houses"`
	Aspects         []Aspect     `json:"aspects"`
	Angles          ChartAngles  `json:"angles"`
	LunarPhase      LunarPhase   `json:"lunar_phase"`
	PolarDegeneracy bool         `json:"polar_degeneracy,omitempty"`
	IsComposite     bool         `json:"is_composite,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// NewChart constructs an empty chart shell; callers populate Bodies, Houses,
// Aspects, and Angles as the natal/house/aspect pipeline runs.
func NewChart(id string, chartType ChartType, name string, birthInfo BirthInfo, utcTime time.Time) *Chart {
	return &Chart{
		ID:        id,
		Type:      chartType,
		Name:      name,
		BirthInfo: birthInfo,
		UTCTime:   utcTime,
		CreatedAt: time.Now(),
		Bodies:    make([]BodyState, 0, 15),
		Houses:    make([]House, 0, 12),
		Aspects:   make([]Aspect, 0),
	}
}

// AddBody appends a body state to the chart.
func (c *Chart) AddBody(b BodyState) { c.Bodies = append(c.Bodies, b) }

// AddHouse appends a house to the chart.
func (c *Chart) AddHouse(h House) { c.Houses = append(c.Houses, h) }

// AddAspect appends an aspect to the chart.
func (c *Chart) AddAspect(a Aspect) { c.Aspects = append(c.Aspects, a) }

// SetAngles computes all four chart angles from ascendant and midheaven
// longitudes; IC and Descendant are always +180°.
func (c *Chart) SetAngles(ascendant, midheaven float64) {
	c.Angles.Ascendant = newChartAngle(ascendant)
	c.Angles.Midheaven = newChartAngle(midheaven)
	c.Angles.IC = newChartAngle(midheaven + 180)
	c.Angles.Descendant = newChartAngle(ascendant + 180)
}

// BodyByID returns the BodyState for a body, if present.
func (c *Chart) BodyByID(id BodyId) *BodyState {
	for i := range c.Bodies {
		if c.Bodies[i].Body == id {
			return &c.Bodies[i]
		}
	}
	return nil
}

// HouseByNumber returns the House record for a house number 1..12.
func (c *Chart) HouseByNumber(number int) *House {
	for i := range c.Houses {
		if c.Houses[i].Number == number {
			return &c.Houses[i]
		}
	}
	return nil
}

// CompatibilityScore is the weighted two-chart compatibility result.
type CompatibilityScore struct {
	TotalScore     float64            `json:"total_score"`
	HarmonyScore   float64            `json:"harmony_score"`
	ChallengeScore float64            `json:"challenge_score"`
	SubScores      map[BodyId]float64 `json:"sub_scores"`
	Rating         string             `json:"rating"`
}

// CompatibilityReport is the two-chart compatibility product: synastry
// aspects, the composite body/aspect tables, and the weighted score.
type CompatibilityReport struct {
	ChartAID         string              `json:"chart_a_id"`
	ChartBID         string              `json:"chart_b_id"`
	SynastryAspects  []Aspect            `json:"synastry_aspects"`
	CompositeChart   *Chart              `json:"composite_chart"`
	CompatibilityScore CompatibilityScore `json:"compatibility_score"`
}
