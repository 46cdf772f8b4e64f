package domain

// HouseSystem names a house-cusp computation method.
type HouseSystem string

const (
	HousePlacidus  HouseSystem = "Placidus"
	HouseKoch      HouseSystem = "Koch"
	HouseWholeSign HouseSystem = "Whole Sign"
)

// IsValidHouseSystem reports whether tag names a supported house system.
func IsValidHouseSystem(tag string) bool {
	switch HouseSystem(tag) {
	case HousePlacidus, HouseKoch, HouseWholeSign:
		return true
	default:
		return false
	}
}

// House is one cusp of a HouseSet.
type House struct {
	Number       int     `json:"house"`
	CuspValue    float64 `json:"cusp_value"`
	Cusp         string  `json:"cusp"`
	Sign         string  `json:"sign"`
	SignIndex    int     `json:"sign_index"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Size         float64 `json:"size,omitempty"`
	Element      string  `json:"element"`
	Modality     string  `json:"modality"`
	Ruler        string  `json:"ruler"`
}

// NewHouse creates a House from a cusp longitude.
func NewHouse(number int, cuspLongitude float64) House {
	sign := SignForLongitude(cuspLongitude)
	return House{
		Number:       number,
		CuspValue:    NormalizeAngle(cuspLongitude),
		Cusp:         FormatLongitude(cuspLongitude),
		Sign:         sign.Name,
		SignIndex:    sign.Index,
		DegreeInSign: DegreeInSign(cuspLongitude),
		Element:      sign.Element,
		Modality:     sign.Modality,
		Ruler:        sign.Ruler,
	}
}

// CalculateHouseSizes returns the arc length of each of 12 cusps, the single
// canonical implementation every house-system computation routes through.
func CalculateHouseSizes(cusps []float64) []float64 {
	if len(cusps) != 12 {
		return make([]float64, 12)
	}
	sizes := make([]float64, 12)
	for i := 0; i < 12; i++ {
		next := (i + 1) % 12
		size := cusps[next] - cusps[i]
		if size < 0 {
			size += 360
		}
		sizes[i] = size
	}
	return sizes
}

// IsAngularHouse reports whether the house is angular (1, 4, 7, 10).
func (h House) IsAngularHouse() bool {
	return h.Number == 1 || h.Number == 4 || h.Number == 7 || h.Number == 10
}

// IsSuccedentHouse reports whether the house is succedent (2, 5, 8, 11).
func (h House) IsSuccedentHouse() bool {
	return h.Number == 2 || h.Number == 5 || h.Number == 8 || h.Number == 11
}

// IsCadentHouse reports whether the house is cadent (3, 6, 9, 12).
func (h House) IsCadentHouse() bool {
	return h.Number == 3 || h.Number == 6 || h.Number == 9 || h.Number == 12
}

// GetHouseType returns "angular", "succedent", or "cadent".
func (h House) GetHouseType() string {
	switch {
	case h.IsAngularHouse():
		return "angular"
	case h.IsSuccedentHouse():
		return "succedent"
	default:
		return "cadent"
	}
}

// ContainsPlanet reports whether a body longitude falls in the closed-open
// interval [this cusp, nextHouseCusp), handling the single cusp that wraps
// through 0°.
func (h House) ContainsPlanet(bodyLongitude, nextHouseCusp float64) bool {
	start := NormalizeAngle(h.CuspValue)
	end := NormalizeAngle(nextHouseCusp)
	body := NormalizeAngle(bodyLongitude)

	if start > end {
		return body >= start || body < end
	}
	return body >= start && body < end
}
