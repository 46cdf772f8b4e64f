package astro

import "astroeph-api/internal/domain"

// CompositeCalculator derives a midpoint composite chart from two natal
// body/house/angle sets using the classic midpoint composite method.
type CompositeCalculator struct {
	aspects *AspectEngine
}

// NewCompositeCalculator builds a CompositeCalculator using the natal-orb
// aspect policy (minor aspects and declination both enabled, matching a
// single-chart natal detection pass).
func NewCompositeCalculator() *CompositeCalculator {
	return &CompositeCalculator{aspects: NewAspectEngine(true, true)}
}

// MidpointBodies pairs matching bodies across two tables and takes the
// shorter-arc midpoint longitude, zeroing out latitude/speed since neither
// is meaningful for a derived midpoint point.
func (cc *CompositeCalculator) MidpointBodies(bodiesA, bodiesB []domain.BodyState) []domain.BodyState {
	byID := indexByBody(bodiesB)
	composite := make([]domain.BodyState, 0, len(bodiesA))
	for _, a := range bodiesA {
		b, ok := byID[a.Body]
		if !ok {
			continue
		}
		midLon := domain.Midpoint(a.Longitude, b.Longitude)
		midDecl := (a.Declination + b.Declination) / 2
		composite = append(composite, domain.NewBodyState(a.Body, midLon, 0, midDecl, 0, 0))
	}
	return composite
}

// MidpointHouses pairs cusps by house number and midpoints each longitude.
func (cc *CompositeCalculator) MidpointHouses(housesA, housesB []domain.House) [12]float64 {
	byNumber := make(map[int]domain.House, len(housesB))
	for _, h := range housesB {
		byNumber[h.Number] = h
	}
	var cusps [12]float64
	for _, ha := range housesA {
		hb, ok := byNumber[ha.Number]
		if !ok {
			continue
		}
		cusps[ha.Number-1] = domain.Midpoint(ha.CuspValue, hb.CuspValue)
	}
	return cusps
}

// MidpointLocation averages two birth locations as a composite chart's
// notional "place".
func MidpointLocation(a, b domain.Location) domain.Location {
	return domain.Location{
		Name:      "Composite Location",
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
		Timezone:  a.Timezone,
	}
}

// Compute builds the full composite chart: midpoint bodies, midpoint house
// cusps, midpoint angles, and a fresh aspect detection pass over the
// composite body table.
func (cc *CompositeCalculator) Compute(chartA, chartB *domain.Chart) *domain.Chart {
	location := MidpointLocation(chartA.BirthInfo.Location, chartB.BirthInfo.Location)
	bodies := cc.MidpointBodies(chartA.Bodies, chartB.Bodies)
	cusps := cc.MidpointHouses(chartA.Houses, chartB.Houses)
	houses := BuildHouseSet(cusps)

	for i := range bodies {
		bodies[i].House = AssignHouse(cusps, bodies[i].Longitude)
	}

	ascMidpoint := domain.Midpoint(chartA.Angles.Ascendant.Longitude, chartB.Angles.Ascendant.Longitude)
	mcMidpoint := domain.Midpoint(chartA.Angles.Midheaven.Longitude, chartB.Angles.Midheaven.Longitude)

	birthInfo := domain.BirthInfo{
		Date:     "composite",
		Time:     "composite",
		Location: location,
	}

	composite := domain.NewChart("", domain.ChartTypeComposite,
		"Composite: "+chartA.Name+" & "+chartB.Name, birthInfo, chartA.UTCTime)
	composite.HouseSystem = chartA.HouseSystem
	composite.IsComposite = true

	for _, b := range bodies {
		composite.AddBody(b)
	}
	for _, h := range houses {
		composite.AddHouse(h)
	}
	composite.SetAngles(ascMidpoint, mcMidpoint)

	for _, a := range cc.aspects.Detect(bodies) {
		composite.AddAspect(a)
	}

	return composite
}
