package astro

import (
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
)

// ChartFacade is the single orchestration entry point: it wires the natal
// calculator, house calculator, and aspect engine together and
// materializes a fully-populated Chart.
type ChartFacade struct {
	ephemeris *Ephemeris
	frame     *Frame
	natal     *NatalCalculator
	houses    *HouseCalculator
	logger    *logging.Logger
}

// NewChartFacade builds a ChartFacade over the full ephemeris/frame/natal/
// house/aspect stack.
func NewChartFacade(ephemeris *Ephemeris, logger *logging.Logger) *ChartFacade {
	frame := NewFrame(logger)
	natal := NewNatalCalculator(ephemeris, frame, logger)
	houses := NewHouseCalculator()
	return &ChartFacade{
		ephemeris: ephemeris,
		frame:     frame,
		natal:     natal,
		houses:    houses,
		logger:    logger,
	}
}

// GenerateOptions are the caller-supplied knobs that vary per request
// (house system, which minor/declination aspects to include).
type GenerateOptions struct {
	HouseSystem        domain.HouseSystem
	IncludeMinor       bool
	IncludeDeclination bool
}

// Generate runs the full natal pipeline for a birth instant/location and
// returns a populated Chart ready for serialization; persistence is the
// caller's concern.
func (f *ChartFacade) Generate(id string, chartType domain.ChartType, name string, birthInfo domain.BirthInfo, instant *domain.Instant, opts GenerateOptions) (*domain.Chart, error) {
	bodies, err := f.natal.BodyStates(instant.JulianDay)
	if err != nil {
		return nil, err
	}

	angles := f.natal.ComputeAngles(instant.JulianDay, birthInfo.Location)

	north, _ := f.natal.NorthNode(instant.JulianDay)
	south := SouthNode(north)
	bodies = append(bodies, north, south)

	sun := bodyLongitude(bodies, domain.Sun)
	moon := bodyLongitude(bodies, domain.Moon)
	pofLongitude := PartOfFortune(angles.Ascendant, angles.Midheaven, sun, moon)
	bodies = append(bodies, domain.NewBodyState(domain.PartOfFortune, pofLongitude, 0, 0, 0, 0))

	cuspResult := f.houses.Compute(opts.HouseSystem, angles, birthInfo.Location)
	houseSet := BuildHouseSet(cuspResult.Cusps)
	for i := range bodies {
		bodies[i].House = AssignHouse(cuspResult.Cusps, bodies[i].Longitude)
	}

	engine := NewAspectEngine(opts.IncludeMinor, opts.IncludeDeclination)
	aspects := engine.Detect(bodies)

	chart := domain.NewChart(id, chartType, name, birthInfo, instant.UTCTime)
	chart.HouseSystem = string(opts.HouseSystem)
	chart.PolarDegeneracy = cuspResult.PolarDegeneracy
	for _, b := range bodies {
		chart.AddBody(b)
	}
	for _, h := range houseSet {
		chart.AddHouse(h)
	}
	for _, a := range aspects {
		chart.AddAspect(a)
	}
	chart.SetAngles(angles.Ascendant, angles.Midheaven)
	chart.LunarPhase = LunarPhase(sun, moon)

	return chart, nil
}

// lunarPhaseNames are the eight named phases, in ascending order of
// Moon-Sun angular distance.
var lunarPhaseNames = []string{
	"New", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// LunarPhase computes the eight-way named phase plus a continuous [0,100]
// phase fraction from Sun/Moon longitudes.
func LunarPhase(sunLongitude, moonLongitude float64) domain.LunarPhase {
	angle := domain.NormalizeAngle(moonLongitude - sunLongitude)
	bin := int(angle/45) % 8
	return domain.LunarPhase{
		Name:          lunarPhaseNames[bin],
		AngleFromSun:  angle,
		PhaseFraction: angle / 360 * 100,
		Waxing:        angle < 180,
	}
}
