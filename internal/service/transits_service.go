package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
)

// TransitsService handles transit-to-natal calculations.
type TransitsService struct {
	natalService *NatalService
	timeform     *astro.TimeFormCalculator
	logger       *logging.Logger
}

// NewTransitsService creates a new transits service.
func NewTransitsService(natalService *NatalService, timeform *astro.TimeFormCalculator, logger *logging.Logger) *TransitsService {
	return &TransitsService{natalService: natalService, timeform: timeform, logger: logger}
}

// TransitsRequest represents a request for transit calculation.
type TransitsRequest struct {
	BirthDay   int             `json:"birth_day" binding:"required,min=1,max=31"`
	BirthMonth int             `json:"birth_month" binding:"required,min=1,max=12"`
	BirthYear  int             `json:"birth_year" binding:"required"`
	BirthTime  string          `json:"birth_time" binding:"required"`
	Location   domain.Location `json:"location" binding:"required"`

	TransitDay   int    `json:"transit_day" binding:"required,min=1,max=31"`
	TransitMonth int    `json:"transit_month" binding:"required,min=1,max=12"`
	TransitYear  int    `json:"transit_year" binding:"required"`
	TransitTime  string `json:"transit_time,omitempty"`

	HouseSystem string `json:"house_system,omitempty"`
}

// CalculateTransits evaluates the sky at the transit instant, observed from
// the natal location, against the natal body table.
func (ts *TransitsService) CalculateTransits(req *TransitsRequest) (domain.TransitReport, error) {
	ts.logger.CalculationLogger().
		Int("birth_year", req.BirthYear).
		Int("transit_year", req.TransitYear).
		Msg("starting transits calculation")

	if req.HouseSystem == "" {
		req.HouseSystem = string(domain.HousePlacidus)
	}
	transitTime := req.TransitTime
	if transitTime == "" {
		transitTime = "12:00:00"
	}

	natalChart, err := ts.natalService.CalculateNatalChart(&NatalChartRequest{
		Day:         req.BirthDay,
		Month:       req.BirthMonth,
		Year:        req.BirthYear,
		LocalTime:   req.BirthTime,
		Location:    req.Location,
		HouseSystem: req.HouseSystem,
	})
	if err != nil {
		return domain.TransitReport{}, fmt.Errorf("failed to calculate natal chart: %w", err)
	}

	transitInstant, err := domain.ParseTime(req.TransitYear, req.TransitMonth, req.TransitDay, transitTime, req.Location.Timezone)
	if err != nil {
		return domain.TransitReport{}, fmt.Errorf("failed to parse transit time: %w", err)
	}

	report, err := ts.timeform.Transits(natalChart, transitInstant)
	if err != nil {
		return domain.TransitReport{}, fmt.Errorf("failed to calculate transits: %w", err)
	}

	ts.logger.Info().Int("aspects_found", len(report.Aspects)).Msg("transits calculation completed")
	return report, nil
}
