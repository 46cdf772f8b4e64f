package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
)

// ProgressionsService handles secondary progressions calculations.
type ProgressionsService struct {
	natalService *NatalService
	timeform     *astro.TimeFormCalculator
	logger       *logging.Logger
}

// NewProgressionsService creates a new progressions service.
func NewProgressionsService(natalService *NatalService, timeform *astro.TimeFormCalculator, logger *logging.Logger) *ProgressionsService {
	return &ProgressionsService{natalService: natalService, timeform: timeform, logger: logger}
}

// ProgressionsRequest represents a request for progressions calculation.
type ProgressionsRequest struct {
	BirthDay   int             `json:"birth_day" binding:"required,min=1,max=31"`
	BirthMonth int             `json:"birth_month" binding:"required,min=1,max=12"`
	BirthYear  int             `json:"birth_year" binding:"required"`
	BirthTime  string          `json:"birth_time" binding:"required"`
	Location   domain.Location `json:"location" binding:"required"`

	TargetDay   int `json:"target_day" binding:"required,min=1,max=31"`
	TargetMonth int `json:"target_month" binding:"required,min=1,max=12"`
	TargetYear  int `json:"target_year" binding:"required"`

	HouseSystem string `json:"house_system,omitempty"`
}

// CalculateProgressions computes the day-for-a-year secondary progression
// (progressed instant = birth instant + (days_elapsed/365.25) days) and
// returns the cross-paired progressed-to-natal aspects.
func (ps *ProgressionsService) CalculateProgressions(req *ProgressionsRequest) (domain.ProgressionReport, error) {
	ps.logger.CalculationLogger().
		Int("birth_year", req.BirthYear).
		Int("target_year", req.TargetYear).
		Msg("starting progressions calculation")

	if req.HouseSystem == "" {
		req.HouseSystem = string(domain.HousePlacidus)
	}

	natalChart, err := ps.natalService.CalculateNatalChart(&NatalChartRequest{
		Day:         req.BirthDay,
		Month:       req.BirthMonth,
		Year:        req.BirthYear,
		LocalTime:   req.BirthTime,
		Location:    req.Location,
		HouseSystem: req.HouseSystem,
	})
	if err != nil {
		return domain.ProgressionReport{}, fmt.Errorf("failed to calculate natal chart: %w", err)
	}

	natalInstant, err := domain.ParseTime(req.BirthYear, req.BirthMonth, req.BirthDay, req.BirthTime, req.Location.Timezone)
	if err != nil {
		return domain.ProgressionReport{}, fmt.Errorf("failed to parse birth time: %w", err)
	}
	targetInstant, err := domain.ParseTime(req.TargetYear, req.TargetMonth, req.TargetDay, req.BirthTime, req.Location.Timezone)
	if err != nil {
		return domain.ProgressionReport{}, fmt.Errorf("failed to parse target time: %w", err)
	}

	report, err := ps.timeform.SecondaryProgressions(natalChart, natalInstant, targetInstant)
	if err != nil {
		return domain.ProgressionReport{}, fmt.Errorf("failed to calculate progressions: %w", err)
	}

	ps.logger.Info().Int("aspects_found", len(report.Aspects)).Msg("progressions calculation completed")
	return report, nil
}
