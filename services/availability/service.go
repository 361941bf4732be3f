// File: services/availability/service.go
package availability

import (
	"context"
	"time"

	appointmentRepo "holistia/database/repository/appointment"
	blockRepo "holistia/database/repository/block"
	workingHoursRepo "holistia/database/repository/workinghours"
	"holistia/models"
	"holistia/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WeekGrid is the externally consumed result of a grid computation.
// Configured distinguishes "no hours set" (valid empty state) from a grid
// with genuinely empty days.
type WeekGrid struct {
	ProfessionalID string           `json:"professional_id"`
	AnchorDate     string           `json:"anchor_date"`
	Configured     bool             `json:"configured"`
	Days           []models.DayGrid `json:"days"`
}

// AvailabilityService computes weekly slot grids for professionals.
type AvailabilityService interface {
	// ComputeWeekGrid builds the grid for the 7 days starting at anchorDate
	// ("2006-01-02"). Booking and block fetch failures degrade to empty
	// lists; a failed working-hours fetch is returned as an
	// UnknownAvailabilityError.
	ComputeWeekGrid(ctx context.Context, professionalID, anchorDate string) (*WeekGrid, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	HoursRepo        workingHoursRepo.WorkingHoursRepository
	AppointmentsRepo appointmentRepo.AppointmentRepository
	BlocksRepo       blockRepo.BlockRepository
	Cache            GridCache // optional

	// Now is the clock used for past-day exclusion and cache freshness;
	// defaults to time.Now when nil.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) ComputeWeekGrid(ctx context.Context, professionalID, anchorDate string) (*WeekGrid, error) {
	logger := utils.GetLogger()

	anchor, err := time.Parse("2006-01-02", anchorDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	now := s.clock()

	if s.Cache != nil {
		if grid, ok := s.Cache.Get(ctx, professionalID, anchorDate); ok {
			return grid, nil
		}
	}

	startDate := anchor.Format("2006-01-02")
	endDate := anchor.AddDate(0, 0, 6).Format("2006-01-02")

	// The three fetches are independent; fan out and join. Only a
	// working-hours failure crosses this boundary as a hard error;
	// bookings and blocks degrade to empty lists.
	var (
		hours    *models.WorkingHours
		bookings []models.Appointment
		blocks   []models.AvailabilityBlock
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hours, err = s.HoursRepo.GetByProfessionalID(gctx, professionalID)
		if err != nil {
			return &UnknownAvailabilityError{ProfessionalID: professionalID, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		fetched, err := s.AppointmentsRepo.GetActiveInRange(gctx, professionalID, startDate, endDate)
		if err != nil {
			logger.Warn("ComputeWeekGrid: appointments fetch failed, degrading to empty",
				zap.String("professionalID", professionalID), zap.Error(err))
			return nil
		}
		bookings = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.BlocksRepo.GetOverlapping(gctx, professionalID, startDate, endDate)
		if err != nil {
			logger.Warn("ComputeWeekGrid: blocks fetch failed, degrading to empty",
				zap.String("professionalID", professionalID), zap.Error(err))
			return nil
		}
		blocks = fetched
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	grid := &WeekGrid{
		ProfessionalID: professionalID,
		AnchorDate:     anchorDate,
		Configured:     hours != nil,
		Days:           BuildWeekGrid(anchor, now, hours, bookings, blocks),
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, grid); err != nil {
			logger.Warn("ComputeWeekGrid: failed to cache grid",
				zap.String("professionalID", professionalID), zap.Error(err))
		}
	}
	return grid, nil
}

func (s *DefaultAvailabilityService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
