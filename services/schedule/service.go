// File: services/schedule/service.go
package schedule

import (
	"context"
	"time"

	blockRepo "holistia/database/repository/block"
	workingHoursRepo "holistia/database/repository/workinghours"
	"holistia/models"
	"holistia/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// minWorkingWindow is the smallest daily window a professional may set.
const minWorkingWindow = 60 // minutes

// GridInvalidator signals that a professional's cached grids are stale.
type GridInvalidator interface {
	EnqueueInvalidation(professionalID string) error
}

// ScheduleService is the editing boundary for working hours and availability
// blocks. All invariants on the stored data (ordered times, minimum window,
// valid weekdays, ordered block dates) are enforced here, so the grid
// generator can trust what it reads.
type ScheduleService interface {
	GetWorkingHours(ctx context.Context, professionalID string) (*models.WorkingHours, error)
	SetWorkingHours(ctx context.Context, professionalID string, req models.WorkingHoursRequest) (*models.WorkingHours, error)
	ListBlocks(ctx context.Context, professionalID, startDate, endDate string) ([]models.AvailabilityBlock, error)
	CreateBlock(ctx context.Context, professionalID string, req models.CreateBlockRequest) (*models.AvailabilityBlock, error)
	DeleteBlock(ctx context.Context, professionalID, blockID string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	HoursRepo   workingHoursRepo.WorkingHoursRepository
	BlocksRepo  blockRepo.BlockRepository
	Invalidator GridInvalidator // optional
}

func (s *DefaultScheduleService) GetWorkingHours(ctx context.Context, professionalID string) (*models.WorkingHours, error) {
	return s.HoursRepo.GetByProfessionalID(ctx, professionalID)
}

func (s *DefaultScheduleService) SetWorkingHours(ctx context.Context, professionalID string, req models.WorkingHoursRequest) (*models.WorkingHours, error) {
	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		return nil, newValidationError("start_time", "%v", err)
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		return nil, newValidationError("end_time", "%v", err)
	}
	if start >= end {
		return nil, newValidationError("end_time", "must be after start_time")
	}
	if end-start < minWorkingWindow {
		return nil, newValidationError("end_time", "working window must be at least %d minutes", minWorkingWindow)
	}
	if len(req.WorkingDays) == 0 {
		return nil, newValidationError("working_days", "at least one working day is required")
	}
	seen := make(map[int]bool, len(req.WorkingDays))
	for _, d := range req.WorkingDays {
		if d < 1 || d > 7 {
			return nil, newValidationError("working_days", "weekday %d out of range 1-7", d)
		}
		if seen[d] {
			return nil, newValidationError("working_days", "weekday %d repeated", d)
		}
		seen[d] = true
	}

	hours := &models.WorkingHours{
		ProfessionalID: professionalID,
		StartTime:      models.FormatClock(start),
		EndTime:        models.FormatClock(end),
		WorkingDays:    req.WorkingDays,
	}
	if err := s.HoursRepo.Upsert(ctx, hours); err != nil {
		return nil, err
	}
	s.invalidate(professionalID)
	return hours, nil
}

func (s *DefaultScheduleService) ListBlocks(ctx context.Context, professionalID, startDate, endDate string) ([]models.AvailabilityBlock, error) {
	return s.BlocksRepo.GetOverlapping(ctx, professionalID, startDate, endDate)
}

func (s *DefaultScheduleService) CreateBlock(ctx context.Context, professionalID string, req models.CreateBlockRequest) (*models.AvailabilityBlock, error) {
	if req.BlockType != models.BlockFullDay && req.BlockType != models.BlockTimeRange {
		return nil, newValidationError("block_type", "must be %q or %q", models.BlockFullDay, models.BlockTimeRange)
	}
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return nil, newValidationError("start_date", "expected YYYY-MM-DD")
	}
	if req.EndDate != "" {
		if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
			return nil, newValidationError("end_date", "expected YYYY-MM-DD")
		}
		if req.EndDate < req.StartDate {
			return nil, newValidationError("end_date", "must not be before start_date")
		}
	}
	block := &models.AvailabilityBlock{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		BlockType:      req.BlockType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Reason:         req.Reason,
		CreatedAt:      time.Now().UTC(),
	}
	if req.BlockType == models.BlockTimeRange {
		start, err := models.ParseClock(req.StartTime)
		if err != nil {
			return nil, newValidationError("start_time", "%v", err)
		}
		end, err := models.ParseClock(req.EndTime)
		if err != nil {
			return nil, newValidationError("end_time", "%v", err)
		}
		if start >= end {
			return nil, newValidationError("end_time", "must be after start_time")
		}
		// Stored zero-padded so lexicographic consumers stay safe.
		block.StartTime = models.FormatClock(start)
		block.EndTime = models.FormatClock(end)
	}
	if err := s.BlocksRepo.Create(ctx, block); err != nil {
		return nil, err
	}
	s.invalidate(professionalID)
	return block, nil
}

func (s *DefaultScheduleService) DeleteBlock(ctx context.Context, professionalID, blockID string) error {
	if err := s.BlocksRepo.Delete(ctx, professionalID, blockID); err != nil {
		return err
	}
	s.invalidate(professionalID)
	return nil
}

// invalidate enqueues a cache purge. Enqueue failures only delay freshness
// and are not surfaced to the caller.
func (s *DefaultScheduleService) invalidate(professionalID string) {
	if s.Invalidator == nil {
		return
	}
	if err := s.Invalidator.EnqueueInvalidation(professionalID); err != nil {
		utils.GetLogger().Warn("failed to enqueue grid invalidation",
			zap.String("professionalID", professionalID), zap.Error(err))
	}
}
