package schedule

import (
	"context"
	"errors"
	"testing"

	"holistia/models"
)

type stubHoursRepo struct {
	saved *models.WorkingHours
}

func (s *stubHoursRepo) GetByProfessionalID(ctx context.Context, professionalID string) (*models.WorkingHours, error) {
	return s.saved, nil
}

func (s *stubHoursRepo) Upsert(ctx context.Context, hours *models.WorkingHours) error {
	s.saved = hours
	return nil
}

type stubBlockRepo struct {
	created *models.AvailabilityBlock
	deleted string
}

func (s *stubBlockRepo) GetOverlapping(ctx context.Context, professionalID, startDate, endDate string) ([]models.AvailabilityBlock, error) {
	return nil, nil
}

func (s *stubBlockRepo) Create(ctx context.Context, block *models.AvailabilityBlock) error {
	s.created = block
	return nil
}

func (s *stubBlockRepo) Delete(ctx context.Context, professionalID, blockID string) error {
	s.deleted = blockID
	return nil
}

type recordingInvalidator struct {
	ids []string
}

func (r *recordingInvalidator) EnqueueInvalidation(professionalID string) error {
	r.ids = append(r.ids, professionalID)
	return nil
}

func newTestService() (*DefaultScheduleService, *stubHoursRepo, *stubBlockRepo, *recordingInvalidator) {
	hours := &stubHoursRepo{}
	blocks := &stubBlockRepo{}
	inv := &recordingInvalidator{}
	return &DefaultScheduleService{HoursRepo: hours, BlocksRepo: blocks, Invalidator: inv}, hours, blocks, inv
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != field {
		t.Fatalf("expected error on %s, got %s (%s)", field, vErr.Field, vErr.Message)
	}
}

func TestSetWorkingHours_RejectsInvalidInput(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		req   models.WorkingHoursRequest
		field string
	}{
		{"malformed start", models.WorkingHoursRequest{StartTime: "morning", EndTime: "17:00", WorkingDays: []int{1}}, "start_time"},
		{"malformed end", models.WorkingHoursRequest{StartTime: "09:00", EndTime: "25:00", WorkingDays: []int{1}}, "end_time"},
		{"inverted window", models.WorkingHoursRequest{StartTime: "17:00", EndTime: "09:00", WorkingDays: []int{1}}, "end_time"},
		{"window under one hour", models.WorkingHoursRequest{StartTime: "09:00", EndTime: "09:30", WorkingDays: []int{1}}, "end_time"},
		{"no days", models.WorkingHoursRequest{StartTime: "09:00", EndTime: "17:00", WorkingDays: []int{}}, "working_days"},
		{"day zero", models.WorkingHoursRequest{StartTime: "09:00", EndTime: "17:00", WorkingDays: []int{0}}, "working_days"},
		{"day eight", models.WorkingHoursRequest{StartTime: "09:00", EndTime: "17:00", WorkingDays: []int{1, 8}}, "working_days"},
		{"duplicate day", models.WorkingHoursRequest{StartTime: "09:00", EndTime: "17:00", WorkingDays: []int{2, 2}}, "working_days"},
	}
	for _, tc := range cases {
		_, err := svc.SetWorkingHours(ctx, "pro-1", tc.req)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		assertValidationError(t, err, tc.field)
	}
}

func TestSetWorkingHours_NormalizesAndInvalidates(t *testing.T) {
	svc, hours, _, inv := newTestService()

	saved, err := svc.SetWorkingHours(context.Background(), "pro-1", models.WorkingHoursRequest{
		StartTime:   "9:00",
		EndTime:     "17:30",
		WorkingDays: []int{1, 3, 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.StartTime != "09:00" || saved.EndTime != "17:30" {
		t.Fatalf("expected zero-padded times, got %s-%s", saved.StartTime, saved.EndTime)
	}
	if hours.saved == nil {
		t.Fatalf("expected hours persisted")
	}
	if len(inv.ids) != 1 || inv.ids[0] != "pro-1" {
		t.Fatalf("expected one invalidation for pro-1, got %v", inv.ids)
	}
}

func TestCreateBlock_RejectsInvalidInput(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		req   models.CreateBlockRequest
		field string
	}{
		{"unknown type", models.CreateBlockRequest{BlockType: "vacation", StartDate: "2026-06-01"}, "block_type"},
		{"bad start date", models.CreateBlockRequest{BlockType: models.BlockFullDay, StartDate: "June 1st"}, "start_date"},
		{"bad end date", models.CreateBlockRequest{BlockType: models.BlockFullDay, StartDate: "2026-06-01", EndDate: "soon"}, "end_date"},
		{"end before start", models.CreateBlockRequest{BlockType: models.BlockFullDay, StartDate: "2026-06-02", EndDate: "2026-06-01"}, "end_date"},
		{"range without times", models.CreateBlockRequest{BlockType: models.BlockTimeRange, StartDate: "2026-06-01"}, "start_time"},
		{"range inverted times", models.CreateBlockRequest{BlockType: models.BlockTimeRange, StartDate: "2026-06-01", StartTime: "11:00", EndTime: "10:00"}, "end_time"},
	}
	for _, tc := range cases {
		_, err := svc.CreateBlock(ctx, "pro-1", tc.req)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		assertValidationError(t, err, tc.field)
	}
}

func TestCreateBlock_FullDayOpenEnded(t *testing.T) {
	svc, _, blocks, inv := newTestService()

	block, err := svc.CreateBlock(context.Background(), "pro-1", models.CreateBlockRequest{
		BlockType: models.BlockFullDay,
		StartDate: "2026-06-01",
		Reason:    "sabbatical",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.ID == "" {
		t.Fatalf("expected generated block ID")
	}
	if block.EndDate != "" {
		t.Fatalf("expected open-ended block, got end date %s", block.EndDate)
	}
	if blocks.created == nil {
		t.Fatalf("expected block persisted")
	}
	if len(inv.ids) != 1 {
		t.Fatalf("expected invalidation after block creation")
	}
}

func TestCreateBlock_TimeRangeNormalizesTimes(t *testing.T) {
	svc, _, _, _ := newTestService()

	block, err := svc.CreateBlock(context.Background(), "pro-1", models.CreateBlockRequest{
		BlockType: models.BlockTimeRange,
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
		StartTime: "9:00",
		EndTime:   "12:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.StartTime != "09:00" || block.EndTime != "12:00" {
		t.Fatalf("expected zero-padded times, got %s-%s", block.StartTime, block.EndTime)
	}
}

func TestDeleteBlock_Invalidates(t *testing.T) {
	svc, _, blocks, inv := newTestService()

	if err := svc.DeleteBlock(context.Background(), "pro-1", "block-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocks.deleted != "block-9" {
		t.Fatalf("expected block-9 deleted, got %q", blocks.deleted)
	}
	if len(inv.ids) != 1 {
		t.Fatalf("expected invalidation after deletion")
	}
}
