package availability

import (
	"reflect"
	"testing"
	"time"

	"holistia/models"
)

// 2026-06-01 is a Monday.
var monday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func weekdayHours(start, end string) *models.WorkingHours {
	return &models.WorkingHours{
		ProfessionalID: "pro-1",
		StartTime:      start,
		EndTime:        end,
		WorkingDays:    []int{1, 2, 3, 4, 5},
	}
}

func slotTimes(day models.DayGrid) []string {
	times := make([]string, len(day.Slots))
	for i, s := range day.Slots {
		times[i] = s.Time
	}
	return times
}

func TestBuildWeekGrid_WindowEndExclusive(t *testing.T) {
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "11:00"), nil, nil)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	got := slotTimes(days[0])
	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
}

func TestBuildWeekGrid_SundayMapsToSeven(t *testing.T) {
	hours := &models.WorkingHours{
		ProfessionalID: "pro-1",
		StartTime:      "09:00",
		EndTime:        "10:00",
		WorkingDays:    []int{7},
	}
	days := BuildWeekGrid(monday, monday, hours, nil, nil)
	for i := 0; i < 6; i++ {
		if len(days[i].Slots) != 0 {
			t.Fatalf("expected no slots on %s, got %d", days[i].Date, len(days[i].Slots))
		}
	}
	sunday := days[6]
	if sunday.Date != "2026-06-07" {
		t.Fatalf("expected last day 2026-06-07, got %s", sunday.Date)
	}
	if len(sunday.Slots) != 1 {
		t.Fatalf("expected 1 slot on Sunday, got %d", len(sunday.Slots))
	}
}

func TestBuildWeekGrid_OccupiedPrecedence(t *testing.T) {
	bookings := []models.Appointment{
		{ProfessionalID: "pro-1", Date: "2026-06-01", Time: "09:00", Status: models.AppointmentConfirmed},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "11:00"), bookings, nil)
	if got := days[0].Slots[0].Status; got != models.SlotOccupied {
		t.Fatalf("expected occupied, got %s", got)
	}
	if got := days[0].Slots[1].Status; got != models.SlotAvailable {
		t.Fatalf("expected available, got %s", got)
	}
}

func TestBuildWeekGrid_CancelledAppointmentFreesSlot(t *testing.T) {
	bookings := []models.Appointment{
		{ProfessionalID: "pro-1", Date: "2026-06-01", Time: "09:00", Status: models.AppointmentCancelled},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "11:00"), bookings, nil)
	if got := days[0].Slots[0].Status; got != models.SlotAvailable {
		t.Fatalf("expected available, got %s", got)
	}
}

func TestBuildWeekGrid_TimeRangeBlockBeatsAvailable(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{BlockType: models.BlockTimeRange, StartDate: "2026-06-01", EndDate: "2026-06-01", StartTime: "09:00", EndTime: "10:00"},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "11:00"), nil, blocks)
	if got := days[0].Slots[0].Status; got != models.SlotBlocked {
		t.Fatalf("expected blocked at 09:00, got %s", got)
	}
	// Block end is exclusive.
	if got := days[0].Slots[1].Status; got != models.SlotAvailable {
		t.Fatalf("expected available at 10:00, got %s", got)
	}
}

func TestBuildWeekGrid_FullDayBlockYieldsZeroSlots(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{BlockType: models.BlockFullDay, StartDate: "2026-06-01", EndDate: "2026-06-01"},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "17:00"), nil, blocks)
	if len(days[0].Slots) != 0 {
		t.Fatalf("expected 0 slots on fully blocked day, got %d", len(days[0].Slots))
	}
	if len(days[1].Slots) == 0 {
		t.Fatalf("expected slots on the next day")
	}
}

func TestBuildWeekGrid_OpenEndedBlockCoversWholeWeek(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{BlockType: models.BlockFullDay, StartDate: "2026-05-20"},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "17:00"), nil, blocks)
	for _, day := range days {
		if len(day.Slots) != 0 {
			t.Fatalf("expected 0 slots on %s under open-ended block, got %d", day.Date, len(day.Slots))
		}
	}
}

func TestBuildWeekGrid_NonWorkingDayIgnoresData(t *testing.T) {
	// Saturday 2026-06-06 has a booking and a block, but it is not a
	// working day so the grid stays empty regardless.
	bookings := []models.Appointment{
		{ProfessionalID: "pro-1", Date: "2026-06-06", Time: "09:00", Status: models.AppointmentConfirmed},
	}
	blocks := []models.AvailabilityBlock{
		{BlockType: models.BlockTimeRange, StartDate: "2026-06-06", EndDate: "2026-06-06", StartTime: "10:00", EndTime: "11:00"},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "12:00"), bookings, blocks)
	saturday := days[5]
	if saturday.Date != "2026-06-06" {
		t.Fatalf("expected 2026-06-06, got %s", saturday.Date)
	}
	if len(saturday.Slots) != 0 {
		t.Fatalf("expected 0 slots on non-working day, got %d", len(saturday.Slots))
	}
}

func TestBuildWeekGrid_PastDaysDropped(t *testing.T) {
	now := monday.AddDate(0, 0, 3) // Thursday
	days := BuildWeekGrid(monday, now, weekdayHours("09:00", "11:00"), nil, nil)
	if len(days) != 4 {
		t.Fatalf("expected 4 remaining days, got %d", len(days))
	}
	if days[0].Date != "2026-06-04" {
		t.Fatalf("expected first day 2026-06-04, got %s", days[0].Date)
	}
}

func TestBuildWeekGrid_NilHoursEmptyButPresent(t *testing.T) {
	days := BuildWeekGrid(monday, monday, nil, nil, nil)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for _, day := range days {
		if len(day.Slots) != 0 {
			t.Fatalf("expected 0 slots on %s without configured hours, got %d", day.Date, len(day.Slots))
		}
	}
}

func TestBuildWeekGrid_WindowNarrowerThanSlot(t *testing.T) {
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "09:30"), nil, nil)
	if len(days[0].Slots) != 0 {
		t.Fatalf("expected 0 slots for sub-hour window, got %d", len(days[0].Slots))
	}
}

func TestBuildWeekGrid_Idempotent(t *testing.T) {
	bookings := []models.Appointment{
		{ProfessionalID: "pro-1", Date: "2026-06-02", Time: "10:00", Status: models.AppointmentPending},
	}
	blocks := []models.AvailabilityBlock{
		{BlockType: models.BlockTimeRange, StartDate: "2026-06-03", EndDate: "2026-06-03", StartTime: "09:00", EndTime: "11:00"},
	}
	first := BuildWeekGrid(monday, monday, weekdayHours("09:00", "12:00"), bookings, blocks)
	second := BuildWeekGrid(monday, monday, weekdayHours("09:00", "12:00"), bookings, blocks)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical grids for identical inputs")
	}
}

func TestBuildWeekGrid_EndToEnd(t *testing.T) {
	bookings := []models.Appointment{
		{ProfessionalID: "pro-1", Date: "2026-06-01", Time: "10:00", Status: models.AppointmentConfirmed},
	}
	blocks := []models.AvailabilityBlock{
		{BlockType: models.BlockTimeRange, StartDate: "2026-06-01", EndDate: "2026-06-01", StartTime: "11:00", EndTime: "12:00"},
	}
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "12:00"), bookings, blocks)

	first := days[0]
	if len(first.Slots) != 3 {
		t.Fatalf("expected 3 slots on Monday, got %d", len(first.Slots))
	}
	wantStatuses := []models.SlotStatus{models.SlotAvailable, models.SlotOccupied, models.SlotBlocked}
	for i, want := range wantStatuses {
		if first.Slots[i].Status != want {
			t.Fatalf("slot %s: expected %s, got %s", first.Slots[i].Time, want, first.Slots[i].Status)
		}
	}
	if len(days[5].Slots) != 0 {
		t.Fatalf("expected Saturday to have 0 slots, got %d", len(days[5].Slots))
	}
}

func TestBuildWeekGrid_SlotLabelsAndTimestamps(t *testing.T) {
	days := BuildWeekGrid(monday, monday, weekdayHours("09:00", "10:00"), nil, nil)
	day := days[0]
	if day.WeekdayLabel != "Mon" {
		t.Fatalf("expected weekday label Mon, got %s", day.WeekdayLabel)
	}
	if day.DisplayLabel != "Mon 1 Jun" {
		t.Fatalf("expected display label 'Mon 1 Jun', got %q", day.DisplayLabel)
	}
	slot := day.Slots[0]
	if slot.DisplayLabel != "9:00 AM" {
		t.Fatalf("expected slot label '9:00 AM', got %q", slot.DisplayLabel)
	}
	if slot.FullTimestamp != "2026-06-01T09:00:00Z" {
		t.Fatalf("unexpected timestamp %q", slot.FullTimestamp)
	}
}
