// File: services/availability/grid.go
package availability

import (
	"time"

	"holistia/models"
)

// slotDuration is the fixed grid granularity. Appointments may run longer,
// but the grid only models hourly start times.
const slotDuration = 60 // minutes

// BuildWeekGrid computes the bookable grid for the 7 calendar days starting
// at anchor. Days strictly before now's date are dropped from the output
// entirely. A nil hours config yields a present-but-empty grid: one DayGrid
// per remaining day, each with zero slots.
//
// The generator is pure: same inputs (including now) always produce the same
// grid, and it never mutates its inputs.
func BuildWeekGrid(anchor, now time.Time, hours *models.WorkingHours, bookings []models.Appointment, blocks []models.AvailabilityBlock) []models.DayGrid {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, now.Location())

	occupied := occupiedIndex(bookings)

	days := make([]models.DayGrid, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		if d.Before(today) {
			continue
		}
		days = append(days, buildDayGrid(d, hours, occupied, blocks))
	}
	return days
}

func buildDayGrid(d time.Time, hours *models.WorkingHours, occupied map[string]bool, blocks []models.AvailabilityBlock) models.DayGrid {
	date := d.Format("2006-01-02")
	day := models.DayGrid{
		Date:         date,
		WeekdayLabel: d.Format("Mon"),
		DisplayLabel: d.Format("Mon 2 Jan"),
		Slots:        []models.TimeSlot{},
	}

	if hours == nil || !hours.WorksOn(isoWeekday(d)) {
		return day
	}
	if fullDayBlocked(blocks, date) {
		return day
	}

	startMin, err := models.ParseClock(hours.StartTime)
	if err != nil {
		return day
	}
	endMin, err := models.ParseClock(hours.EndTime)
	if err != nil {
		return day
	}

	for m := startMin; m+slotDuration <= endMin; m += slotDuration {
		clock := models.FormatClock(m)
		day.Slots = append(day.Slots, models.TimeSlot{
			Time:          clock,
			DisplayLabel:  models.ClockLabel(m),
			FullTimestamp: slotTimestamp(d, m),
			Status:        slotStatus(date, clock, m, occupied, blocks),
		})
	}
	return day
}

// slotStatus resolves a slot's state with occupied taking precedence over
// blocked, and blocked over available.
func slotStatus(date, clock string, minutes int, occupied map[string]bool, blocks []models.AvailabilityBlock) models.SlotStatus {
	if occupied[date+" "+clock] {
		return models.SlotOccupied
	}
	if timeRangeBlocked(blocks, date, minutes) {
		return models.SlotBlocked
	}
	return models.SlotAvailable
}

// occupiedIndex keys active bookings by date and normalized time, so an
// unpadded stored time still matches its slot.
func occupiedIndex(bookings []models.Appointment) map[string]bool {
	index := make(map[string]bool, len(bookings))
	for i := range bookings {
		if !bookings[i].Occupies() {
			continue
		}
		minutes, err := models.ParseClock(bookings[i].Time)
		if err != nil {
			continue
		}
		index[bookings[i].Date+" "+models.FormatClock(minutes)] = true
	}
	return index
}

func fullDayBlocked(blocks []models.AvailabilityBlock, date string) bool {
	for i := range blocks {
		if blocks[i].BlockType == models.BlockFullDay && blocks[i].CoversDate(date) {
			return true
		}
	}
	return false
}

// timeRangeBlocked checks half-open [start, end) containment on minutes
// since midnight. Blocks with unparseable times are ignored.
func timeRangeBlocked(blocks []models.AvailabilityBlock, date string, minutes int) bool {
	for i := range blocks {
		b := &blocks[i]
		if b.BlockType != models.BlockTimeRange || !b.CoversDate(date) {
			continue
		}
		blockStart, err := models.ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		blockEnd, err := models.ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		if blockStart <= minutes && minutes < blockEnd {
			return true
		}
	}
	return false
}

// isoWeekday maps Go's Sunday=0 convention to ISO 1=Monday .. 7=Sunday.
func isoWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func slotTimestamp(d time.Time, minutes int) string {
	ts := time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, d.Location())
	return ts.Format(time.RFC3339)
}
