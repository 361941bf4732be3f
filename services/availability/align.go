// File: services/availability/align.go
package availability

import (
	"sort"

	"holistia/models"
)

// AlignGrids prepares day grids for rectangular (days x times) rendering.
// It computes the union of slot times across all days and, for each day
// missing a time on that shared axis, synthesizes a not_offered slot. The
// input grids are never mutated; aligned copies are returned.
func AlignGrids(days []models.DayGrid) []models.DayGrid {
	axisSet := make(map[string]bool)
	for _, day := range days {
		for _, slot := range day.Slots {
			axisSet[slot.Time] = true
		}
	}
	axis := make([]string, 0, len(axisSet))
	for t := range axisSet {
		axis = append(axis, t)
	}
	sort.Strings(axis)

	aligned := make([]models.DayGrid, len(days))
	for i, day := range days {
		native := make(map[string]models.TimeSlot, len(day.Slots))
		for _, slot := range day.Slots {
			native[slot.Time] = slot
		}

		out := day
		out.Slots = make([]models.TimeSlot, 0, len(axis))
		for _, t := range axis {
			if slot, ok := native[t]; ok {
				out.Slots = append(out.Slots, slot)
				continue
			}
			out.Slots = append(out.Slots, models.TimeSlot{
				Time:         t,
				DisplayLabel: timeLabel(t),
				Status:       models.SlotNotOffered,
			})
		}
		aligned[i] = out
	}
	return aligned
}

func timeLabel(clock string) string {
	minutes, err := models.ParseClock(clock)
	if err != nil {
		return clock
	}
	return models.ClockLabel(minutes)
}
