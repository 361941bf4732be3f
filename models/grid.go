package models

// SlotStatus classifies a single time slot in the weekly grid.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotOccupied  SlotStatus = "occupied"
	SlotBlocked   SlotStatus = "blocked"
	// SlotNotOffered is presentation-only: it marks time-axis positions a
	// given day does not natively offer when grids are aligned for display.
	// The generator itself never emits it.
	SlotNotOffered SlotStatus = "not_offered"
)

// TimeSlot is a single fixed-start-time, one-hour-wide bookable unit.
// Derived on every query; never persisted.
type TimeSlot struct {
	Time          string     `json:"time"`           // "HH:MM"
	DisplayLabel  string     `json:"display_label"`  // e.g. "09:00"
	FullTimestamp string     `json:"full_timestamp"` // RFC 3339, date + time combined
	Status        SlotStatus `json:"status"`
}

// DayGrid is one calendar day's ordered slot list.
type DayGrid struct {
	Date         string     `json:"date"`          // "2006-01-02"
	WeekdayLabel string     `json:"weekday_label"` // e.g. "Mon"
	DisplayLabel string     `json:"display_label"` // e.g. "Mon 3 Jun"
	Slots        []TimeSlot `json:"slots"`
}
