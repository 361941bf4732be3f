package models

import "time"

// WorkingHours is a professional's recurring weekly availability template.
// Times are "HH:MM", zero-padded. WorkingDays holds ISO weekday numbers
// (1=Monday .. 7=Sunday).
type WorkingHours struct {
	ProfessionalID string    `bson:"professional_id" json:"professional_id"`
	StartTime      string    `bson:"start_time" json:"start_time"`
	EndTime        string    `bson:"end_time" json:"end_time"`
	WorkingDays    []int     `bson:"working_days" json:"working_days"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// WorksOn reports whether the given ISO weekday (1=Monday .. 7=Sunday)
// is one of the professional's active days.
func (wh *WorkingHours) WorksOn(isoWeekday int) bool {
	for _, d := range wh.WorkingDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}
