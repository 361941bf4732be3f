package models

import "time"

// Block types.
const (
	BlockFullDay   = "full_day"
	BlockTimeRange = "time_range"
)

// AvailabilityBlock is a professional-initiated exclusion layered over the
// recurring working hours. Dates are "2006-01-02"; an empty EndDate means the
// block is open-ended (unbounded forward). StartTime/EndTime apply only to
// time_range blocks and use "HH:MM".
type AvailabilityBlock struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professional_id"`
	BlockType      string    `bson:"block_type" json:"block_type"`
	StartDate      string    `bson:"start_date" json:"start_date"`
	EndDate        string    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	StartTime      string    `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime        string    `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Reason         string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// CoversDate reports whether the block's date range contains the given date
// ("2006-01-02"). Zero-padded ISO dates compare correctly as strings.
func (b *AvailabilityBlock) CoversDate(date string) bool {
	return b.StartDate <= date && (b.EndDate == "" || b.EndDate >= date)
}
