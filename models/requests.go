package models

// WorkingHoursRequest is the payload for setting a professional's weekly
// schedule.
type WorkingHoursRequest struct {
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	WorkingDays []int  `json:"working_days" binding:"required"`
}

// CreateBlockRequest is the payload for creating an availability block.
type CreateBlockRequest struct {
	BlockType string `json:"block_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
