package dto

// LogHoursRequest represents a work session submission. Times use 24 hour
// HH:MM form and the end must be after the start.
type LogHoursRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime     string `json:"endTime" binding:"required,datetime=15:04"`
	Description string `json:"description"`
}

// LogHoursResponse returns the stored entry id and the derived duration
type LogHoursResponse struct {
	ID         int64   `json:"id"`
	TotalHours float64 `json:"totalHours"`
}

// HourFilterQuery represents optional date range filtering for hour listings
type HourFilterQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ApproveHoursRequest toggles the approval flag on an entry
type ApproveHoursRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// TotalHoursResponse reports a user's accumulated hours
type TotalHoursResponse struct {
	UserID       int64   `json:"userId"`
	TotalHours   float64 `json:"totalHours"`
	ApprovedOnly bool    `json:"approvedOnly"`
}
