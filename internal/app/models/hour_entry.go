package models

import "time"

// HourEntry defines a logged work session based on the 'hours' table.
// TotalHours is derived from the start/end pair at submission and is never
// edited afterwards; only the approval flag is mutable, and only by Admin.
type HourEntry struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Date        time.Time `json:"date" db:"date"`
	StartTime   string    `json:"startTime" db:"start_time"`
	EndTime     string    `json:"endTime" db:"end_time"`
	TotalHours  float64   `json:"totalHours" db:"total_hours"`
	Description string    `json:"description" db:"description"`
	Approved    bool      `json:"approved" db:"approved"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Joined user fields, populated by admin listings only.
	UserName  string `json:"userName,omitempty" db:"user_name"`
	UserEmail string `json:"userEmail,omitempty" db:"user_email"`
}
