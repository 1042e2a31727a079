package models

import "time"

// SupportPlanStatus is the state of a remediation plan. Transitions among
// the variants are unrestricted.
type SupportPlanStatus string

const (
	SupportPlanActive     SupportPlanStatus = "Active"
	SupportPlanInProgress SupportPlanStatus = "In Progress"
	SupportPlanCompleted  SupportPlanStatus = "Completed"
	SupportPlanOnHold     SupportPlanStatus = "On Hold"
)

// Valid reports whether the status is one of the closed variants.
func (s SupportPlanStatus) Valid() bool {
	switch s {
	case SupportPlanActive, SupportPlanInProgress, SupportPlanCompleted, SupportPlanOnHold:
		return true
	}
	return false
}

// CoreReview is a Lead Intern's periodic assessment of a Core Intern, based
// on the 'core_reviews' table. Reviews are append-only.
type CoreReview struct {
	ID                int64     `json:"id" db:"id"`
	LeadInternID      int64     `json:"leadInternId" db:"lead_intern_id"`
	CoreInternID      int64     `json:"coreInternId" db:"core_intern_id"`
	ReviewPeriod      string    `json:"reviewPeriod" db:"review_period"`
	ReviewDate        time.Time `json:"reviewDate" db:"review_date"`
	OverallVibe       string    `json:"overallVibe" db:"overall_vibe"`
	WhatsWorking      string    `json:"whatsWorking" db:"whats_working"`
	GrowthAreas       string    `json:"growthAreas" db:"growth_areas"`
	NeedsSupport      string    `json:"needsSupport" db:"needs_support"`
	HoursCompliance   string    `json:"hoursCompliance" db:"hours_compliance"`
	ContentCreated    string    `json:"contentCreated" db:"content_created"`
	MeetingAttendance string    `json:"meetingAttendance" db:"meeting_attendance"`
	DMResponseRate    string    `json:"dmResponseRate" db:"dm_response_rate"`
	ProofUploaded     string    `json:"proofUploaded" db:"proof_uploaded"`
	Notes             string    `json:"notes" db:"notes"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`

	// Joined names for listings.
	LeadName  string `json:"leadName,omitempty" db:"lead_name"`
	CoreName  string `json:"coreName,omitempty" db:"core_name"`
	CoreEmail string `json:"coreEmail,omitempty" db:"core_email"`
}

// SupportPlan is a remediation plan a Lead creates for a Core Intern, based
// on the 'support_plans' table.
type SupportPlan struct {
	ID             int64             `json:"id" db:"id"`
	LeadInternID   int64             `json:"leadInternId" db:"lead_intern_id"`
	CoreInternID   int64             `json:"coreInternId" db:"core_intern_id"`
	StartDate      time.Time         `json:"startDate" db:"start_date"`
	IssueChallenge string            `json:"issueChallenge" db:"issue_challenge"`
	Goal           string            `json:"goal" db:"goal"`
	ActionSteps    string            `json:"actionSteps" db:"action_steps"`
	CheckInDate    *time.Time        `json:"checkInDate,omitempty" db:"check_in_date"`
	Status         SupportPlanStatus `json:"status" db:"status"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`

	LeadName string `json:"leadName,omitempty" db:"lead_name"`
	CoreName string `json:"coreName,omitempty" db:"core_name"`
}

// Win is a recorded achievement, based on the 'wins' table. The celebrated
// flag moves false to true only; nothing reverts it.
type Win struct {
	ID             int64     `json:"id" db:"id"`
	LeadInternID   int64     `json:"leadInternId" db:"lead_intern_id"`
	CoreInternID   int64     `json:"coreInternId" db:"core_intern_id"`
	WinDate        time.Time `json:"winDate" db:"win_date"`
	WinDescription string    `json:"winDescription" db:"win_description"`
	WhyMatters     string    `json:"whyMatters" db:"why_matters"`
	Celebrated     bool      `json:"celebrated" db:"celebrated"`
	Notes          string    `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	LeadName string `json:"leadName,omitempty" db:"lead_name"`
	CoreName string `json:"coreName,omitempty" db:"core_name"`
}
