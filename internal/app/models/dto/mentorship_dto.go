package dto

// SubmitReviewRequest represents a lead's periodic review of a core intern
type SubmitReviewRequest struct {
	CoreInternID      int64  `json:"coreInternId" binding:"required,min=1"`
	ReviewPeriod      string `json:"reviewPeriod" binding:"required"`
	ReviewDate        string `json:"reviewDate" binding:"required,datetime=2006-01-02"`
	OverallVibe       string `json:"overallVibe" binding:"required"`
	WhatsWorking      string `json:"whatsWorking"`
	GrowthAreas       string `json:"growthAreas"`
	NeedsSupport      string `json:"needsSupport"`
	HoursCompliance   string `json:"hoursCompliance"`
	ContentCreated    string `json:"contentCreated"`
	MeetingAttendance string `json:"meetingAttendance"`
	DMResponseRate    string `json:"dmResponseRate"`
	ProofUploaded     string `json:"proofUploaded"`
	Notes             string `json:"notes"`
}

// CreateSupportPlanRequest represents a new remediation plan
type CreateSupportPlanRequest struct {
	CoreInternID   int64  `json:"coreInternId" binding:"required,min=1"`
	IssueChallenge string `json:"issueChallenge" binding:"required"`
	Goal           string `json:"goal" binding:"required"`
	ActionSteps    string `json:"actionSteps" binding:"required"`
	CheckInDate    string `json:"checkInDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateSupportPlanStatusRequest changes a plan's status
type UpdateSupportPlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active 'In Progress' Completed 'On Hold'"`
}

// AddWinRequest records an achievement for a core intern
type AddWinRequest struct {
	CoreInternID   int64  `json:"coreInternId" binding:"required,min=1"`
	WinDate        string `json:"winDate" binding:"required,datetime=2006-01-02"`
	WinDescription string `json:"winDescription" binding:"required"`
	WhyMatters     string `json:"whyMatters"`
	Notes          string `json:"notes"`
}

// CoreInternSummary is one row of a lead's report, aggregating a core
// intern's tracked activity
type CoreInternSummary struct {
	User          UserResponse            `json:"user"`
	TotalHours    float64                 `json:"totalHours"`
	ApprovedHours float64                 `json:"approvedHours"`
	Deliverables  DeliverableStatusCounts `json:"deliverables"`
}

// ReportResponse is the full per-core report for a lead or admin
type ReportResponse struct {
	Summaries []CoreInternSummary `json:"summaries"`
}
