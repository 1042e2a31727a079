package models

import "time"

// DeliverableStatus is the review state of a submitted deliverable.
type DeliverableStatus string

const (
	DeliverablePending       DeliverableStatus = "Pending"
	DeliverableApproved      DeliverableStatus = "Approved"
	DeliverableNeedsRevision DeliverableStatus = "Needs Revision"
	DeliverableRejected      DeliverableStatus = "Rejected"
)

// Valid reports whether the status is one of the closed variants.
func (s DeliverableStatus) Valid() bool {
	switch s {
	case DeliverablePending, DeliverableApproved, DeliverableNeedsRevision, DeliverableRejected:
		return true
	}
	return false
}

// DeliverableTypes is the catalog of submission types offered to callers.
var DeliverableTypes = []string{
	"Reel",
	"IG Live",
	"Event",
	"Meeting",
	"Blog Post",
	"Social Media Post",
	"Video Content",
	"Other",
}

// Deliverable defines a submitted work product based on the 'deliverables'
// table. ReviewedAt is set exactly when the status leaves Pending.
type Deliverable struct {
	ID            int64             `json:"id" db:"id"`
	UserID        int64             `json:"userId" db:"user_id"`
	Type          string            `json:"type" db:"type"`
	Description   string            `json:"description" db:"description"`
	Links         string            `json:"links" db:"links"`
	ProofLinks    string            `json:"proofLinks" db:"proof_links"`
	Status        DeliverableStatus `json:"status" db:"status"`
	AdminComments string            `json:"adminComments" db:"admin_comments"`
	SubmittedAt   time.Time         `json:"submittedAt" db:"submitted_at"`
	ReviewedAt    *time.Time        `json:"reviewedAt,omitempty" db:"reviewed_at"`

	// Joined user fields, populated by admin listings only.
	UserName  string `json:"userName,omitempty" db:"user_name"`
	UserEmail string `json:"userEmail,omitempty" db:"user_email"`
}
