package dto

// SubmitDeliverableRequest represents a work product submission
type SubmitDeliverableRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Links       string `json:"links"`
	ProofLinks  string `json:"proofLinks"`
}

// ReviewDeliverableRequest records an admin review outcome
type ReviewDeliverableRequest struct {
	Status        string `json:"status" binding:"required,oneof=Approved 'Needs Revision' Rejected"`
	AdminComments string `json:"adminComments"`
}

// DeliverableStatusCounts summarizes one user's deliverables by review state
type DeliverableStatusCounts struct {
	Pending       int `json:"pending"`
	Approved      int `json:"approved"`
	NeedsRevision int `json:"needsRevision"`
	Rejected      int `json:"rejected"`
}
