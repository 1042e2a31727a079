package dto

// RequestAccountRequest represents a self-service account request
type RequestAccountRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	School    string `json:"school" binding:"required"`
	Role      string `json:"role" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
}

// ApproveAccountResponse returns the credentials generated during approval.
// This is the only time the plaintext password leaves the server.
type ApproveAccountResponse struct {
	User     UserResponse `json:"user"`
	Username string       `json:"username"`
	Password string       `json:"password"`
}

// SetStatusRequest changes an account's active status
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive"`
}
