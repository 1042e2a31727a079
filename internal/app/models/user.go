package models

import (
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleCoreIntern Role = "Core Intern"
	RoleLeadIntern Role = "Lead Intern"
	RoleAdmin      Role = "Admin"
)

// Valid reports whether the role is one of the closed variants.
func (r Role) Valid() bool {
	switch r {
	case RoleCoreIntern, RoleLeadIntern, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a user record. Rejection is not a
// status: a rejected pending request is deleted outright.
type AccountStatus string

const (
	StatusPendingApproval AccountStatus = "Pending Approval"
	StatusActive          AccountStatus = "Active"
	StatusInactive        AccountStatus = "Inactive"
)

// User defines the user model based on the 'users' table. Username and
// AuthHash stay nil until an admin approves the request.
type User struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Username  *string       `json:"username,omitempty" db:"username"`
	School    string        `json:"school" db:"school"`
	Role      Role          `json:"role" db:"role"`
	StartDate time.Time     `json:"startDate" db:"start_date"`
	Status    AccountStatus `json:"status" db:"status"`
	AuthHash  *string       `json:"-" db:"auth_hash"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
