// Package auth holds the session identity and the role-based access policy
// every feature service consults before touching the store.
package auth

import (
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// Session is the identity established by a successful login. It is owned by
// the caller (one per authenticated connection) and passed explicitly into
// every feature service operation.
type Session struct {
	UserID int64
	Role   models.Role
}

// Action enumerates the operations the policy gates.
type Action string

const (
	ActionManageAccounts Action = "accounts.manage"

	ActionLogHours     Action = "hours.log"
	ActionReadHours    Action = "hours.read"
	ActionApproveHours Action = "hours.approve"

	ActionSubmitDeliverable Action = "deliverables.submit"
	ActionReadDeliverables  Action = "deliverables.read"
	ActionReviewDeliverable Action = "deliverables.review"

	ActionSubmitReview Action = "reviews.submit"
	ActionReadReviews  Action = "reviews.read"

	ActionCreateSupportPlan Action = "plans.create"
	ActionReadSupportPlans  Action = "plans.read"
	ActionUpdateSupportPlan Action = "plans.update"

	ActionAddWin       Action = "wins.add"
	ActionReadWins     Action = "wins.read"
	ActionCelebrateWin Action = "wins.celebrate"

	// ActionReadReports covers the read-only hour/deliverable summaries
	// leads may see for any core intern.
	ActionReadReports Action = "reports.read"
)

// Allows is a pure function of (role, action, target owner). The owner id is
// the recorded lead for mentorship records and the owning user for hours and
// deliverables; pass 0 where ownership does not apply.
func Allows(s Session, action Action, ownerID int64) bool {
	switch s.Role {
	case models.RoleAdmin:
		return true

	case models.RoleLeadIntern:
		switch action {
		case ActionSubmitReview, ActionCreateSupportPlan, ActionAddWin:
			return ownerID == s.UserID
		case ActionReadReviews, ActionReadSupportPlans, ActionReadWins,
			ActionUpdateSupportPlan, ActionCelebrateWin:
			return ownerID == s.UserID
		case ActionReadReports:
			return true
		default:
			return false
		}

	case models.RoleCoreIntern:
		switch action {
		case ActionLogHours, ActionSubmitDeliverable,
			ActionReadHours, ActionReadDeliverables,
			ActionReadReviews, ActionReadSupportPlans, ActionReadWins,
			ActionReadReports:
			return ownerID == s.UserID
		default:
			return false
		}

	default:
		return false
	}
}

// Require returns ErrPermissionDenied unless the policy allows the action.
func Require(s Session, action Action, ownerID int64) error {
	if !Allows(s, action, ownerID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
