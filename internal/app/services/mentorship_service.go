package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/clubstride/interntrack/internal/app/auth"
	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
	"github.com/clubstride/interntrack/internal/app/repositories"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// MentorshipService handles reviews, support plans, wins and lead reports
type MentorshipService struct {
	reviewRepo      repositories.IReviewRepository
	planRepo        repositories.ISupportPlanRepository
	winRepo         repositories.IWinRepository
	userRepo        repositories.IUserRepository
	hourRepo        repositories.IHourRepository
	deliverableRepo repositories.IDeliverableRepository
	logger          zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	reviewRepo repositories.IReviewRepository,
	planRepo repositories.ISupportPlanRepository,
	winRepo repositories.IWinRepository,
	userRepo repositories.IUserRepository,
	hourRepo repositories.IHourRepository,
	deliverableRepo repositories.IDeliverableRepository,
	logger zerolog.Logger,
) *MentorshipService {
	return &MentorshipService{
		reviewRepo:      reviewRepo,
		planRepo:        planRepo,
		winRepo:         winRepo,
		userRepo:        userRepo,
		hourRepo:        hourRepo,
		deliverableRepo: deliverableRepo,
		logger:          logger,
	}
}

// ListCoreInterns returns the active core intern roster leads pick review
// targets from.
func (s *MentorshipService) ListCoreInterns(ctx context.Context, session appauth.Session) ([]*models.User, error) {
	if err := appauth.Require(session, appauth.ActionReadReports, 0); err != nil {
		return nil, err
	}
	return s.userRepo.GetActiveCoreInterns(ctx)
}

// checkCoreTarget verifies the target of a mentorship record is an existing
// core intern.
func (s *MentorshipService) checkCoreTarget(ctx context.Context, coreInternID int64) error {
	target, err := s.userRepo.GetByID(ctx, coreInternID)
	if err != nil {
		return err
	}
	if target.Role != models.RoleCoreIntern {
		return apperrors.NewValidationError("target must be a core intern")
	}
	return nil
}

// SubmitReview appends a new review. The recorded lead is always the session
// user; reviews are never edited or deleted afterwards.
func (s *MentorshipService) SubmitReview(ctx context.Context, session appauth.Session, req *dto.SubmitReviewRequest) (*models.CoreReview, error) {
	if err := appauth.Require(session, appauth.ActionSubmitReview, session.UserID); err != nil {
		return nil, err
	}
	if err := s.checkCoreTarget(ctx, req.CoreInternID); err != nil {
		return nil, err
	}

	reviewDate, err := time.Parse("2006-01-02", req.ReviewDate)
	if err != nil {
		return nil, apperrors.NewValidationError("review date must be YYYY-MM-DD")
	}

	rev := &models.CoreReview{
		LeadInternID:      session.UserID,
		CoreInternID:      req.CoreInternID,
		ReviewPeriod:      req.ReviewPeriod,
		ReviewDate:        reviewDate,
		OverallVibe:       req.OverallVibe,
		WhatsWorking:      req.WhatsWorking,
		GrowthAreas:       req.GrowthAreas,
		NeedsSupport:      req.NeedsSupport,
		HoursCompliance:   req.HoursCompliance,
		ContentCreated:    req.ContentCreated,
		MeetingAttendance: req.MeetingAttendance,
		DMResponseRate:    req.DMResponseRate,
		ProofUploaded:     req.ProofUploaded,
		Notes:             req.Notes,
	}

	id, err := s.reviewRepo.Create(ctx, rev)
	if err != nil {
		return nil, err
	}
	rev.ID = id

	s.logger.Info().Int64("leadId", session.UserID).Int64("coreId", req.CoreInternID).Msg("Core review submitted")
	return rev, nil
}

// ListReviews returns reviews scoped by role: admins see all, leads the
// reviews they wrote, core interns the reviews written about them.
func (s *MentorshipService) ListReviews(ctx context.Context, session appauth.Session) ([]*models.CoreReview, error) {
	if err := appauth.Require(session, appauth.ActionReadReviews, session.UserID); err != nil {
		return nil, err
	}
	switch session.Role {
	case models.RoleAdmin:
		return s.reviewRepo.ListAll(ctx)
	case models.RoleLeadIntern:
		return s.reviewRepo.ListByLead(ctx, session.UserID)
	default:
		return s.reviewRepo.ListByCore(ctx, session.UserID)
	}
}

// CreateSupportPlan opens a remediation plan with status Active, starting
// today.
func (s *MentorshipService) CreateSupportPlan(ctx context.Context, session appauth.Session, req *dto.CreateSupportPlanRequest) (*models.SupportPlan, error) {
	if err := appauth.Require(session, appauth.ActionCreateSupportPlan, session.UserID); err != nil {
		return nil, err
	}
	if err := s.checkCoreTarget(ctx, req.CoreInternID); err != nil {
		return nil, err
	}

	var checkIn *time.Time
	if req.CheckInDate != "" {
		t, err := time.Parse("2006-01-02", req.CheckInDate)
		if err != nil {
			return nil, apperrors.NewValidationError("check-in date must be YYYY-MM-DD")
		}
		checkIn = &t
	}

	plan := &models.SupportPlan{
		LeadInternID:   session.UserID,
		CoreInternID:   req.CoreInternID,
		StartDate:      time.Now(),
		IssueChallenge: req.IssueChallenge,
		Goal:           req.Goal,
		ActionSteps:    req.ActionSteps,
		CheckInDate:    checkIn,
		Status:         models.SupportPlanActive,
	}

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	s.logger.Info().Int64("leadId", session.UserID).Int64("coreId", req.CoreInternID).Msg("Support plan created")
	return plan, nil
}

// ListSupportPlans returns plans scoped by role.
func (s *MentorshipService) ListSupportPlans(ctx context.Context, session appauth.Session, status models.SupportPlanStatus) ([]*models.SupportPlan, error) {
	if err := appauth.Require(session, appauth.ActionReadSupportPlans, session.UserID); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("unknown support plan status")
	}

	var (
		plans []*models.SupportPlan
		err   error
	)
	switch session.Role {
	case models.RoleAdmin:
		plans, err = s.planRepo.ListAll(ctx)
	case models.RoleLeadIntern:
		plans, err = s.planRepo.ListByLead(ctx, session.UserID)
	default:
		plans, err = s.planRepo.ListByCore(ctx, session.UserID)
	}
	if err != nil {
		return nil, err
	}
	if status == "" {
		return plans, nil
	}

	filtered := make([]*models.SupportPlan, 0, len(plans))
	for _, plan := range plans {
		if plan.Status == status {
			filtered = append(filtered, plan)
		}
	}
	return filtered, nil
}

// UpdateSupportPlanStatus moves a plan to any of the defined statuses.
// Transitions are deliberately unrestricted; updated_at is refreshed on
// every change. Leads may only touch their own plans.
func (s *MentorshipService) UpdateSupportPlanStatus(ctx context.Context, session appauth.Session, planID int64, status models.SupportPlanStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError("unknown support plan status")
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if err := appauth.Require(session, appauth.ActionUpdateSupportPlan, plan.LeadInternID); err != nil {
		return err
	}

	if err := s.planRepo.UpdateStatus(ctx, planID, status); err != nil {
		return err
	}
	s.logger.Info().Int64("planId", planID).Str("status", string(status)).Msg("Support plan status updated")
	return nil
}

// AddWin records an achievement. Celebrated starts false.
func (s *MentorshipService) AddWin(ctx context.Context, session appauth.Session, req *dto.AddWinRequest) (*models.Win, error) {
	if err := appauth.Require(session, appauth.ActionAddWin, session.UserID); err != nil {
		return nil, err
	}
	if err := s.checkCoreTarget(ctx, req.CoreInternID); err != nil {
		return nil, err
	}

	winDate, err := time.Parse("2006-01-02", req.WinDate)
	if err != nil {
		return nil, apperrors.NewValidationError("win date must be YYYY-MM-DD")
	}

	win := &models.Win{
		LeadInternID:   session.UserID,
		CoreInternID:   req.CoreInternID,
		WinDate:        winDate,
		WinDescription: req.WinDescription,
		WhyMatters:     req.WhyMatters,
		Notes:          req.Notes,
	}

	id, err := s.winRepo.Create(ctx, win)
	if err != nil {
		return nil, err
	}
	win.ID = id

	s.logger.Info().Int64("leadId", session.UserID).Int64("coreId", req.CoreInternID).Msg("Win recorded")
	return win, nil
}

// ListWins returns wins scoped by role.
func (s *MentorshipService) ListWins(ctx context.Context, session appauth.Session) ([]*models.Win, error) {
	if err := appauth.Require(session, appauth.ActionReadWins, session.UserID); err != nil {
		return nil, err
	}
	switch session.Role {
	case models.RoleAdmin:
		return s.winRepo.ListAll(ctx)
	case models.RoleLeadIntern:
		return s.winRepo.ListByLead(ctx, session.UserID)
	default:
		return s.winRepo.ListByCore(ctx, session.UserID)
	}
}

// MarkWinCelebrated flips the celebrated flag to true. The flag never goes
// back; celebrating an already celebrated win succeeds without effect. Leads
// may only touch their own wins.
func (s *MentorshipService) MarkWinCelebrated(ctx context.Context, session appauth.Session, winID int64) error {
	win, err := s.winRepo.GetByID(ctx, winID)
	if err != nil {
		return err
	}
	if err := appauth.Require(session, appauth.ActionCelebrateWin, win.LeadInternID); err != nil {
		return err
	}
	if win.Celebrated {
		return nil
	}
	if err := s.winRepo.MarkCelebrated(ctx, winID); err != nil {
		return err
	}
	s.logger.Info().Int64("winId", winID).Msg("Win celebrated")
	return nil
}

// Report builds the per-core-intern summary leads use: total and approved
// hours plus deliverable counts by status for every active core intern.
func (s *MentorshipService) Report(ctx context.Context, session appauth.Session) (*dto.ReportResponse, error) {
	if err := appauth.Require(session, appauth.ActionReadReports, 0); err != nil {
		return nil, err
	}

	interns, err := s.userRepo.GetActiveCoreInterns(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CoreInternSummary, 0, len(interns))
	for _, intern := range interns {
		total, err := s.hourRepo.Total(ctx, intern.ID, false)
		if err != nil {
			return nil, err
		}
		approved, err := s.hourRepo.Total(ctx, intern.ID, true)
		if err != nil {
			return nil, err
		}
		counts, err := s.deliverableRepo.StatusCounts(ctx, intern.ID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, dto.CoreInternSummary{
			User:          dto.ToUserResponse(intern),
			TotalHours:    total,
			ApprovedHours: approved,
			Deliverables: dto.DeliverableStatusCounts{
				Pending:       counts[models.DeliverablePending],
				Approved:      counts[models.DeliverableApproved],
				NeedsRevision: counts[models.DeliverableNeedsRevision],
				Rejected:      counts[models.DeliverableRejected],
			},
		})
	}

	return &dto.ReportResponse{Summaries: summaries}, nil
}
