package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/dberrors"
)

// ISupportPlanRepository defines the interface for support plan database operations
type ISupportPlanRepository interface {
	Create(ctx context.Context, p *models.SupportPlan) (int64, error)
	GetByID(ctx context.Context, planID int64) (*models.SupportPlan, error)
	ListByLead(ctx context.Context, leadID int64) ([]*models.SupportPlan, error)
	ListByCore(ctx context.Context, coreID int64) ([]*models.SupportPlan, error)
	ListAll(ctx context.Context) ([]*models.SupportPlan, error)
	UpdateStatus(ctx context.Context, planID int64, status models.SupportPlanStatus) error
}

// SupportPlanRepository handles support plan database operations.
type SupportPlanRepository struct {
	db *pgxpool.Pool
}

// NewSupportPlanRepository creates a new SupportPlanRepository.
func NewSupportPlanRepository(db *pgxpool.Pool) *SupportPlanRepository {
	return &SupportPlanRepository{db: db}
}

// Create inserts a new support plan.
func (r *SupportPlanRepository) Create(ctx context.Context, p *models.SupportPlan) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO support_plans (
			lead_intern_id, core_intern_id, start_date, issue_challenge,
			goal, action_steps, check_in_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.LeadInternID, p.CoreInternID, p.StartDate, p.IssueChallenge,
		p.Goal, p.ActionSteps, p.CheckInDate, p.Status).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating support plan: %w", err)
	}
	return id, nil
}

const supportPlanSelect = `
	SELECT sp.id, sp.lead_intern_id, sp.core_intern_id, sp.start_date,
	       sp.issue_challenge, sp.goal, sp.action_steps, sp.check_in_date,
	       sp.status, sp.created_at, sp.updated_at,
	       lead.name AS lead_name, core.name AS core_name
	FROM support_plans sp
	JOIN users lead ON sp.lead_intern_id = lead.id
	JOIN users core ON sp.core_intern_id = core.id`

func scanSupportPlan(row pgx.Row) (*models.SupportPlan, error) {
	p := &models.SupportPlan{}
	err := row.Scan(
		&p.ID, &p.LeadInternID, &p.CoreInternID, &p.StartDate,
		&p.IssueChallenge, &p.Goal, &p.ActionSteps, &p.CheckInDate,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.LeadName, &p.CoreName,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns a single support plan with joined names.
func (r *SupportPlanRepository) GetByID(ctx context.Context, planID int64) (*models.SupportPlan, error) {
	row := r.db.QueryRow(ctx, supportPlanSelect+` WHERE sp.id = $1`, planID)
	p, err := scanSupportPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error getting support plan: %w", err)
	}
	return p, nil
}

// ListByLead returns plans created by one lead, newest first.
func (r *SupportPlanRepository) ListByLead(ctx context.Context, leadID int64) ([]*models.SupportPlan, error) {
	rows, err := r.db.Query(ctx, supportPlanSelect+`
		WHERE sp.lead_intern_id = $1
		ORDER BY sp.created_at DESC`, leadID)
	if err != nil {
		return nil, fmt.Errorf("error listing support plans: %w", err)
	}
	defer rows.Close()
	return collectSupportPlans(rows)
}

// ListByCore returns plans targeting one core intern, newest first.
func (r *SupportPlanRepository) ListByCore(ctx context.Context, coreID int64) ([]*models.SupportPlan, error) {
	rows, err := r.db.Query(ctx, supportPlanSelect+`
		WHERE sp.core_intern_id = $1
		ORDER BY sp.created_at DESC`, coreID)
	if err != nil {
		return nil, fmt.Errorf("error listing support plans: %w", err)
	}
	defer rows.Close()
	return collectSupportPlans(rows)
}

// ListAll returns every plan, newest first.
func (r *SupportPlanRepository) ListAll(ctx context.Context) ([]*models.SupportPlan, error) {
	rows, err := r.db.Query(ctx, supportPlanSelect+` ORDER BY sp.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing support plans: %w", err)
	}
	defer rows.Close()
	return collectSupportPlans(rows)
}

func collectSupportPlans(rows pgx.Rows) ([]*models.SupportPlan, error) {
	var out []*models.SupportPlan
	for rows.Next() {
		p, err := scanSupportPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning support plan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateStatus changes a plan's status and refreshes updated_at.
func (r *SupportPlanRepository) UpdateStatus(ctx context.Context, planID int64, status models.SupportPlanStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE support_plans
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		status, planID)
	if err != nil {
		return fmt.Errorf("error updating support plan status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
