package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
	"github.com/clubstride/interntrack/internal/pkg/dberrors"
)

// IReviewRepository defines the interface for core review database operations
type IReviewRepository interface {
	Create(ctx context.Context, rev *models.CoreReview) (int64, error)
	ListByLead(ctx context.Context, leadID int64) ([]*models.CoreReview, error)
	ListByCore(ctx context.Context, coreID int64) ([]*models.CoreReview, error)
	ListAll(ctx context.Context) ([]*models.CoreReview, error)
}

// ReviewRepository handles core review database operations. Reviews are
// append-only; there is no update or delete path.
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new core review.
func (r *ReviewRepository) Create(ctx context.Context, rev *models.CoreReview) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO core_reviews (
			lead_intern_id, core_intern_id, review_period, review_date,
			overall_vibe, whats_working, growth_areas, needs_support,
			hours_compliance, content_created, meeting_attendance,
			dm_response_rate, proof_uploaded, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		rev.LeadInternID, rev.CoreInternID, rev.ReviewPeriod, rev.ReviewDate,
		rev.OverallVibe, rev.WhatsWorking, rev.GrowthAreas, rev.NeedsSupport,
		rev.HoursCompliance, rev.ContentCreated, rev.MeetingAttendance,
		rev.DMResponseRate, rev.ProofUploaded, rev.Notes).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating core review: %w", err)
	}
	return id, nil
}

func scanCoreReview(rows pgx.Rows) (*models.CoreReview, error) {
	rev := &models.CoreReview{}
	err := rows.Scan(
		&rev.ID, &rev.LeadInternID, &rev.CoreInternID, &rev.ReviewPeriod,
		&rev.ReviewDate, &rev.OverallVibe, &rev.WhatsWorking, &rev.GrowthAreas,
		&rev.NeedsSupport, &rev.HoursCompliance, &rev.ContentCreated,
		&rev.MeetingAttendance, &rev.DMResponseRate, &rev.ProofUploaded,
		&rev.Notes, &rev.CreatedAt, &rev.LeadName, &rev.CoreName, &rev.CoreEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning core review: %w", err)
	}
	return rev, nil
}

const coreReviewSelect = `
	SELECT cr.id, cr.lead_intern_id, cr.core_intern_id, cr.review_period,
	       cr.review_date, cr.overall_vibe, cr.whats_working, cr.growth_areas,
	       cr.needs_support, cr.hours_compliance, cr.content_created,
	       cr.meeting_attendance, cr.dm_response_rate, cr.proof_uploaded,
	       cr.notes, cr.created_at,
	       lead.name AS lead_name, core.name AS core_name, core.email AS core_email
	FROM core_reviews cr
	JOIN users lead ON cr.lead_intern_id = lead.id
	JOIN users core ON cr.core_intern_id = core.id`

// ListByLead returns the reviews written by one lead, newest first.
func (r *ReviewRepository) ListByLead(ctx context.Context, leadID int64) ([]*models.CoreReview, error) {
	rows, err := r.db.Query(ctx, coreReviewSelect+`
		WHERE cr.lead_intern_id = $1
		ORDER BY cr.review_date DESC, cr.id DESC`, leadID)
	if err != nil {
		return nil, fmt.Errorf("error listing core reviews: %w", err)
	}
	defer rows.Close()
	return collectCoreReviews(rows)
}

// ListByCore returns the reviews written about one core intern, newest first.
func (r *ReviewRepository) ListByCore(ctx context.Context, coreID int64) ([]*models.CoreReview, error) {
	rows, err := r.db.Query(ctx, coreReviewSelect+`
		WHERE cr.core_intern_id = $1
		ORDER BY cr.review_date DESC, cr.id DESC`, coreID)
	if err != nil {
		return nil, fmt.Errorf("error listing core reviews: %w", err)
	}
	defer rows.Close()
	return collectCoreReviews(rows)
}

// ListAll returns every review, newest first.
func (r *ReviewRepository) ListAll(ctx context.Context) ([]*models.CoreReview, error) {
	rows, err := r.db.Query(ctx, coreReviewSelect+`
		ORDER BY cr.review_date DESC, cr.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing core reviews: %w", err)
	}
	defer rows.Close()
	return collectCoreReviews(rows)
}

func collectCoreReviews(rows pgx.Rows) ([]*models.CoreReview, error) {
	var out []*models.CoreReview
	for rows.Next() {
		rev, err := scanCoreReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
