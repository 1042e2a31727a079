package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// IDeliverableRepository defines the interface for deliverable database operations
type IDeliverableRepository interface {
	Create(ctx context.Context, d *models.Deliverable) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Deliverable, error)
	ListAll(ctx context.Context) ([]*models.Deliverable, error)
	ListPending(ctx context.Context) ([]*models.Deliverable, error)
	UpdateReview(ctx context.Context, deliverableID int64, status models.DeliverableStatus, adminComments string) error
	StatusCounts(ctx context.Context, userID int64) (map[models.DeliverableStatus]int, error)
}

// DeliverableRepository handles deliverable database operations.
type DeliverableRepository struct {
	db *pgxpool.Pool
}

// NewDeliverableRepository creates a new DeliverableRepository.
func NewDeliverableRepository(db *pgxpool.Pool) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

// Create inserts a new deliverable with status Pending.
func (r *DeliverableRepository) Create(ctx context.Context, d *models.Deliverable) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO deliverables (user_id, type, description, links, proof_links)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		d.UserID, d.Type, d.Description, d.Links, d.ProofLinks).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error submitting deliverable: %w", err)
	}
	return id, nil
}

func scanDeliverable(rows pgx.Rows, withUser bool) (*models.Deliverable, error) {
	d := &models.Deliverable{}
	dest := []any{
		&d.ID, &d.UserID, &d.Type, &d.Description, &d.Links, &d.ProofLinks,
		&d.Status, &d.AdminComments, &d.SubmittedAt, &d.ReviewedAt,
	}
	if withUser {
		dest = append(dest, &d.UserName, &d.UserEmail)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("error scanning deliverable: %w", err)
	}
	return d, nil
}

// ListByUser returns a user's deliverables, newest submissions first.
func (r *DeliverableRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Deliverable, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, description, links, proof_links,
		       status, admin_comments, submitted_at, reviewed_at
		FROM deliverables
		WHERE user_id = $1
		ORDER BY submitted_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing deliverables: %w", err)
	}
	defer rows.Close()

	var out []*models.Deliverable
	for rows.Next() {
		d, err := scanDeliverable(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListAll returns every deliverable joined with user name and email.
func (r *DeliverableRepository) ListAll(ctx context.Context) ([]*models.Deliverable, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.user_id, d.type, d.description, d.links, d.proof_links,
		       d.status, d.admin_comments, d.submitted_at, d.reviewed_at,
		       u.name AS user_name, u.email AS user_email
		FROM deliverables d
		JOIN users u ON d.user_id = u.id
		ORDER BY d.submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing deliverables: %w", err)
	}
	defer rows.Close()

	var out []*models.Deliverable
	for rows.Next() {
		d, err := scanDeliverable(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListPending returns deliverables awaiting review, oldest submissions first
// so the review queue is fair.
func (r *DeliverableRepository) ListPending(ctx context.Context) ([]*models.Deliverable, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.user_id, d.type, d.description, d.links, d.proof_links,
		       d.status, d.admin_comments, d.submitted_at, d.reviewed_at,
		       u.name AS user_name, u.email AS user_email
		FROM deliverables d
		JOIN users u ON d.user_id = u.id
		WHERE d.status = $1
		ORDER BY d.submitted_at ASC`,
		models.DeliverablePending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending deliverables: %w", err)
	}
	defer rows.Close()

	var out []*models.Deliverable
	for rows.Next() {
		d, err := scanDeliverable(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateReview sets the review outcome and stamps reviewed_at.
func (r *DeliverableRepository) UpdateReview(ctx context.Context, deliverableID int64, status models.DeliverableStatus, adminComments string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE deliverables
		SET status = $1, admin_comments = $2, reviewed_at = CURRENT_TIMESTAMP
		WHERE id = $3`,
		status, adminComments, deliverableID)
	if err != nil {
		return fmt.Errorf("error updating deliverable review: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// StatusCounts returns per-status deliverable counts for a user.
func (r *DeliverableRepository) StatusCounts(ctx context.Context, userID int64) (map[models.DeliverableStatus]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM deliverables
		WHERE user_id = $1
		GROUP BY status`, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting deliverables: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.DeliverableStatus]int)
	for rows.Next() {
		var status models.DeliverableStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning deliverable counts: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
