package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// IHourRepository defines the interface for hour entry database operations
type IHourRepository interface {
	Create(ctx context.Context, entry *models.HourEntry) (int64, error)
	ListByUser(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]*models.HourEntry, error)
	ListAll(ctx context.Context) ([]*models.HourEntry, error)
	SetApproval(ctx context.Context, entryID int64, approved bool) error
	Total(ctx context.Context, userID int64, approvedOnly bool) (float64, error)
}

// HourRepository handles hour entry database operations.
type HourRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHourRepository creates a new HourRepository.
func NewHourRepository(db *pgxpool.Pool) *HourRepository {
	return &HourRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new hour entry. Entries are immutable after creation
// except for the approval flag.
func (r *HourRepository) Create(ctx context.Context, entry *models.HourEntry) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO hours (user_id, date, start_time, end_time, total_hours, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		entry.UserID, entry.Date, entry.StartTime, entry.EndTime,
		entry.TotalHours, entry.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error logging hours: %w", err)
	}
	return id, nil
}

func scanHourEntry(rows pgx.Rows, withUser bool) (*models.HourEntry, error) {
	entry := &models.HourEntry{}
	dest := []any{
		&entry.ID, &entry.UserID, &entry.Date, &entry.StartTime, &entry.EndTime,
		&entry.TotalHours, &entry.Description, &entry.Approved, &entry.CreatedAt,
	}
	if withUser {
		dest = append(dest, &entry.UserName, &entry.UserEmail)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("error scanning hour entry: %w", err)
	}
	return entry, nil
}

// ListByUser returns a user's entries, optionally bounded by dates, newest
// first.
func (r *HourRepository) ListByUser(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]*models.HourEntry, error) {
	query := r.sb.Select("id", "user_id", "date", "start_time", "end_time",
		"total_hours", "description", "approved", "created_at").
		From("hours").
		Where(squirrel.Eq{"user_id": userID})

	if startDate != nil {
		query = query.Where(squirrel.GtOrEq{"date": *startDate})
	}
	if endDate != nil {
		query = query.Where(squirrel.LtOrEq{"date": *endDate})
	}
	query = query.OrderBy("date DESC", "start_time DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build hours query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing hours: %w", err)
	}
	defer rows.Close()

	var entries []*models.HourEntry
	for rows.Next() {
		entry, err := scanHourEntry(rows, false)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListAll returns every entry joined with the owning user's name and email.
func (r *HourRepository) ListAll(ctx context.Context) ([]*models.HourEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT h.id, h.user_id, h.date, h.start_time, h.end_time,
		       h.total_hours, h.description, h.approved, h.created_at,
		       u.name AS user_name, u.email AS user_email
		FROM hours h
		JOIN users u ON h.user_id = u.id
		ORDER BY h.date DESC, h.start_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing hours: %w", err)
	}
	defer rows.Close()

	var entries []*models.HourEntry
	for rows.Next() {
		entry, err := scanHourEntry(rows, true)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SetApproval flips the approval flag on an entry.
func (r *HourRepository) SetApproval(ctx context.Context, entryID int64, approved bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE hours SET approved = $1 WHERE id = $2`, approved, entryID)
	if err != nil {
		return fmt.Errorf("error updating hour approval: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Total returns the summed hours for a user, optionally counting only
// approved entries. Zero when the user has no matching entries.
func (r *HourRepository) Total(ctx context.Context, userID int64, approvedOnly bool) (float64, error) {
	query := r.sb.Select("COALESCE(SUM(total_hours), 0)").
		From("hours").
		Where(squirrel.Eq{"user_id": userID})
	if approvedOnly {
		query = query.Where(squirrel.Eq{"approved": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build total hours query: %w", err)
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error totaling hours: %w", err)
	}
	return total, nil
}
