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

// IWinRepository defines the interface for win database operations
type IWinRepository interface {
	Create(ctx context.Context, w *models.Win) (int64, error)
	GetByID(ctx context.Context, winID int64) (*models.Win, error)
	ListByLead(ctx context.Context, leadID int64) ([]*models.Win, error)
	ListByCore(ctx context.Context, coreID int64) ([]*models.Win, error)
	ListAll(ctx context.Context) ([]*models.Win, error)
	MarkCelebrated(ctx context.Context, winID int64) error
}

// WinRepository handles win database operations.
type WinRepository struct {
	db *pgxpool.Pool
}

// NewWinRepository creates a new WinRepository.
func NewWinRepository(db *pgxpool.Pool) *WinRepository {
	return &WinRepository{db: db}
}

// Create inserts a new win record.
func (r *WinRepository) Create(ctx context.Context, w *models.Win) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO wins (
			lead_intern_id, core_intern_id, win_date, win_description,
			why_matters, celebrated, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		w.LeadInternID, w.CoreInternID, w.WinDate, w.WinDescription,
		w.WhyMatters, w.Celebrated, w.Notes).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating win: %w", err)
	}
	return id, nil
}

const winSelect = `
	SELECT w.id, w.lead_intern_id, w.core_intern_id, w.win_date,
	       w.win_description, w.why_matters, w.celebrated, w.notes, w.created_at,
	       lead.name AS lead_name, core.name AS core_name
	FROM wins w
	JOIN users lead ON w.lead_intern_id = lead.id
	JOIN users core ON w.core_intern_id = core.id`

func scanWin(row pgx.Row) (*models.Win, error) {
	w := &models.Win{}
	err := row.Scan(
		&w.ID, &w.LeadInternID, &w.CoreInternID, &w.WinDate,
		&w.WinDescription, &w.WhyMatters, &w.Celebrated, &w.Notes, &w.CreatedAt,
		&w.LeadName, &w.CoreName,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// GetByID returns a single win with joined names.
func (r *WinRepository) GetByID(ctx context.Context, winID int64) (*models.Win, error) {
	row := r.db.QueryRow(ctx, winSelect+` WHERE w.id = $1`, winID)
	w, err := scanWin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error getting win: %w", err)
	}
	return w, nil
}

// ListByLead returns wins recorded by one lead, newest win dates first.
func (r *WinRepository) ListByLead(ctx context.Context, leadID int64) ([]*models.Win, error) {
	rows, err := r.db.Query(ctx, winSelect+`
		WHERE w.lead_intern_id = $1
		ORDER BY w.win_date DESC, w.id DESC`, leadID)
	if err != nil {
		return nil, fmt.Errorf("error listing wins: %w", err)
	}
	defer rows.Close()
	return collectWins(rows)
}

// ListByCore returns wins recorded about one core intern, newest first.
func (r *WinRepository) ListByCore(ctx context.Context, coreID int64) ([]*models.Win, error) {
	rows, err := r.db.Query(ctx, winSelect+`
		WHERE w.core_intern_id = $1
		ORDER BY w.win_date DESC, w.id DESC`, coreID)
	if err != nil {
		return nil, fmt.Errorf("error listing wins: %w", err)
	}
	defer rows.Close()
	return collectWins(rows)
}

// ListAll returns every win, newest first.
func (r *WinRepository) ListAll(ctx context.Context) ([]*models.Win, error) {
	rows, err := r.db.Query(ctx, winSelect+` ORDER BY w.win_date DESC, w.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing wins: %w", err)
	}
	defer rows.Close()
	return collectWins(rows)
}

func collectWins(rows pgx.Rows) ([]*models.Win, error) {
	var out []*models.Win
	for rows.Next() {
		w, err := scanWin(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning win: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// MarkCelebrated flips the celebrated flag to true. Calling it on an already
// celebrated win is a no-op, not an error.
func (r *WinRepository) MarkCelebrated(ctx context.Context, winID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE wins SET celebrated = TRUE WHERE id = $1`, winID)
	if err != nil {
		return fmt.Errorf("error marking win celebrated: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
