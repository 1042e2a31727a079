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

const userColumns = "id, name, email, username, school, role, start_date, status, auth_hash, created_at"

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	CreateRequest(ctx context.Context, user *models.User) (int64, error)
	CreateActiveUser(ctx context.Context, user *models.User) (int64, error)
	GetPendingRequests(ctx context.Context) ([]*models.User, error)
	Approve(ctx context.Context, userID int64, username, authHash string) error
	Reject(ctx context.Context, userID int64) error
	SetStatus(ctx context.Context, userID int64, status models.AccountStatus) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.User, error)
	GetActiveInterns(ctx context.Context) ([]*models.User, error)
	GetActiveCoreInterns(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserRepository handles user database operations.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Username, &user.School,
		&user.Role, &user.StartDate, &user.Status, &user.AuthHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRequest inserts a new user row with status Pending Approval and no
// credentials. Returns ErrDuplicateEmail when the email is already taken,
// which also covers an already-pending request for the same address.
func (r *UserRepository) CreateRequest(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, school, role, start_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		user.Name, user.Email, user.School, user.Role, user.StartDate, models.StatusPendingApproval).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("error creating account request: %w", err)
	}
	return id, nil
}

// CreateActiveUser inserts a fully credentialed active user. Used by the seed
// to create the bootstrap admin.
func (r *UserRepository) CreateActiveUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, username, school, role, start_date, status, auth_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Name, user.Email, user.Username, user.School, user.Role,
		user.StartDate, user.Status, user.AuthHash).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrDuplicateEmail
		}
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// GetPendingRequests returns all pending account requests, newest first.
func (r *UserRepository) GetPendingRequests(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE status = $1
		ORDER BY created_at DESC`,
		models.StatusPendingApproval)
	if err != nil {
		return nil, fmt.Errorf("error listing pending requests: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Approve activates a pending request and assigns its credentials. Returns
// ErrDuplicateUsername on a username collision and ErrNotFound when the id
// does not reference a pending request.
func (r *UserRepository) Approve(ctx context.Context, userID int64, username, authHash string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET status = $1, username = $2, auth_hash = $3
		WHERE id = $4 AND status = $5`,
		models.StatusActive, username, authHash, userID, models.StatusPendingApproval)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("error approving account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Reject deletes a request while it is still pending. Returns ErrNotFound if
// the row has already transitioned or does not exist; nothing else changes.
func (r *UserRepository) Reject(ctx context.Context, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM users
		WHERE id = $1 AND status = $2`,
		userID, models.StatusPendingApproval)
	if err != nil {
		return fmt.Errorf("error rejecting account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetStatus flips an account between Active and Inactive. Idempotent.
func (r *UserRepository) SetStatus(ctx context.Context, userID int64, status models.AccountStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET status = $1 WHERE id = $2`,
		status, userID)
	if err != nil {
		return fmt.Errorf("error updating account status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetActiveByUsername retrieves a user by username, constrained to Active
// status. Used by authentication; inactive and pending users never match.
func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1 AND status = $2`,
		username, models.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetActiveInterns returns all active non-admin users ordered by name.
func (r *UserRepository) GetActiveInterns(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE status = $1 AND role != $2
		ORDER BY name`,
		models.StatusActive, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("error listing interns: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetActiveCoreInterns returns all active Core Interns ordered by name.
func (r *UserRepository) GetActiveCoreInterns(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1 AND status = $2
		ORDER BY name`,
		models.RoleCoreIntern, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("error listing core interns: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// EmailExists checks if an email is already registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}
