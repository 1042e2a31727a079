package services

import (
	"context"
	"time"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They enforce the
// same uniqueness and not-found semantics the SQL layer does.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) add(u *models.User) *models.User {
	f.nextID++
	u.ID = f.nextID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) CreateRequest(ctx context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrDuplicateEmail
		}
	}
	user.Status = models.StatusPendingApproval
	f.add(user)
	return user.ID, nil
}

func (f *fakeUserRepo) CreateActiveUser(ctx context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrDuplicateEmail
		}
	}
	f.add(user)
	return user.ID, nil
}

func (f *fakeUserRepo) GetPendingRequests(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Status == models.StatusPendingApproval {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Approve(ctx context.Context, userID int64, username, authHash string) error {
	for _, u := range f.users {
		if u.Username != nil && *u.Username == username {
			return apperrors.ErrDuplicateUsername
		}
	}
	u, ok := f.users[userID]
	if !ok || u.Status != models.StatusPendingApproval {
		return apperrors.ErrNotFound
	}
	u.Username = &username
	u.AuthHash = &authHash
	u.Status = models.StatusActive
	return nil
}

func (f *fakeUserRepo) Reject(ctx context.Context, userID int64) error {
	u, ok := f.users[userID]
	if !ok || u.Status != models.StatusPendingApproval {
		return apperrors.ErrNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeUserRepo) SetStatus(ctx context.Context, userID int64, status models.AccountStatus) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username != nil && *u.Username == username && u.Status == models.StatusActive {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetActiveInterns(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Status == models.StatusActive && u.Role != models.RoleAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetActiveCoreInterns(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Status == models.StatusActive && u.Role == models.RoleCoreIntern {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*storedToken)}
}

func (f *fakeTokenRepo) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	f.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (f *fakeTokenRepo) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error) {
	st, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if st.revoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	return st.userID, st.expiry, nil
}

func (f *fakeTokenRepo) RevokeToken(ctx context.Context, token string) error {
	st, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	if st.revoked {
		return apperrors.ErrTokenRevoked
	}
	st.revoked = true
	return nil
}

func (f *fakeTokenRepo) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	for _, st := range f.tokens {
		if st.userID == userID {
			st.revoked = true
		}
	}
	return nil
}

func (f *fakeTokenRepo) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	var n int64
	for token, st := range f.tokens {
		if time.Now().After(st.expiry) {
			delete(f.tokens, token)
			n++
		}
	}
	return n, nil
}

type fakeHourRepo struct {
	nextID  int64
	entries map[int64]*models.HourEntry
}

func newFakeHourRepo() *fakeHourRepo {
	return &fakeHourRepo{entries: make(map[int64]*models.HourEntry)}
}

func (f *fakeHourRepo) Create(ctx context.Context, entry *models.HourEntry) (int64, error) {
	f.nextID++
	entry.ID = f.nextID
	entry.CreatedAt = time.Now()
	f.entries[entry.ID] = entry
	return entry.ID, nil
}

func (f *fakeHourRepo) ListByUser(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]*models.HourEntry, error) {
	var out []*models.HourEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if startDate != nil && e.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && e.Date.After(*endDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeHourRepo) ListAll(ctx context.Context) ([]*models.HourEntry, error) {
	var out []*models.HourEntry
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeHourRepo) SetApproval(ctx context.Context, entryID int64, approved bool) error {
	e, ok := f.entries[entryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.Approved = approved
	return nil
}

func (f *fakeHourRepo) Total(ctx context.Context, userID int64, approvedOnly bool) (float64, error) {
	var total float64
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if approvedOnly && !e.Approved {
			continue
		}
		total += e.TotalHours
	}
	return total, nil
}

type fakeDeliverableRepo struct {
	nextID       int64
	deliverables map[int64]*models.Deliverable
}

func newFakeDeliverableRepo() *fakeDeliverableRepo {
	return &fakeDeliverableRepo{deliverables: make(map[int64]*models.Deliverable)}
}

func (f *fakeDeliverableRepo) Create(ctx context.Context, d *models.Deliverable) (int64, error) {
	f.nextID++
	d.ID = f.nextID
	d.Status = models.DeliverablePending
	d.SubmittedAt = time.Now()
	f.deliverables[d.ID] = d
	return d.ID, nil
}

func (f *fakeDeliverableRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Deliverable, error) {
	var out []*models.Deliverable
	for _, d := range f.deliverables {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliverableRepo) ListAll(ctx context.Context) ([]*models.Deliverable, error) {
	var out []*models.Deliverable
	for _, d := range f.deliverables {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDeliverableRepo) ListPending(ctx context.Context) ([]*models.Deliverable, error) {
	var out []*models.Deliverable
	for _, d := range f.deliverables {
		if d.Status == models.DeliverablePending {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliverableRepo) UpdateReview(ctx context.Context, deliverableID int64, status models.DeliverableStatus, adminComments string) error {
	d, ok := f.deliverables[deliverableID]
	if !ok {
		return apperrors.ErrNotFound
	}
	now := time.Now()
	d.Status = status
	d.AdminComments = adminComments
	d.ReviewedAt = &now
	return nil
}

func (f *fakeDeliverableRepo) StatusCounts(ctx context.Context, userID int64) (map[models.DeliverableStatus]int, error) {
	counts := make(map[models.DeliverableStatus]int)
	for _, d := range f.deliverables {
		if d.UserID == userID {
			counts[d.Status]++
		}
	}
	return counts, nil
}

type fakeReviewRepo struct {
	nextID  int64
	reviews map[int64]*models.CoreReview
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*models.CoreReview)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, rev *models.CoreReview) (int64, error) {
	f.nextID++
	rev.ID = f.nextID
	rev.CreatedAt = time.Now()
	f.reviews[rev.ID] = rev
	return rev.ID, nil
}

func (f *fakeReviewRepo) ListByLead(ctx context.Context, leadID int64) ([]*models.CoreReview, error) {
	var out []*models.CoreReview
	for _, r := range f.reviews {
		if r.LeadInternID == leadID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByCore(ctx context.Context, coreID int64) ([]*models.CoreReview, error) {
	var out []*models.CoreReview
	for _, r := range f.reviews {
		if r.CoreInternID == coreID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListAll(ctx context.Context) ([]*models.CoreReview, error) {
	var out []*models.CoreReview
	for _, r := range f.reviews {
		out = append(out, r)
	}
	return out, nil
}

type fakePlanRepo struct {
	nextID int64
	plans  map[int64]*models.SupportPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[int64]*models.SupportPlan)}
}

func (f *fakePlanRepo) Create(ctx context.Context, p *models.SupportPlan) (int64, error) {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.plans[p.ID] = p
	return p.ID, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, planID int64) (*models.SupportPlan, error) {
	p, ok := f.plans[planID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (f *fakePlanRepo) ListByLead(ctx context.Context, leadID int64) ([]*models.SupportPlan, error) {
	var out []*models.SupportPlan
	for _, p := range f.plans {
		if p.LeadInternID == leadID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) ListByCore(ctx context.Context, coreID int64) ([]*models.SupportPlan, error) {
	var out []*models.SupportPlan
	for _, p := range f.plans {
		if p.CoreInternID == coreID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) ListAll(ctx context.Context) ([]*models.SupportPlan, error) {
	var out []*models.SupportPlan
	for _, p := range f.plans {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlanRepo) UpdateStatus(ctx context.Context, planID int64, status models.SupportPlanStatus) error {
	p, ok := f.plans[planID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

type fakeWinRepo struct {
	nextID int64
	wins   map[int64]*models.Win
}

func newFakeWinRepo() *fakeWinRepo {
	return &fakeWinRepo{wins: make(map[int64]*models.Win)}
}

func (f *fakeWinRepo) Create(ctx context.Context, w *models.Win) (int64, error) {
	f.nextID++
	w.ID = f.nextID
	w.CreatedAt = time.Now()
	f.wins[w.ID] = w
	return w.ID, nil
}

func (f *fakeWinRepo) GetByID(ctx context.Context, winID int64) (*models.Win, error) {
	w, ok := f.wins[winID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return w, nil
}

func (f *fakeWinRepo) ListByLead(ctx context.Context, leadID int64) ([]*models.Win, error) {
	var out []*models.Win
	for _, w := range f.wins {
		if w.LeadInternID == leadID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWinRepo) ListByCore(ctx context.Context, coreID int64) ([]*models.Win, error) {
	var out []*models.Win
	for _, w := range f.wins {
		if w.CoreInternID == coreID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWinRepo) ListAll(ctx context.Context) ([]*models.Win, error) {
	var out []*models.Win
	for _, w := range f.wins {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWinRepo) MarkCelebrated(ctx context.Context, winID int64) error {
	w, ok := f.wins[winID]
	if !ok {
		return apperrors.ErrNotFound
	}
	w.Celebrated = true
	return nil
}
