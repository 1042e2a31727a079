package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	HourRepository        *HourRepository
	DeliverableRepository *DeliverableRepository
	ReviewRepository      *ReviewRepository
	SupportPlanRepository *SupportPlanRepository
	WinRepository         *WinRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		HourRepository:        NewHourRepository(db),
		DeliverableRepository: NewDeliverableRepository(db),
		ReviewRepository:      NewReviewRepository(db),
		SupportPlanRepository: NewSupportPlanRepository(db),
		WinRepository:         NewWinRepository(db),
	}
}
