// Package bootstrap wires configuration, storage and the HTTP surface
// together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/clubstride/interntrack/internal/app/controllers"
	appMigrations "github.com/clubstride/interntrack/internal/app/migrations"
	appRepos "github.com/clubstride/interntrack/internal/app/repositories"
	appRoutes "github.com/clubstride/interntrack/internal/app/routes"
	appServices "github.com/clubstride/interntrack/internal/app/services"
	"github.com/clubstride/interntrack/internal/config"
	"github.com/clubstride/interntrack/internal/db"
	appMiddleware "github.com/clubstride/interntrack/internal/middleware"
	pkgAuth "github.com/clubstride/interntrack/internal/pkg/auth"
	"github.com/clubstride/interntrack/internal/pkg/helpers"
	"github.com/clubstride/interntrack/internal/pkg/logger"
	"github.com/clubstride/interntrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	AccountService        *appServices.AccountService
	HourService           *appServices.HourService
	DeliverableService    *appServices.DeliverableService
	MentorshipService     *appServices.MentorshipService
	AuthController        *appControllers.AuthController
	AccountController     *appControllers.AccountController
	HourController        *appControllers.HourController
	DeliverableController *appControllers.DeliverableController
	MentorshipController  *appControllers.MentorshipController
	MetaController        *appControllers.MetaController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	LoginLimiter          *pkgAuth.LoginLimiter
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds bootstrap data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})
	deps.LoginLimiter = pkgAuth.NewLoginLimiter(cfg.Auth.MaxLoginAttempts)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		deps.LoginLimiter,
		lgr,
	)
	deps.AccountService = appServices.NewAccountService(deps.Repos.UserRepository, lgr)
	deps.HourService = appServices.NewHourService(deps.Repos.HourRepository, lgr)
	deps.DeliverableService = appServices.NewDeliverableService(deps.Repos.DeliverableRepository, lgr)
	deps.MentorshipService = appServices.NewMentorshipService(
		deps.Repos.ReviewRepository,
		deps.Repos.SupportPlanRepository,
		deps.Repos.WinRepository,
		deps.Repos.UserRepository,
		deps.Repos.HourRepository,
		deps.Repos.DeliverableRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.AccountService, lgr)
	deps.AccountController = appControllers.NewAccountController(deps.AccountService, lgr)
	deps.HourController = appControllers.NewHourController(deps.HourService, lgr)
	deps.DeliverableController = appControllers.NewDeliverableController(deps.DeliverableService, lgr)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService, lgr)
	deps.MetaController = appControllers.NewMetaController()

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AccountController,
		deps.HourController,
		deps.DeliverableController,
		deps.MentorshipController,
		deps.MetaController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
