package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/clubstride/interntrack/internal/app/controllers"
	"github.com/clubstride/interntrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	hourController *controllers.HourController,
	deliverableController *controllers.DeliverableController,
	mentorshipController *controllers.MentorshipController,
	metaController *controllers.MetaController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	v1.GET("/meta", metaController.GetMeta)

	// --- Authenticated routes ---
	// Role checks live in the services against the session; the middleware
	// only establishes identity.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)

		accounts := authenticated.Group("/accounts")
		{
			accounts.GET("", accountController.ListActive)
			accounts.GET("/pending", accountController.ListPending)
			accounts.POST("/:id/approve", accountController.Approve)
			accounts.POST("/:id/reject", accountController.Reject)
			accounts.PUT("/:id/status", accountController.SetStatus)
		}

		hours := authenticated.Group("/hours")
		{
			hours.POST("", hourController.Log)
			hours.GET("", hourController.List)
			hours.GET("/total", hourController.Total)
			hours.PUT("/:id/approval", hourController.SetApproval)
		}

		deliverables := authenticated.Group("/deliverables")
		{
			deliverables.POST("", deliverableController.Submit)
			deliverables.GET("", deliverableController.List)
			deliverables.PUT("/:id/review", deliverableController.Review)
		}

		mentorship := authenticated.Group("/mentorship")
		{
			mentorship.GET("/core-interns", mentorshipController.ListCoreInterns)
			mentorship.POST("/reviews", mentorshipController.SubmitReview)
			mentorship.GET("/reviews", mentorshipController.ListReviews)
			mentorship.POST("/support-plans", mentorshipController.CreateSupportPlan)
			mentorship.GET("/support-plans", mentorshipController.ListSupportPlans)
			mentorship.PUT("/support-plans/:id/status", mentorshipController.UpdateSupportPlanStatus)
			mentorship.POST("/wins", mentorshipController.AddWin)
			mentorship.GET("/wins", mentorshipController.ListWins)
			mentorship.PUT("/wins/:id/celebrate", mentorshipController.CelebrateWin)
			mentorship.GET("/report", mentorshipController.Report)
		}
	}
}
