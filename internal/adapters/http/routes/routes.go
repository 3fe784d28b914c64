package routes

import (
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/http/handlers"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/http/middleware"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	resetTokenRepo := repositories.NewResetTokenRepository(db)
	sequenceRepo := repositories.NewSequenceRepository(db)

	claimRepo := repositories.NewClaimRepository(db)
	cardRepo := repositories.NewCardRepository(db)

	eventRepo := repositories.NewEventRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	sectionRepo := repositories.NewContentSectionRepository(db)
	menuRepo := repositories.NewMenuItemRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	feeRepo := repositories.NewFeeStructureRepository(db)

	// Initialize services
	notifyService := services.NewNotificationService(cfg)
	authService := services.NewAuthService(userRepo, memberRepo, studentRepo, refreshTokenRepo, resetTokenRepo, notifyService, cfg)
	registrationService := services.NewRegistrationService(memberRepo, studentRepo, volunteerRepo, feeRepo, sequenceRepo, authService, notifyService)
	claimService := services.NewClaimService(claimRepo, memberRepo, studentRepo, notifyService)
	cardService := services.NewCardService(cardRepo, memberRepo, studentRepo, sequenceRepo)
	accountService := services.NewAccountService(memberRepo, studentRepo, volunteerRepo)
	contentService := services.NewContentService(eventRepo, newsRepo, sectionRepo, menuRepo, settingRepo, feeRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, cfg)
	claimHandler := handlers.NewClaimHandler(claimService)
	cardHandler := handlers.NewCardHandler(cardService)
	accountHandler := handlers.NewAccountHandler(accountService)
	contentHandler := handlers.NewContentHandler(contentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	setupAuthRoutes(apiV1.Group("/auth"), authHandler, cfg)
	setupPublicRoutes(apiV1, registrationHandler, claimHandler, contentHandler, cfg)
	setupMemberRoutes(apiV1.Group("/members/me"), cardHandler, dashboardHandler, cfg)
	setupStudentRoutes(apiV1.Group("/students/me"), cardHandler, dashboardHandler, cfg)

	// Admin back office
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	adminRoutes.Use(middleware.NoCacheHeaders())
	setupAdminRoutes(adminRoutes, claimHandler, cardHandler, accountHandler, contentHandler, dashboardHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/:kind/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/:kind/forgot-password", middleware.StrictRateLimiter(), handler.ForgotPassword)
	router.Post("/reset-password", middleware.StrictRateLimiter(), handler.ResetPassword)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
	router.Post("/change-password", middleware.AuthMiddleware(cfg), handler.ChangePassword)
}

// setupPublicRoutes configures the public site routes
func setupPublicRoutes(
	router fiber.Router,
	registrationHandler *handlers.RegistrationHandler,
	claimHandler *handlers.ClaimHandler,
	contentHandler *handlers.ContentHandler,
	cfg *config.Config,
) {
	// Signup & intake
	router.Post("/members/register", middleware.AuthRateLimiter(), registrationHandler.RegisterMember)
	router.Post("/students/register", middleware.AuthRateLimiter(), registrationHandler.RegisterStudent)
	router.Post("/volunteers/apply", middleware.AuthRateLimiter(), registrationHandler.ApplyVolunteer)

	// Payment claims: anyone can submit; a logged-in member or student is
	// linked to the claim automatically
	router.Post("/claims", middleware.StrictRateLimiter(), middleware.OptionalAuth(cfg), claimHandler.Create)

	// Site content (cached)
	content := router.Group("", middleware.PublicContentCache())
	content.Get("/events", contentHandler.ListEvents)
	content.Get("/events/:id", contentHandler.GetEvent)
	content.Get("/news", contentHandler.ListNews)
	content.Get("/news/:id", contentHandler.GetNews)
	content.Get("/sections/:slug", contentHandler.GetSection)
	content.Get("/menu", contentHandler.GetMenu)
	content.Get("/settings", contentHandler.GetPublicSettings)
	content.Get("/fees", contentHandler.ListFees)
}

// setupMemberRoutes configures the logged-in member's routes
func setupMemberRoutes(router fiber.Router, cardHandler *handlers.CardHandler, dashboardHandler *handlers.DashboardHandler, cfg *config.Config) {
	router.Use(middleware.AuthMiddleware(cfg))
	router.Use(middleware.MemberOnly())
	router.Use(middleware.NoCacheHeaders())

	router.Get("/dashboard", dashboardHandler.MemberDashboard)
	router.Get("/card", cardHandler.GetMyMemberCard)
}

// setupStudentRoutes configures the logged-in student's routes
func setupStudentRoutes(router fiber.Router, cardHandler *handlers.CardHandler, dashboardHandler *handlers.DashboardHandler, cfg *config.Config) {
	router.Use(middleware.AuthMiddleware(cfg))
	router.Use(middleware.StudentOnly())
	router.Use(middleware.NoCacheHeaders())

	router.Get("/dashboard", dashboardHandler.StudentDashboard)
	router.Get("/admit-card", cardHandler.GetMyAdmitCard)
}

// setupAdminRoutes configures the admin back office routes
func setupAdminRoutes(
	router fiber.Router,
	claimHandler *handlers.ClaimHandler,
	cardHandler *handlers.CardHandler,
	accountHandler *handlers.AccountHandler,
	contentHandler *handlers.ContentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Dashboard
	router.Get("/dashboard", dashboardHandler.AdminDashboard)

	// Claim triage
	router.Get("/claims", claimHandler.List)
	router.Get("/claims/:id", claimHandler.GetByID)
	router.Post("/claims/:id/approve", claimHandler.Approve)
	router.Post("/claims/:id/reject", claimHandler.Reject)

	// Members
	router.Get("/members", accountHandler.ListMembers)
	router.Get("/members/:id", accountHandler.GetMember)
	router.Post("/members/:id/verify", accountHandler.VerifyMember)
	router.Patch("/members/:id/active", accountHandler.SetMemberActive)
	router.Post("/members/:id/card", cardHandler.GenerateMemberCard)
	router.Delete("/members/:id", accountHandler.DeleteMember)

	// Students
	router.Get("/students", accountHandler.ListStudents)
	router.Get("/students/:id", accountHandler.GetStudent)
	router.Post("/students/:id/verify", accountHandler.VerifyStudent)
	router.Patch("/students/:id/active", accountHandler.SetStudentActive)
	router.Post("/students/:id/admit-card", cardHandler.GenerateAdmitCard)
	router.Delete("/students/:id", accountHandler.DeleteStudent)

	// Volunteers
	router.Get("/volunteers", accountHandler.ListVolunteers)
	router.Post("/volunteers/:id/approve", accountHandler.ApproveVolunteer)
	router.Delete("/volunteers/:id", accountHandler.DeleteVolunteer)

	// Events
	router.Get("/events", contentHandler.ListAllEvents)
	router.Post("/events", contentHandler.CreateEvent)
	router.Put("/events/:id", contentHandler.UpdateEvent)
	router.Delete("/events/:id", contentHandler.DeleteEvent)

	// News
	router.Get("/news", contentHandler.ListAllNews)
	router.Post("/news", contentHandler.CreateNews)
	router.Put("/news/:id", contentHandler.UpdateNews)
	router.Delete("/news/:id", contentHandler.DeleteNews)

	// Content sections
	router.Get("/sections", contentHandler.ListSections)
	router.Post("/sections", contentHandler.CreateSection)
	router.Put("/sections/:slug", contentHandler.UpdateSection)

	// Menu
	router.Get("/menu", contentHandler.ListAllMenuItems)
	router.Post("/menu", contentHandler.CreateMenuItem)
	router.Put("/menu/:id", contentHandler.UpdateMenuItem)
	router.Delete("/menu/:id", contentHandler.DeleteMenuItem)

	// Settings
	router.Get("/settings", contentHandler.ListSettings)
	router.Put("/settings", contentHandler.SetSetting)

	// Fee structure
	router.Get("/fees", contentHandler.ListAllFees)
	router.Put("/fees", contentHandler.UpsertFee)
}
