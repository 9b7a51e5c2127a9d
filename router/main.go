package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/database"
	"github.com/greenvalley-school/school-cms-api/handlers"
	achiever_handlers "github.com/greenvalley-school/school-cms-api/handlers/achiever"
	admin_handlers "github.com/greenvalley-school/school-cms-api/handlers/admin"
	auth_handlers "github.com/greenvalley-school/school-cms-api/handlers/auth"
	banner_handlers "github.com/greenvalley-school/school-cms-api/handlers/banner"
	enquiry_handlers "github.com/greenvalley-school/school-cms-api/handlers/enquiry"
	faculty_handlers "github.com/greenvalley-school/school-cms-api/handlers/faculty"
	notice_handlers "github.com/greenvalley-school/school-cms-api/handlers/notice"
	popup_handlers "github.com/greenvalley-school/school-cms-api/handlers/popup"
	upload_handlers "github.com/greenvalley-school/school-cms-api/handlers/upload"
	"github.com/greenvalley-school/school-cms-api/services"
	"github.com/greenvalley-school/school-cms-api/services/spaces"
	"github.com/greenvalley-school/school-cms-api/utils"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
	"github.com/greenvalley-school/school-cms-api/utils/cache"
	"github.com/greenvalley-school/school-cms-api/utils/middleware"
	"github.com/greenvalley-school/school-cms-api/utils/popup"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, stats *database.PostgreSQLStore, assets *spaces.Client, redisCache *cache.RedisCache) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "school-cms-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: auth_handlers.SessionExpiry,
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Popup flags live in Redis so sessions survive restarts; fall back to
	// the in-memory store when Redis is unavailable.
	var flagStore popup.FlagStore
	if redisCache != nil {
		flagStore = popup.NewRedisFlagStore(redisCache)
	} else {
		log.Println("Warning: Redis unavailable, popup session flags held in memory")
		flagStore = popup.NewMemoryFlagStore()
	}
	sequencer := popup.NewSequencer(flagStore)

	// Initialize auth middleware with DB for blacklist checking
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	noticeHandler := notice_handlers.NewNoticeHandler(db, assets)
	bannerHandler := banner_handlers.NewBannerHandler(db, assets)
	facultyHandler := faculty_handlers.NewFacultyHandler(db, assets)
	achieverHandler := achiever_handlers.NewAchieverHandler(db, assets)
	mailer := services.NewEmailService()
	enquiryHandler := enquiry_handlers.NewEnquiryHandler(db, mailer)
	uploadHandler := upload_handlers.NewUploadHandler(assets)
	popupHandler := popup_handlers.NewPopupHandler(db, sequencer)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Creating admin accounts requires an existing admin session
	authGroup.Post("/register", authMiddleware.RequireAdmin(), authHandler.Register)
	authGroup.Post("/logout", authMiddleware.RequireAdmin(), authHandler.Logout)
	authGroup.Get("/profile", authMiddleware.RequireAdmin(), authHandler.GetProfile)

	// Notices
	notices := api.Group("/notices")
	notices.Get("/", noticeHandler.ListNotices)         // Public: List all notices
	notices.Get("/latest", noticeHandler.GetLatestNotice) // Public: Latest notice (popup)
	notices.Get("/:id", noticeHandler.GetNotice)        // Public: Get notice by ID
	notices.Post("/", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "notice_create", "notices"), noticeHandler.CreateNotice)
	notices.Put("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "notice_update", "notices"), noticeHandler.UpdateNotice)
	notices.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "notice_delete", "notices"), noticeHandler.DeleteNotice)

	// Banners
	banners := api.Group("/banners")
	banners.Get("/", bannerHandler.ListBanners)         // Public: List banners
	banners.Get("/active", bannerHandler.GetActiveBanner) // Public: Active banner (popup)
	banners.Get("/:id", bannerHandler.GetBanner)        // Public: Get banner by ID
	banners.Post("/", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "banner_create", "banners"), bannerHandler.CreateBanner)
	banners.Put("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "banner_update", "banners"), bannerHandler.UpdateBanner)
	banners.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "banner_delete", "banners"), bannerHandler.DeleteBanner)

	// Faculty
	faculty := api.Group("/faculty")
	faculty.Get("/", facultyHandler.ListFaculty)   // Public: List faculty members
	faculty.Get("/:id", facultyHandler.GetFaculty) // Public: Get faculty member by ID
	faculty.Post("/", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "faculty_create", "faculty"), facultyHandler.CreateFaculty)
	faculty.Put("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "faculty_update", "faculty"), facultyHandler.UpdateFaculty)
	faculty.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "faculty_delete", "faculty"), facultyHandler.DeleteFaculty)

	// Student achievers
	achievers := api.Group("/achievers")
	achievers.Get("/", achieverHandler.ListAchievers)   // Public: List student achievers
	achievers.Get("/:id", achieverHandler.GetAchiever)  // Public: Get achiever by ID
	achievers.Post("/", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "achiever_create", "student_achievers"), achieverHandler.CreateAchiever)
	achievers.Put("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "achiever_update", "student_achievers"), achieverHandler.UpdateAchiever)
	achievers.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "achiever_delete", "student_achievers"), achieverHandler.DeleteAchiever)

	// Enquiries: public submission, admin triage. No updates.
	enquiries := api.Group("/enquiries")

	campusVisits := enquiries.Group("/campus-visits")
	campusVisits.Post("/", enquiryHandler.CreateCampusVisit) // Public: Submit campus visit enquiry
	campusVisits.Get("/", authMiddleware.RequireAdmin(), enquiryHandler.ListCampusVisits)
	campusVisits.Get("/:id", authMiddleware.RequireAdmin(), enquiryHandler.GetCampusVisit)
	campusVisits.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "enquiry_delete", "campus_visit_enquiries"), enquiryHandler.DeleteCampusVisit)

	admissions := enquiries.Group("/admissions")
	admissions.Post("/", enquiryHandler.CreateAdmission) // Public: Submit admission enquiry
	admissions.Get("/", authMiddleware.RequireAdmin(), enquiryHandler.ListAdmissions)
	admissions.Get("/:id", authMiddleware.RequireAdmin(), enquiryHandler.GetAdmission)
	admissions.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "enquiry_delete", "admission_enquiries"), enquiryHandler.DeleteAdmission)

	fees := enquiries.Group("/fees")
	fees.Post("/", enquiryHandler.CreateFees) // Public: Submit fee structure enquiry
	fees.Get("/", authMiddleware.RequireAdmin(), enquiryHandler.ListFees)
	fees.Get("/:id", authMiddleware.RequireAdmin(), enquiryHandler.GetFees)
	fees.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "enquiry_delete", "fees_enquiries"), enquiryHandler.DeleteFees)

	contacts := enquiries.Group("/contacts")
	contacts.Post("/", enquiryHandler.CreateContact) // Public: Submit contact enquiry
	contacts.Get("/", authMiddleware.RequireAdmin(), enquiryHandler.ListContacts)
	contacts.Get("/:id", authMiddleware.RequireAdmin(), enquiryHandler.GetContact)
	contacts.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AdminAuditLog(db, "enquiry_delete", "contact_enquiries"), enquiryHandler.DeleteContact)

	// Uploads (admin only)
	uploads := api.Group("/uploads", authMiddleware.RequireAdmin())
	uploads.Post("/image", uploadHandler.UploadImage)
	uploads.Post("/pdf", uploadHandler.UploadPDF)

	// Popup sequencing (public, anonymous session cookie)
	popupGroup := api.Group("/popup")
	popupGroup.Get("/next", popupHandler.Next)
	popupGroup.Post("/dismiss", popupHandler.Dismiss)

	// Admin panel
	admin := api.Group("/admin", authMiddleware.RequireAdmin())
	admin.Get("/dashboard", func(c *fiber.Ctx) error { return admin_handlers.GetDashboard(c, store, stats) })
	admin.Get("/dashboard/enquiry-trends", func(c *fiber.Ctx) error { return admin_handlers.GetEnquiryTrends(c, stats) })
	admin.Get("/audit-logs", func(c *fiber.Ctx) error { return admin_handlers.ListAuditLogs(c, store) })
	admin.Get("/audit-logs/:id", func(c *fiber.Ctx) error { return admin_handlers.GetAuditLog(c, store) })
}
