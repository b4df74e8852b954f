package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/auth"
	"github.com/tekser/repair-tracker/internal/config"
	"github.com/tekser/repair-tracker/internal/handlers"
	infraRepo "github.com/tekser/repair-tracker/internal/infra/repository"
	"github.com/tekser/repair-tracker/internal/middleware"
	ucRecord "github.com/tekser/repair-tracker/internal/usecase/servicerecord"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, tokens *auth.TokenService) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	recordRepo := infraRepo.NewServiceRecordGormRepository(db)

	// ======================================================
	// USE CASES — SERVICE RECORDS
	// ======================================================
	createRecordUC := ucRecord.NewCreateServiceRecord(recordRepo)
	updateRecordUC := ucRecord.NewUpdateServiceRecord(recordRepo)
	deleteRecordUC := ucRecord.NewDeleteServiceRecord(recordRepo)
	getRecordUC := ucRecord.NewGetServiceRecord(recordRepo)
	listRecordsUC := ucRecord.NewListServiceRecords(recordRepo)
	recordLogsUC := ucRecord.NewListRecordLogs(recordRepo)
	dashboardStatsUC := ucRecord.NewGetDashboardStats(recordRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)

	customerHandler := handlers.NewCustomerHandler(db)
	brandHandler := handlers.NewBrandHandler(db)
	serviceCompanyHandler := handlers.NewServiceCompanyHandler(db)

	recordHandler := handlers.NewServiceRecordHandler(
		createRecordUC,
		updateRecordUC,
		deleteRecordUC,
		getRecordUC,
		listRecordsUC,
		recordLogsUC,
		dashboardStatsUC,
	)

	notificationHandler := handlers.NewNotificationHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/token/refresh", authHandler.Refresh)

		// ------------------------------
		// PROTECTED API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/users", userHandler.List)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PATCH("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			// ------------------------------
			// BRANDS
			// ------------------------------
			secured.GET("/brands", brandHandler.List)
			secured.POST("/brands", brandHandler.Create)
			secured.GET("/brands/:id", brandHandler.Get)
			secured.PATCH("/brands/:id", brandHandler.Update)
			secured.DELETE("/brands/:id", brandHandler.Delete)

			// ------------------------------
			// SERVICE COMPANIES
			// ------------------------------
			secured.GET("/service-companies", serviceCompanyHandler.List)
			secured.POST("/service-companies", serviceCompanyHandler.Create)
			secured.GET("/service-companies/:id", serviceCompanyHandler.Get)
			secured.PATCH("/service-companies/:id", serviceCompanyHandler.Update)
			secured.DELETE("/service-companies/:id", serviceCompanyHandler.Delete)

			// ------------------------------
			// SERVICE RECORDS
			// ------------------------------
			secured.GET("/services", recordHandler.List)
			secured.POST("/services", recordHandler.Create)
			secured.GET("/services/dashboard-stats", recordHandler.DashboardStats)
			secured.GET("/services/:id", recordHandler.Get)
			secured.PUT("/services/:id", recordHandler.Update)
			secured.PATCH("/services/:id", recordHandler.Update)
			secured.DELETE("/services/:id", recordHandler.Delete)
			secured.GET("/services/:id/logs", recordHandler.Logs)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		}
	}
}
