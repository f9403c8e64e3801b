package routes

import (
	"fmt"

	"agrimanager-backend/internal/api/handlers"
	"agrimanager-backend/internal/api/middleware"
	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/config"
	"agrimanager-backend/internal/metrics"
	"agrimanager-backend/internal/repository"
	"agrimanager-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	m := metrics.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	cropRepo := repository.NewCropRepository(db)
	statusRepo := repository.NewCropStatusRepository(db)
	categoryRepo := repository.NewExpenseCategoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)

	// Initialize services
	farmService := service.NewFarmService(farmRepo, validator)
	fieldService := service.NewFieldService(fieldRepo, farmRepo, validator)
	cropService := service.NewCropService(cropRepo, farmRepo, fieldRepo, statusRepo, validator)
	statusService := service.NewCropStatusService(statusRepo, validator)
	categoryService := service.NewExpenseCategoryService(categoryRepo, validator)
	expenseService := service.NewExpenseService(expenseRepo, cropRepo, categoryRepo, validator)
	incomeService := service.NewIncomeService(incomeRepo, cropRepo, validator)

	// Initialize auth services
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, auth.NewCredentialVerifier(userRepo), m)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	farmHandler := handlers.NewFarmHandler(farmService)
	fieldHandler := handlers.NewFieldHandler(fieldService)
	cropHandler := handlers.NewCropHandler(cropService)
	statusHandler := handlers.NewCropStatusHandler(statusService)
	categoryHandler := handlers.NewExpenseCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Login is the only unauthenticated API route
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		farms := protected.Group("/farms")
		{
			farms.POST("", farmHandler.CreateFarm)
			farms.GET("", farmHandler.ListFarms)
			farms.GET("/:id", farmHandler.GetFarm)
			farms.PUT("/:id", farmHandler.UpdateFarm)
			farms.DELETE("/:id", farmHandler.DeleteFarm)
		}

		fields := protected.Group("/fields")
		{
			fields.POST("", fieldHandler.CreateField)
			fields.GET("", fieldHandler.ListFields)
			fields.GET("/:id", fieldHandler.GetField)
			fields.PUT("/:id", fieldHandler.UpdateField)
			fields.DELETE("/:id", fieldHandler.DeleteField)
		}

		crops := protected.Group("/crops")
		{
			crops.POST("", cropHandler.CreateCrop)
			crops.GET("", cropHandler.ListCrops)
			crops.GET("/:id", cropHandler.GetCrop)
			crops.PUT("/:id", cropHandler.UpdateCrop)
			crops.DELETE("/:id", cropHandler.DeleteCrop)
		}

		statuses := protected.Group("/crop-status")
		{
			statuses.POST("", statusHandler.CreateCropStatus)
			statuses.GET("", statusHandler.ListCropStatuses)
			statuses.GET("/dropdown", statusHandler.GetCropStatusDropdown)
			statuses.GET("/:id", statusHandler.GetCropStatus)
			statuses.PUT("/:id", statusHandler.UpdateCropStatus)
			statuses.DELETE("/:id", statusHandler.DeleteCropStatus)
		}

		categories := protected.Group("/expense-categories")
		{
			categories.POST("", categoryHandler.CreateExpenseCategory)
			categories.GET("", categoryHandler.ListExpenseCategories)
			categories.GET("/:id", categoryHandler.GetExpenseCategory)
			categories.PUT("/:id", categoryHandler.UpdateExpenseCategory)
			categories.PUT("/:id/toggle", categoryHandler.ToggleExpenseCategory)
			categories.DELETE("/:id", categoryHandler.DeleteExpenseCategory)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.POST("", expenseHandler.CreateExpense)
			expenses.GET("", expenseHandler.ListExpenses)
			expenses.GET("/export", expenseHandler.ExportExpenses)
			expenses.GET("/:id", expenseHandler.GetExpense)
			expenses.PUT("/:id", expenseHandler.UpdateExpense)
			expenses.DELETE("/:id", expenseHandler.DeleteExpense)
		}

		income := protected.Group("/income")
		{
			income.POST("", incomeHandler.CreateIncome)
			income.GET("", incomeHandler.ListIncome)
			income.GET("/export", incomeHandler.ExportIncome)
			income.GET("/:id", incomeHandler.GetIncome)
			income.PUT("/:id", incomeHandler.UpdateIncome)
			income.DELETE("/:id", incomeHandler.DeleteIncome)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	return router, nil
}
