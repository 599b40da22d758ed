package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"village-admin-service/internal/app/controllers"
	"village-admin-service/internal/app/middleware"
	"village-admin-service/internal/domain/services/container"
	"village-admin-service/internal/infrastructure/config"
)

// SetupRouter builds the gin engine with middleware, the service container
// and every route group
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.EnvType == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(middleware.RateLimiter())

	serviceContainer := container.NewServiceContainer(db, cfg)

	r.GET("/ping", controllers.HandleHealthFunc(serviceContainer, "ping"))
	r.GET("/health", controllers.HandleHealthFunc(serviceContainer, "health"))

	api := r.Group("/api")
	registerResidentRoutes(api, serviceContainer)
	registerFinanceRoutes(api, serviceContainer)
	registerBudgetRoutes(api, serviceContainer)
	registerEventRoutes(api, serviceContainer)
	registerAssetRoutes(api, serviceContainer)
	registerPublicServiceRoutes(api, serviceContainer)

	return r
}

func registerResidentRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	residents := api.Group("/residents")
	{
		residents.GET("", controllers.HandleResidentFunc(c, "getResidents"))
		residents.GET("/:id", controllers.HandleResidentFunc(c, "getResident"))
		residents.POST("", controllers.HandleResidentFunc(c, "createResident"))
		residents.PUT("/:id", controllers.HandleResidentFunc(c, "updateResident"))
		residents.DELETE("/:id", controllers.HandleResidentFunc(c, "deleteResident"))
	}
}

func registerFinanceRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	finances := api.Group("/finances")
	{
		finances.GET("", controllers.HandleFinanceFunc(c, "getTransactions"))
		finances.GET("/summary", controllers.HandleFinanceFunc(c, "getSummary"))
		finances.GET("/:id", controllers.HandleFinanceFunc(c, "getTransaction"))
		finances.POST("", controllers.HandleFinanceFunc(c, "createTransaction"))
		finances.PUT("/:id", controllers.HandleFinanceFunc(c, "updateTransaction"))
		finances.DELETE("/:id", controllers.HandleFinanceFunc(c, "deleteTransaction"))
	}
}

func registerBudgetRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	budgets := api.Group("/budgets")
	{
		budgets.GET("", controllers.HandleBudgetFunc(c, "getBudgets"))
		budgets.GET("/year/:year", controllers.HandleBudgetFunc(c, "getBudgetsByYear"))
		budgets.GET("/:id", controllers.HandleBudgetFunc(c, "getBudget"))
		budgets.POST("", controllers.HandleBudgetFunc(c, "createBudget"))
		budgets.PUT("/:id", controllers.HandleBudgetFunc(c, "updateBudget"))
		budgets.DELETE("/:id", controllers.HandleBudgetFunc(c, "deleteBudget"))
	}
}

func registerEventRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	events := api.Group("/events")
	{
		events.GET("", controllers.HandleEventFunc(c, "getEvents"))
		events.GET("/upcoming", controllers.HandleEventFunc(c, "getUpcomingEvents"))
		events.GET("/:id", controllers.HandleEventFunc(c, "getEvent"))
		events.POST("", controllers.HandleEventFunc(c, "createEvent"))
		events.PUT("/:id", controllers.HandleEventFunc(c, "updateEvent"))
		events.DELETE("/:id", controllers.HandleEventFunc(c, "deleteEvent"))
	}
}

func registerAssetRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	assets := api.Group("/assets")
	{
		assets.GET("", controllers.HandleAssetFunc(c, "getAssets"))
		assets.GET("/summary", controllers.HandleAssetFunc(c, "getSummary"))
		assets.GET("/category/:category", controllers.HandleAssetFunc(c, "getAssetsByCategory"))
		assets.GET("/:id", controllers.HandleAssetFunc(c, "getAsset"))
		assets.POST("", controllers.HandleAssetFunc(c, "createAsset"))
		assets.PUT("/:id", controllers.HandleAssetFunc(c, "updateAsset"))
		assets.DELETE("/:id", controllers.HandleAssetFunc(c, "deleteAsset"))
	}
}

func registerPublicServiceRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	services := api.Group("/services")
	{
		services.GET("", controllers.HandlePublicServiceFunc(c, "getServices"))
		services.GET("/active", controllers.HandlePublicServiceFunc(c, "getActiveServices"))
		services.GET("/:id", controllers.HandlePublicServiceFunc(c, "getService"))
		services.POST("", controllers.HandlePublicServiceFunc(c, "createService"))
		services.PUT("/:id", controllers.HandlePublicServiceFunc(c, "updateService"))
		services.PATCH("/:id/toggle", controllers.HandlePublicServiceFunc(c, "toggleStatus"))
		services.DELETE("/:id", controllers.HandlePublicServiceFunc(c, "deleteService"))
	}
}
