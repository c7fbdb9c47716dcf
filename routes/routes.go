package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/controllers"
	_ "github.com/punura-itd/CIC-AGRI-IMS/docs"
	"github.com/punura-itd/CIC-AGRI-IMS/middleware"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)

	middleware.InitAuthMiddleware(cfg)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no authentication
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	health := controllers.NewHealthCheckController()
	api.GET("/ping", health.Ping)

	// Authentication, rate limited per client IP
	api.POST("/auth/login", middleware.IPRateLimiter(1, 5), controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind token authentication.
// Each group is additionally gated on the capability its role matrix grants.
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateUser())

	// Asset routes
	assets := auth.Group("/assets")
	assets.GET("", middleware.RequirePermission(models.PermViewAssets), controllers.HandleAssetFunc(container, "getAssets"))
	assets.GET("/:id", middleware.RequirePermission(models.PermViewAssets), controllers.HandleAssetFunc(container, "getAsset"))
	assets.GET("/code/:code", middleware.RequirePermission(models.PermViewAssets), controllers.HandleAssetFunc(container, "getAssetByCode"))
	assets.POST("", middleware.RequirePermission(models.PermCreateAssets), controllers.HandleAssetFunc(container, "createAsset"))
	assets.PUT("/:id", middleware.RequirePermission(models.PermUpdateAssets), controllers.HandleAssetFunc(container, "updateAsset"))
	assets.DELETE("/:id", middleware.RequirePermission(models.PermDeleteAssets), controllers.HandleAssetFunc(container, "deleteAsset"))

	// User routes
	users := auth.Group("/users")
	users.GET("", middleware.RequirePermission(models.PermViewUsers), controllers.HandleUserFunc(container, "getUsers"))
	users.GET("/:id", middleware.RequirePermission(models.PermViewUsers), controllers.HandleUserFunc(container, "getUser"))
	users.POST("", middleware.RequirePermission(models.PermCreateUsers), controllers.HandleUserFunc(container, "createUser"))
	users.PUT("/:id", middleware.RequirePermission(models.PermUpdateUsers), controllers.HandleUserFunc(container, "updateUser"))
	users.DELETE("/:id", middleware.RequirePermission(models.PermDeleteUsers), controllers.HandleUserFunc(container, "deleteUser"))

	// Supplier routes
	suppliers := auth.Group("/suppliers")
	suppliers.GET("", middleware.RequirePermission(models.PermViewSuppliers), controllers.HandleSupplierFunc(container, "getSuppliers"))
	suppliers.GET("/:id", middleware.RequirePermission(models.PermViewSuppliers), controllers.HandleSupplierFunc(container, "getSupplier"))
	suppliers.POST("", middleware.RequirePermission(models.PermCreateSuppliers), controllers.HandleSupplierFunc(container, "createSupplier"))
	suppliers.PUT("/:id", middleware.RequirePermission(models.PermUpdateSuppliers), controllers.HandleSupplierFunc(container, "updateSupplier"))
	suppliers.DELETE("/:id", middleware.RequirePermission(models.PermDeleteSuppliers), controllers.HandleSupplierFunc(container, "deleteSupplier"))

	// Insurance routes
	insurance := auth.Group("/insurance")
	insurance.GET("", middleware.RequirePermission(models.PermViewInsurance), controllers.HandleInsuranceFunc(container, "getPolicies"))
	insurance.GET("/:id", middleware.RequirePermission(models.PermViewInsurance), controllers.HandleInsuranceFunc(container, "getPolicy"))
	insurance.POST("", middleware.RequirePermission(models.PermCreateInsurance), controllers.HandleInsuranceFunc(container, "createPolicy"))
	insurance.PUT("/:id", middleware.RequirePermission(models.PermUpdateInsurance), controllers.HandleInsuranceFunc(container, "updatePolicy"))
	insurance.DELETE("/:id", middleware.RequirePermission(models.PermDeleteInsurance), controllers.HandleInsuranceFunc(container, "deletePolicy"))

	// Scan record routes
	scans := auth.Group("/scans")
	scans.GET("", middleware.RequirePermission(models.PermViewAnalytics), controllers.HandleScanFunc(container, "getScans"))
	scans.GET("/:id", middleware.RequirePermission(models.PermViewAnalytics), controllers.HandleScanFunc(container, "getScan"))
	scans.GET("/asset/:assetId", middleware.RequirePermission(models.PermViewAnalytics), controllers.HandleScanFunc(container, "getAssetScans"))
	scans.POST("", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScanFunc(container, "createScan"))
	scans.PUT("/:id", middleware.RequirePermission(models.PermEditQRData), controllers.HandleScanFunc(container, "updateScan"))

	// Scanner session routes
	scanner := auth.Group("/scanner")
	scanner.POST("/session", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "startSession"))
	scanner.DELETE("/session", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "stopSession"))
	scanner.GET("/session", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "getSessionStatus"))
	scanner.POST("/session/confirm", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "confirmScan"))
	scanner.POST("/session/cancel", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "cancelScan"))
	scanner.GET("/stations", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "getStations"))
	scanner.GET("/results", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "getResults"))
	scanner.DELETE("/results", middleware.RequirePermission(models.PermEditQRData), controllers.HandleScannerFunc(container, "clearResults"))
	scanner.GET("/locations", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "getLocations"))
	scanner.POST("/locations", middleware.RequirePermission(models.PermUseQRScanner), controllers.HandleScannerFunc(container, "addLocation"))
	scanner.GET("/stats", middleware.RequirePermission(models.PermViewAnalytics), controllers.HandleScannerFunc(container, "getLocationStats"))
	scanner.GET("/report", middleware.RequirePermission(models.PermViewAnalytics), controllers.HandleScannerFunc(container, "getReport"))
}
