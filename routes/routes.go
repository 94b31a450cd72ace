package routes

import (
	"net/http"
	"time"

	"eventify/handlers"
	"eventify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// OpenAPIPath is where the API description is served from.
const OpenAPIPath = "/docs/openapi.yaml"

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("", hb.GetCatalog)
		api.GET("/search", hb.SearchCatalog)
	}
}

// RegisterAIRoutes registers the assistant, planner and package endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/chat", hb.AIChatHandler)
		api.DELETE("/chat", hb.AIResetHandler)
		api.POST("/planner", hb.AIPlannerHandler)
	}
	r.POST("/api/recommend/package", hb.RecommendPackage)
}

// RegisterCartRoutes registers the per-user cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCart)
		api.PUT("", hb.CheckoutPackage)
		api.DELETE("", hb.ClearCart)
		api.POST("/items", hb.AddCartItem)
		api.DELETE("/items/:serviceID", hb.RemoveCartItem)
		api.POST("/pay", hb.PayCart)
	}
}

// RegisterPlannerRoutes registers the planner dashboard endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/planner")
	{
		api.GET("/packages", hb.ListPackages)
		api.POST("/packages", hb.CreatePackage)
		api.GET("/packages/:id", hb.GetPackage)
		api.PATCH("/packages/:id", hb.UpdatePackage)
		api.DELETE("/packages/:id", hb.DeletePackage)
		api.POST("/packages/:id/services", hb.AddPackageItem)
		api.GET("/stats", hb.PlannerStats)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the last
// dependency snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm Eventify",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterDocsRoutes serves the OpenAPI document and a Swagger UI for it.
func RegisterDocsRoutes(r *gin.Engine, specFile string) {
	r.StaticFile(OpenAPIPath, specFile)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(OpenAPIPath)))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", utils.UserIDHeader},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterPlannerRoutes(r, hb)
}
