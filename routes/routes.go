package routes

import (
	"time"

	"kaojai/handlers"
	"kaojai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the LINE webhook endpoint.
func RegisterWebhookRoutes(r *gin.Engine, webhook *handlers.WebhookHandler) {
	r.POST("/webhook", webhook.HandleWebhook)
}

// RegisterAdminRoutes registers JWT-protected tenant administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, admin *handlers.AdminHandler) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthAdminMiddleware())
	{
		api.GET("/tenants/:id/config", admin.GetTenantConfigHandler)
		api.PUT("/tenants/:id/config", admin.UpsertTenantConfigHandler)
		api.GET("/tenants/:id/checkslip-channel", admin.GetTenantChannelHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, webhook *handlers.WebhookHandler, admin *handlers.AdminHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWebhookRoutes(r, webhook)
	RegisterAdminRoutes(r, admin)
	RegisterHealthRoute(r)
}
