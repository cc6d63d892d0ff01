package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/server/http/handlers"
	"github.com/polkiloo/foodmarket/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger.Named("http")))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade, facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	purchaseHandler := handlers.NewPurchaseHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	requireAuth := middleware.AuthRequired(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)

	me := users.Group("/me", requireAuth)
	me.GET("", userHandler.Me)
	me.POST("/deposit", userHandler.Deposit)
	me.GET("/purchases", userHandler.Purchases)
	me.GET("/restaurants", userHandler.Restaurants)

	restaurants := api.Group("/restaurants")
	restaurants.GET("", restaurantHandler.Search)
	restaurants.GET("/:id", restaurantHandler.Get)
	restaurants.GET("/:id/menu", menuHandler.List)

	owned := restaurants.Group("", requireAuth)
	owned.POST("", restaurantHandler.Create)
	owned.PUT("/:id", restaurantHandler.Update)
	owned.DELETE("/:id", restaurantHandler.Delete)
	owned.POST("/:id/menu", menuHandler.Add)
	owned.PUT("/:id/menu/:itemID", menuHandler.Update)
	owned.DELETE("/:id/menu/:itemID", menuHandler.Delete)

	purchases := api.Group("/purchases", requireAuth)
	purchases.POST("", purchaseHandler.Purchase)
	purchases.GET("/:receiptID/qr", purchaseHandler.ReceiptQR)

	return engine
}
