// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/interfaces/http/handlers"
	"github.com/faraz365/storefront-backend/internal/realtime"
	"github.com/faraz365/storefront-backend/internal/store"
)

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer) {
	authHandler := handlers.NewAuthHandler(st, seq)

	rg.POST("/signup", authHandler.Signup)
	rg.POST("/login", authHandler.Login)
}

// SetupUserRoutes sets up user related routes
func SetupUserRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer) {
	userHandler := handlers.NewUserHandler(st, seq)

	users := rg.Group("/users")
	{
		users.GET("", userHandler.List)
		users.PUT("/:id", userHandler.UpdateRole)
	}
}

// SetupCatalogRoutes sets up product and category routes
func SetupCatalogRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer, hub *realtime.Hub) {
	productHandler := handlers.NewProductHandler(st, seq, hub)
	categoryHandler := handlers.NewCategoryHandler(st, seq, hub)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.POST("", categoryHandler.Create)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}
}

// SetupOrderRoutes sets up order and cart routes
func SetupOrderRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer) {
	orderHandler := handlers.NewOrderHandler(st, seq)
	cartHandler := handlers.NewCartHandler(st)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("", orderHandler.Create)
		orders.PUT("/:id", orderHandler.UpdateStatus)
	}

	cart := rg.Group("/cart")
	{
		cart.GET("/:userId", cartHandler.Get)
		cart.POST("/:userId", cartHandler.AddItem)
		cart.DELETE("/:userId/:productId", cartHandler.RemoveItem)
	}
}

// SetupTransactionRoutes sets up the legacy transaction routes
func SetupTransactionRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer) {
	transactionHandler := handlers.NewTransactionHandler(st, seq)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", transactionHandler.List)
		transactions.POST("", transactionHandler.Create)
		transactions.PUT("/:id", transactionHandler.UpdateStatus)
	}
}

// SetupMiscRoutes sets up contact and analytics routes
func SetupMiscRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer) {
	contactHandler := handlers.NewContactHandler(st, seq)
	analyticsHandler := handlers.NewAnalyticsHandler(st)

	rg.POST("/contact", contactHandler.Create)
	rg.GET("/analytics", analyticsHandler.Get)
}

// SetupRoutes wires every API route group under the given router group
func SetupRoutes(rg *gin.RouterGroup, st store.Store, seq *store.Sequencer, hub *realtime.Hub) {
	SetupAuthRoutes(rg, st, seq)
	SetupUserRoutes(rg, st, seq)
	SetupCatalogRoutes(rg, st, seq, hub)
	SetupOrderRoutes(rg, st, seq)
	SetupTransactionRoutes(rg, st, seq)
	SetupMiscRoutes(rg, st, seq)
}
