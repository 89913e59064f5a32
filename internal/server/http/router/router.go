package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/server/http/handlers"
	"github.com/restomart/restomart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlatformFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	staffHandler := handlers.NewStaffHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)
	shopHandler := handlers.NewShopHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/shop/status", shopHandler.Status)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleAdmin))
	admin.POST("/staff", staffHandler.Create)
	admin.PUT("/staff", staffHandler.Update)
	admin.POST("/dishes", menuHandler.Create)
	admin.PUT("/dishes", menuHandler.Update)
	admin.DELETE("/dishes", menuHandler.Delete)
	admin.GET("/dishes", menuHandler.ListByCategory)
	admin.GET("/dishes/:id", menuHandler.Get)
	admin.POST("/dishes/status/:status", menuHandler.SetStatus)
	admin.PUT("/shop/status/:status", shopHandler.SetStatus)

	user := api.Group("/user")
	user.Use(middleware.AuthRequired(facade))
	user.POST("/cart", cartHandler.Add)
	user.GET("/cart", cartHandler.List)
	user.DELETE("/cart", cartHandler.Clear)
	user.POST("/addresses", addressHandler.Create)
	user.GET("/addresses", addressHandler.List)
	user.POST("/orders", orderHandler.Submit)
	user.GET("/orders", orderHandler.List)

	return engine
}
