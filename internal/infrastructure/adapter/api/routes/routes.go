package routes

import (
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/handler"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API. Every card and admin
// route sits behind Basic authentication.
func SetupRoutes(
	router *gin.Engine,
	cardHandler *handler.CardHandler,
	adminHandler *handler.AdminHandler,
	resolver usecase.IdentityResolver,
	logger coreport.Logger,
) {
	router.GET("/health", handler.Health)

	authenticated := middleware.BasicAuth(resolver, logger)

	cardRoutes := router.Group("/cards", authenticated)
	{
		cardRoutes.GET("", cardHandler.List)
		cardRoutes.GET("/:id", cardHandler.FindByID)
		cardRoutes.POST("", cardHandler.Create)
		cardRoutes.POST("/balance/:id", cardHandler.ApplyBalanceDelta)
	}

	adminRoutes := router.Group("/admin", authenticated)
	{
		adminRoutes.POST("/cards", adminHandler.InsertCard)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
}
