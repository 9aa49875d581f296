package router

import (
	"github.com/labstack/echo/v4"

	"dineWise/internal/middleware"
	"dineWise/internal/rest"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.Me, authRequired)
	users.GET("/preferences", handler.GetPreferences, authRequired)
	users.PUT("/preferences", handler.UpdatePreferences, authRequired)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, feedbackHandler *rest.FeedbackHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.POST("", handler.Recommend)
	reco.POST("/feedback", feedbackHandler.Submit)
}

func SetupChatRoutes(api *echo.Group, handler *rest.ChatHandler, authRequired echo.MiddlewareFunc) {
	chat := api.Group("/chat", authRequired)

	chat.POST("", handler.Chat)
}

func SetupShareRoutes(api *echo.Group, handler *rest.ShareHandler, authRequired echo.MiddlewareFunc) {
	share := api.Group("/share", authRequired)

	share.POST("", handler.Create)
	share.GET("/:token", handler.Resolve)
}

func SetupMetadataRoutes(api *echo.Group, handler *rest.MetadataHandler) {
	api.GET("/metadata", handler.Metadata)
	api.GET("/health", handler.Health)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, authRequired echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired, middleware.AdminOnly())

	admin.GET("/analytics", handler.Analytics)
	admin.GET("/feedback/stats", handler.FeedbackStats)
	admin.GET("/cache/stats", handler.CacheStats)
	admin.DELETE("/cache", handler.ClearCache)
	admin.GET("/ab-test/results", handler.ABTestResults)
	admin.POST("/ab-test/reset", handler.ResetExperiment)
}
