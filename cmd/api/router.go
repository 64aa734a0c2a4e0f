package main

import (
	"bookden/internal/shared/middleware"
	"bookden/internal/shared/response"
	"bookden/pkg/container"

	"github.com/gin-gonic/gin"
)

func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIP(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupBookRoutes(api, c)
		setupChapterRoutes(api, c)
		setupRatingRoutes(api, c)
		setupTagRoutes(api, c)
		setupAuthRoutes(api, c)
		setupPreferenceRoutes(api, c)
	}

	return router
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/latest", c.BookHandler.LatestBooks)
		books.GET("/hot", c.BookHandler.HotBooks)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.GET("/categories", c.BookHandler.Categories)
		books.GET("/:id", c.BookHandler.GetBookDetail)
	}
}

func setupChapterRoutes(api *gin.RouterGroup, c *container.Container) {
	chapters := api.Group("/chapters")
	{
		chapters.GET("/books/:bookId", c.ChapterHandler.ListByBook)
		chapters.POST("/sync/:bookId", c.ChapterHandler.Sync)
	}
}

func setupRatingRoutes(api *gin.RouterGroup, c *container.Container) {
	ratings := api.Group("/ratings")
	{
		ratings.GET("/types", c.RatingHandler.Types)
		ratings.GET("/books/:bookId/stats", c.RatingHandler.BookStats)
		// Ratings are attributed by account when present, by origin
		// address otherwise.
		ratings.POST("", middleware.OptionalAuth(c.JWTManager), c.RatingHandler.CreateRating)
	}
}

func setupTagRoutes(api *gin.RouterGroup, c *container.Container) {
	tags := api.Group("/tags")
	{
		tags.GET("/cloud", c.TagHandler.Cloud)
	}
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", middleware.Auth(c.JWTManager), c.UserHandler.Logout)
		auth.GET("/current-user", middleware.Auth(c.JWTManager), c.UserHandler.CurrentUser)
		auth.PUT("/update", middleware.Auth(c.JWTManager), c.UserHandler.UpdateProfile)
	}
}

func setupPreferenceRoutes(api *gin.RouterGroup, c *container.Container) {
	preferences := api.Group("/preferences")
	preferences.Use(middleware.Auth(c.JWTManager))
	{
		preferences.GET("", c.PreferenceHandler.Get)
		preferences.POST("", c.PreferenceHandler.Save)
		preferences.GET("/status", c.PreferenceHandler.Status)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.InternalServerError(ctx, "database unavailable")
			return
		}
		response.Success(ctx, gin.H{"status": "ok"})
	}
}
