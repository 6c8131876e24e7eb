package routes

import (
	"thesis-management-api/controllers"
	"thesis-management-api/middleware"
	"thesis-management-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Thesis Management API is running",
			})
		})

		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/departments", controllers.GetDepartments)

			auth.GET("/profile", middleware.AuthMiddleware(), controllers.GetProfile)
			auth.PUT("/change-password", middleware.AuthMiddleware(), controllers.ChangePassword)
		}

		// Thesis submission
		submission := api.Group("/submission")
		submission.Use(middleware.AuthMiddleware())
		{
			submission.POST("/submit", middleware.RequireRole(models.RoleStudent), controllers.SubmitThesis)
			submission.GET("/my-theses", middleware.RequireRole(models.RoleStudent), controllers.GetMyTheses)
			submission.GET("/:id", controllers.GetThesis)
			submission.GET("/:id/download", controllers.DownloadThesis)

			// Admin only
			submission.PATCH("/:id/status", middleware.RequireRole(models.RoleAdmin), controllers.UpdateThesisStatus)
			submission.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteThesis)
		}

		// Reviews and comments
		review := api.Group("/review")
		review.Use(middleware.AuthMiddleware())
		{
			review.POST("/submit-review", middleware.RequireRole(models.RoleReviewer, models.RoleAdmin), controllers.SubmitReview)
			review.GET("/thesis/:id", controllers.GetReviewsForThesis)
			review.GET("/reviewer/dashboard", middleware.RequireRole(models.RoleReviewer, models.RoleAdmin), controllers.GetReviewerQueue)
			review.POST("/add-comment", controllers.AddComment)
		}

		// Public search
		search := api.Group("/search")
		{
			search.GET("/theses", controllers.SearchTheses)
			search.GET("/filters", controllers.GetSearchFilters)
		}

		// Dashboards, one per role
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.AuthMiddleware())
		{
			dashboard.GET("/admin", middleware.RequireRole(models.RoleAdmin), controllers.GetAdminDashboard)
			dashboard.GET("/student", middleware.RequireRole(models.RoleStudent), controllers.GetStudentDashboard)
			dashboard.GET("/reviewer", middleware.RequireRole(models.RoleReviewer, models.RoleAdmin), controllers.GetReviewerDashboard)
		}
	}
}
