package routes

import (
	"go-asset-management/controllers"
	"go-asset-management/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		// Everything below requires a valid admin token.
		authed := api.Group("/", middlewares.AdminAuth())

		authed.GET("/auth/profile", controllers.Profile)

		assets := authed.Group("/assets")
		{
			assets.GET("", controllers.GetAllAssets)
			assets.POST("", controllers.CreateAsset)
			assets.GET("/scrap", controllers.GetScrapDisposalAssets)
			assets.GET("/:id", controllers.GetAssetByID)
			assets.PUT("/:id", controllers.UpdateAsset)
			assets.DELETE("/:id", controllers.DeleteAsset)
			assets.PATCH("/:id/status", controllers.UpdateAssetStatus)
		}

		users := authed.Group("/users")
		{
			users.GET("", controllers.GetAllUsers)
			users.POST("", controllers.CreateUser)
			users.GET("/:id", controllers.GetUserByID)
			users.PUT("/:id", controllers.UpdateUser)
			users.DELETE("/:id", controllers.DeleteUser)
		}

		categories := authed.Group("/categories")
		{
			categories.GET("", controllers.GetAllCategories)
			categories.POST("", controllers.CreateCategory)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		locations := authed.Group("/locations")
		{
			locations.GET("", controllers.GetAllLocations)
			locations.POST("", controllers.CreateLocation)
			locations.PUT("/:id", controllers.UpdateLocation)
			locations.DELETE("/:id", controllers.DeleteLocation)
		}

		reports := authed.Group("/reports")
		{
			reports.GET("/assets", controllers.ReportAssets)
			reports.GET("/summary", controllers.ReportSummary)
			reports.GET("/by-status", controllers.ReportByStatus)
			reports.GET("/by-category", controllers.ReportByCategory)
			reports.GET("/export", controllers.ExportReport)
			reports.GET("/warranty-alerts", controllers.ReportWarrantyAlerts)
		}
	}
}
