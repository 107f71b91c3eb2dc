package main

import (
	"log"
	"os"

	"go-asset-management/config"
	"go-asset-management/middlewares"
	"go-asset-management/models"
	"go-asset-management/routes"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Asset{},
	)

	config.SeedAdmin()

	if s := os.Getenv("ADMIN_JWT_SECRET"); s != "" {
		utils.AdminSecret = []byte(s)
	}

	r := gin.Default()
	r.Use(middlewares.CORS())
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Asset Management API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
