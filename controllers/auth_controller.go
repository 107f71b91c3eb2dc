package controllers

import (
	"net/http"
	"time"

	"go-asset-management/config"
	"go-asset-management/models"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ? AND is_active = true", in.Username).First(&admin).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	now := time.Now()
	config.DB.Model(&admin).Update("last_login_at", now)

	token, err := utils.GenerateAdminToken(admin.ID, admin.Username, 24*time.Hour)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func Profile(c *gin.Context) {
	adminID, _ := c.Get("admin_id")

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "admin not found")
		return
	}

	// PasswordHash stays hidden via json:"-".
	utils.Success(c, "Profile retrieved successfully", admin)
}
