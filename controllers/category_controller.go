package controllers

import (
	"net/http"
	"strconv"

	"go-asset-management/config"
	"go-asset-management/models"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
)

type categoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("id").Find(&categories).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var exist models.Category
	if err := config.DB.Where("name = ?", in.Name).First(&exist).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "category name already in use")
		return
	}

	category := models.Category{Name: in.Name, Description: in.Description}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to add category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category added successfully", "id": category.ID})
}

func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "category not found")
		return
	}

	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category.Name = in.Name
	category.Description = in.Description
	if err := config.DB.Save(&category).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "category not found")
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
