package controllers

import (
	"net/http"
	"strconv"

	"go-asset-management/config"
	"go-asset-management/models"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
)

type locationInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

func GetAllLocations(c *gin.Context) {
	var locations []models.Location
	if err := config.DB.Order("id").Find(&locations).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve locations")
		return
	}
	c.JSON(http.StatusOK, locations)
}

func CreateLocation(c *gin.Context) {
	var in locationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var exist models.Location
	if err := config.DB.Where("name = ?", in.Name).First(&exist).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "location name already in use")
		return
	}

	location := models.Location{Name: in.Name, Address: in.Address}
	if err := config.DB.Create(&location).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to add location")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Location added successfully", "id": location.ID})
}

func UpdateLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid location id")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "location not found")
		return
	}

	var in locationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	location.Name = in.Name
	location.Address = in.Address
	if err := config.DB.Save(&location).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update location")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully"})
}

func DeleteLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid location id")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "location not found")
		return
	}

	if err := config.DB.Delete(&location).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete location")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}
