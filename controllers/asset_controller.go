package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"go-asset-management/config"
	"go-asset-management/models"
	"go-asset-management/service"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// assetInput is the full-record payload for POST and PUT. Dates travel as
// "YYYY-MM-DD" or null, which JSON binding surfaces as empty strings.
type assetInput struct {
	AssetCode        string `json:"asset_code" binding:"required"`
	SerialNumber     string `json:"serial_number" binding:"required"`
	CapitalDate      string `json:"capital_date"`
	Year             *int   `json:"year"`
	AssetType        string `json:"asset_type"`
	AssetDescription string `json:"asset_description"`
	Make             string `json:"make"`
	Model            string `json:"model"`
	Status           string `json:"status"`
	Department       string `json:"department"`
	Division         string `json:"division"`
	PlantCode        string `json:"plant_code"`
	WarrantyStatus   string `json:"warranty_status"`
	ExpiryDate       string `json:"expiry_date"`
	CategoryName     string `json:"category_name" binding:"required"`
	LocationName     string `json:"location_name" binding:"required"`
	UserID           *uint  `json:"user_id"`
}

func parseDateField(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format, use YYYY-MM-DD", field)
	}
	return &t, nil
}

func getOrCreateCategory(name string) (models.Category, error) {
	var category models.Category
	err := config.DB.Where("name = ?", name).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return category, err
	}

	category = models.Category{Name: name, Description: "Auto-created category: " + name}
	if err := config.DB.Create(&category).Error; err != nil {
		return category, err
	}
	log.Printf("Created new category: %s", name)
	return category, nil
}

func getOrCreateLocation(name string) (models.Location, error) {
	var location models.Location
	err := config.DB.Where("name = ?", name).First(&location).Error
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return location, err
	}

	location = models.Location{Name: name, Address: "Auto-created location: " + name}
	if err := config.DB.Create(&location).Error; err != nil {
		return location, err
	}
	log.Printf("Created new location: %s", name)
	return location, nil
}

// assetRow flattens an asset and its preloaded relations into the API shape.
func assetRow(a models.Asset) service.AssetRow {
	row := service.AssetRow{
		ID:               a.ID,
		AssetCode:        a.AssetCode,
		SerialNumber:     a.SerialNumber,
		CapitalDate:      service.DateOf(a.CapitalDate),
		Year:             a.Year,
		AssetType:        a.AssetType,
		AssetDescription: a.AssetDescription,
		Make:             a.Make,
		Model:            a.Model,
		Status:           a.Status,
		Department:       a.Department,
		Division:         a.Division,
		PlantCode:        a.PlantCode,
		WarrantyStatus:   a.WarrantyStatus,
		ExpiryDate:       service.DateOf(a.ExpiryDate),
		CategoryID:       a.CategoryID,
		CategoryName:     a.Category.Name,
		LocationID:       a.LocationID,
		LocationName:     a.Location.Name,
		UserID:           a.UserID,
	}
	if a.AssignedUser != nil {
		row.UserName = &a.AssignedUser.Name
	}
	return row
}

// loadAssetRows fetches every asset with its relations, oldest first. The
// reporting endpoints share this: filtering and aggregation happen in memory
// over this list.
func loadAssetRows() ([]service.AssetRow, error) {
	var assets []models.Asset
	err := config.DB.
		Preload("Category").
		Preload("Location").
		Preload("AssignedUser").
		Order("id").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}

	rows := make([]service.AssetRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, assetRow(a))
	}
	return rows, nil
}

func GetAllAssets(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetAssetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	var asset models.Asset
	err = config.DB.
		Preload("Category").
		Preload("Location").
		Preload("AssignedUser").
		First(&asset, id).Error
	if err != nil {
		utils.Error(c, http.StatusNotFound, "asset not found")
		return
	}

	c.JSON(http.StatusOK, assetRow(asset))
}

func CreateAsset(c *gin.Context) {
	var in assetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var exist models.Asset
	if err := config.DB.Where("asset_code = ?", in.AssetCode).First(&exist).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "asset code already in use")
		return
	}
	if err := config.DB.Where("serial_number = ?", in.SerialNumber).First(&exist).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "serial number already in use")
		return
	}

	capitalDate, err := parseDateField(in.CapitalDate, "capital_date")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	expiryDate, err := parseDateField(in.ExpiryDate, "expiry_date")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if in.UserID != nil {
		var user models.User
		if err := config.DB.First(&user, *in.UserID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "assigned user does not exist")
			return
		}
	}

	category, err := getOrCreateCategory(in.CategoryName)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to resolve category")
		return
	}
	location, err := getOrCreateLocation(in.LocationName)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to resolve location")
		return
	}

	status := in.Status
	if status == "" {
		status = "Active"
	}
	warrantyStatus := in.WarrantyStatus
	if warrantyStatus == "" {
		warrantyStatus = "In Warranty"
	}

	asset := models.Asset{
		AssetCode:        in.AssetCode,
		SerialNumber:     in.SerialNumber,
		CapitalDate:      capitalDate,
		Year:             in.Year,
		AssetType:        in.AssetType,
		AssetDescription: in.AssetDescription,
		Make:             in.Make,
		Model:            in.Model,
		Status:           status,
		Department:       in.Department,
		Division:         in.Division,
		PlantCode:        in.PlantCode,
		WarrantyStatus:   warrantyStatus,
		ExpiryDate:       expiryDate,
		CategoryID:       category.ID,
		LocationID:       location.ID,
		UserID:           in.UserID,
	}

	if err := config.DB.Create(&asset).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to add asset")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Asset added successfully", "id": asset.ID})
}

// UpdateAsset is full-record replacement: every field must be resupplied,
// matching what PUT means on this API.
func UpdateAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	var asset models.Asset
	if err := config.DB.First(&asset, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "asset not found")
		return
	}

	var in assetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if in.AssetCode != asset.AssetCode {
		var exist models.Asset
		if err := config.DB.Where("asset_code = ?", in.AssetCode).First(&exist).Error; err == nil {
			utils.Error(c, http.StatusBadRequest, "asset code already in use")
			return
		}
	}
	if in.SerialNumber != asset.SerialNumber {
		var exist models.Asset
		if err := config.DB.Where("serial_number = ?", in.SerialNumber).First(&exist).Error; err == nil {
			utils.Error(c, http.StatusBadRequest, "serial number already in use")
			return
		}
	}

	capitalDate, err := parseDateField(in.CapitalDate, "capital_date")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	expiryDate, err := parseDateField(in.ExpiryDate, "expiry_date")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if in.UserID != nil {
		var user models.User
		if err := config.DB.First(&user, *in.UserID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "assigned user does not exist")
			return
		}
	}

	category, err := getOrCreateCategory(in.CategoryName)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to resolve category")
		return
	}
	location, err := getOrCreateLocation(in.LocationName)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to resolve location")
		return
	}

	asset.AssetCode = in.AssetCode
	asset.SerialNumber = in.SerialNumber
	asset.CapitalDate = capitalDate
	asset.Year = in.Year
	asset.AssetType = in.AssetType
	asset.AssetDescription = in.AssetDescription
	asset.Make = in.Make
	asset.Model = in.Model
	asset.Status = in.Status
	asset.Department = in.Department
	asset.Division = in.Division
	asset.PlantCode = in.PlantCode
	asset.WarrantyStatus = in.WarrantyStatus
	asset.ExpiryDate = expiryDate
	asset.CategoryID = category.ID
	asset.LocationID = location.ID
	asset.UserID = in.UserID

	// Save, not Updates: zero values (cleared dates, unassigned user) must
	// overwrite what is stored.
	if err := config.DB.Save(&asset).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset updated successfully"})
}

func DeleteAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	var asset models.Asset
	if err := config.DB.First(&asset, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "asset not found")
		return
	}

	if err := config.DB.Delete(&asset).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

// allowedTransitions are the scrap/disposal moves: approval to disposal, and
// reverting a disposal back to service. PUT stays unconstrained; only this
// endpoint enforces the pair.
var allowedTransitions = map[string]string{
	"Pending Scrap Approval": "Disposed",
	"Disposed":               "Active",
}

func validTransition(from, to string) bool {
	return allowedTransitions[from] == to
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

func UpdateAssetStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	var asset models.Asset
	if err := config.DB.First(&asset, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "asset not found")
		return
	}

	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if !validTransition(asset.Status, in.Status) {
		utils.Error(c, http.StatusBadRequest,
			fmt.Sprintf("cannot transition from %q to %q", asset.Status, in.Status))
		return
	}

	if err := config.DB.Model(&asset).Update("status", in.Status).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update asset status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset status updated successfully", "status": in.Status})
}

// GetScrapDisposalAssets lists assets sitting in the scrap/disposal flow.
func GetScrapDisposalAssets(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	scrap := make([]service.AssetRow, 0)
	for _, r := range rows {
		if r.Status == "Pending Scrap Approval" || r.Status == "Disposed" {
			scrap = append(scrap, r)
		}
	}
	c.JSON(http.StatusOK, scrap)
}
