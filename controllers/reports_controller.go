package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go-asset-management/service"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
)

// filterFromQuery reads the report filter criteria off the query string.
// Absent parameters stay empty, which the filter engine treats as "no
// constraint".
func filterFromQuery(c *gin.Context) service.AssetFilter {
	return service.AssetFilter{
		Search:         strings.TrimSpace(c.Query("search")),
		Status:         c.Query("status"),
		Category:       c.Query("category"),
		Location:       c.Query("location"),
		UserID:         c.Query("user_id"),
		WarrantyStatus: c.Query("warranty_status"),
		ExpiryRange:    c.Query("expiry_range"),
	}
}

// GET /api/reports/assets?search=&status=&category=&location=&user_id=&warranty_status=&expiry_range=
func ReportAssets(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	filtered := filterFromQuery(c).Apply(rows, time.Now())
	c.JSON(http.StatusOK, filtered)
}

// ReportSummary computes headline counts over the full asset list, never a
// filtered one.
func ReportSummary(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	c.JSON(http.StatusOK, service.Summarize(rows, time.Now()))
}

func ReportByStatus(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	c.JSON(http.StatusOK, service.CountByStatus(rows))
}

func ReportByCategory(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	c.JSON(http.StatusOK, service.CountByCategory(rows))
}

// ExportReport streams the filtered asset list as a CSV download. An empty
// result yields an error, not a header-only file.
func ExportReport(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	filtered := filterFromQuery(c).Apply(rows, time.Now())

	csv, err := service.ExportCSV(filtered)
	if err != nil {
		if errors.Is(err, service.ErrNoRows) {
			utils.Error(c, http.StatusNotFound, "no data to export")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "failed to export report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.CSVFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// ReportWarrantyAlerts lists assets whose warranty is expired or expiring
// within the default threshold.
func ReportWarrantyAlerts(c *gin.Context) {
	rows, err := loadAssetRows()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve assets")
		return
	}

	c.JSON(http.StatusOK, service.WarrantyAlerts(rows, time.Now()))
}
