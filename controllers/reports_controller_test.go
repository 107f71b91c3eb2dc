package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-asset-management/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/reports/assets?"+rawQuery, nil)
	ctx.Request = req
	return ctx
}

func TestFilterFromQuery(t *testing.T) {
	ctx := queryContext(t, "search=+dell+&status=Active&category=IT+Equipment&user_id=null&warranty_status=In+Warranty&expiry_range=expired")

	f := filterFromQuery(ctx)
	assert.Equal(t, service.AssetFilter{
		Search:         "dell",
		Status:         "Active",
		Category:       "IT Equipment",
		UserID:         service.UnassignedUser,
		WarrantyStatus: "In Warranty",
		ExpiryRange:    service.ExpiryRangeExpired,
	}, f)
}

func TestFilterFromQueryDefaultsEmpty(t *testing.T) {
	ctx := queryContext(t, "")
	assert.Equal(t, service.AssetFilter{}, filterFromQuery(ctx))
}
