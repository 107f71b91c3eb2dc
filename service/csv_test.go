package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportCSVEmpty(t *testing.T) {
	_, err := ExportCSV(nil)
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = ExportCSV([]AssetRow{})
	assert.ErrorIs(t, err, ErrNoRows)
}

// Every field is individually quoted; splitting on `","` after trimming the
// outer quotes recovers the original fields.
func splitQuoted(t *testing.T, line string) []string {
	t.Helper()
	assert.True(t, strings.HasPrefix(line, `"`))
	assert.True(t, strings.HasSuffix(line, `"`))
	inner := strings.TrimSuffix(strings.TrimPrefix(line, `"`), `"`)
	return strings.Split(inner, `","`)
}

func TestExportCSVHeaderAndRowShape(t *testing.T) {
	year := 2023
	full := AssetRow{
		AssetCode: "AST-001", SerialNumber: "SN-100", AssetType: "Laptop",
		Make: "Dell", Model: "Latitude", UserName: strPtr("Asha Verma"),
		Status: "Active", CategoryName: "IT Equipment", LocationName: "Pune Plant",
		WarrantyStatus: "In Warranty",
		ExpiryDate:     DateOf(datePtr(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))),
		CapitalDate:    DateOf(datePtr(time.Date(2023, time.March, 12, 0, 0, 0, 0, time.UTC))),
		Year:           &year, AssetDescription: "Developer laptop",
		Department: "Engineering", Division: "R&D", PlantCode: "PN01",
	}

	out, err := ExportCSV([]AssetRow{full})
	assert.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)

	header := splitQuoted(t, lines[0])
	row := splitQuoted(t, lines[1])
	assert.Len(t, header, 17)
	assert.Len(t, row, 17)
	assert.Equal(t, "Asset Code", header[0])
	assert.Equal(t, "Plant Code", header[16])

	assert.Equal(t, "AST-001", row[0])
	assert.Equal(t, "Asha Verma", row[5])
	assert.Equal(t, "Jan 5, 2025", row[10])
	assert.Equal(t, "Mar 12, 2023", row[11])
	assert.Equal(t, "2023", row[12])
}

func TestExportCSVMissingValues(t *testing.T) {
	// Lookups and dates render "N/A", plain optional text stays empty.
	bare := AssetRow{AssetCode: "AST-002", SerialNumber: "SN-200", Status: "Active"}

	out, err := ExportCSV([]AssetRow{bare})
	assert.NoError(t, err)

	row := splitQuoted(t, strings.Split(out, "\n")[1])
	assert.Equal(t, "N/A", row[5], "assigned user")
	assert.Equal(t, "N/A", row[7], "category")
	assert.Equal(t, "N/A", row[8], "location")
	assert.Equal(t, "N/A", row[10], "expiry date")
	assert.Equal(t, "N/A", row[11], "capital date")
	assert.Equal(t, "", row[2], "asset type")
	assert.Equal(t, "", row[12], "year")
	assert.Equal(t, "", row[13], "description")
}

func TestExportCSVRowPerAsset(t *testing.T) {
	rows := sampleRows()
	out, err := ExportCSV(rows)
	assert.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), len(rows)+1)
}
