package service

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoRows signals an export with nothing in it; callers must not produce a
// file (not even a header-only one).
var ErrNoRows = errors.New("no data to export")

// CSVFileName is the download filename for asset reports.
const CSVFileName = "asset_report.csv"

const csvDateLayout = "Jan 2, 2006"

const csvNotAvailable = "N/A"

// csvHeaders fixes the column set and order of the export.
var csvHeaders = []string{
	"Asset Code", "Serial Number", "Asset Type", "Make", "Model",
	"Assigned User", "Status", "Category", "Location", "Warranty Status",
	"Expiry Date", "Capital Date", "Year", "Asset Description", "Department",
	"Division", "Plant Code",
}

// ExportCSV renders rows as a CSV document: a quoted header line followed by
// one line per row, every value wrapped in double quotes. Missing lookups and
// dates render as "N/A", missing plain text fields as the empty string.
// Values are written as-is; embedded quotes and commas are not escaped.
func ExportCSV(rows []AssetRow) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	var b strings.Builder
	writeCSVLine(&b, csvHeaders)
	for _, r := range rows {
		b.WriteByte('\n')
		writeCSVLine(&b, csvFields(r))
	}
	return b.String(), nil
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(f)
		b.WriteByte('"')
	}
}

func csvFields(r AssetRow) []string {
	return []string{
		r.AssetCode,
		r.SerialNumber,
		r.AssetType,
		r.Make,
		r.Model,
		stringOrNA(r.UserName),
		r.Status,
		textOrNA(r.CategoryName),
		textOrNA(r.LocationName),
		r.WarrantyStatus,
		dateOrNA(r.ExpiryDate),
		dateOrNA(r.CapitalDate),
		yearText(r.Year),
		r.AssetDescription,
		r.Department,
		r.Division,
		r.PlantCode,
	}
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return csvNotAvailable
	}
	return *s
}

func textOrNA(s string) string {
	if s == "" {
		return csvNotAvailable
	}
	return s
}

func dateOrNA(d *Date) string {
	if d == nil {
		return csvNotAvailable
	}
	return d.Format(csvDateLayout)
}

func yearText(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}
