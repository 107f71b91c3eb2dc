package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	assert.True(t, validTransition("Pending Scrap Approval", "Disposed"))
	assert.True(t, validTransition("Disposed", "Active"))

	assert.False(t, validTransition("Active", "Disposed"))
	assert.False(t, validTransition("Disposed", "Pending Scrap Approval"))
	assert.False(t, validTransition("In Repair", "Active"))
	assert.False(t, validTransition("", "Active"))
}

func TestParseDateField(t *testing.T) {
	got, err := parseDateField("2025-01-05", "capital_date")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseDateField("", "capital_date")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDateField("05/01/2025", "capital_date")
	assert.ErrorContains(t, err, "capital_date")
}
