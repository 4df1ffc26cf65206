package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/gfmartins/booktrail/internal/utils"
)

func TestAnnualWindow(t *testing.T) {
	ref := time.Date(2026, time.August, 28, 15, 42, 0, 0, time.Local)

	start, end := util.AnnualWindow(ref)

	assert.Equal(t, "2026-01-01", start.String())
	assert.Equal(t, "2026-12-31", end.String())
}

func TestMonthlyWindow(t *testing.T) {
	t.Run("RegularMonth", func(t *testing.T) {
		ref := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.Local)

		start, end := util.MonthlyWindow(ref)

		assert.Equal(t, "2026-08-01", start.String())
		assert.Equal(t, "2026-08-31", end.String())
	})

	t.Run("February", func(t *testing.T) {
		ref := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.Local)

		start, end := util.MonthlyWindow(ref)

		assert.Equal(t, "2025-02-01", start.String())
		assert.Equal(t, "2025-02-28", end.String())
	})

	t.Run("LeapFebruary", func(t *testing.T) {
		ref := time.Date(2028, time.February, 1, 0, 0, 0, 0, time.Local)

		_, end := util.MonthlyWindow(ref)

		assert.Equal(t, "2028-02-29", end.String())
	})
}

func TestDaysUntil(t *testing.T) {
	from := util.DateOf(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.Local))
	to := util.DateOf(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.Local))

	assert.Equal(t, 125, util.DaysUntil(from, to))
	assert.Equal(t, 0, util.DaysUntil(from, from))
	assert.Equal(t, 0, util.DaysUntil(to, from), "past windows report zero remaining days")
}

func TestDateJSON(t *testing.T) {
	d := util.DateOf(time.Date(2026, time.March, 5, 23, 59, 0, 0, time.Local))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-05"`, string(b))

	var parsed util.Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, parsed.Equal(d))

	var zero util.Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDateScan(t *testing.T) {
	var d util.Date

	require.NoError(t, d.Scan(time.Date(2026, time.June, 1, 13, 30, 0, 0, time.Local)))
	assert.Equal(t, "2026-06-01", d.String())

	require.NoError(t, d.Scan("2026-07-15 00:00:00"))
	assert.Equal(t, "2026-07-15", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}
