package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/mocurve/utils"
)

func TestTenorToYears(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"1W":   7.0 / 365.0,
		"3m":   0.25,
		" 10Y": 10,
		"30D":  30.0 / 365.0,
		"2.5":  2.5,
	}
	for in, want := range cases {
		got, err := utils.TenorToYears(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 1e-15, in)
	}

	for _, bad := range []string{"", "Y", "1.5Y", "abc"} {
		_, err := utils.TenorToYears(bad)
		assert.Error(t, err, bad)
	}
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	got, err := utils.YearFraction(start, end, utils.Act365F)
	require.NoError(t, err)
	assert.InDelta(t, 181.0/365.0, got, 1e-15)

	got, err = utils.YearFraction(start, end, utils.Act360)
	require.NoError(t, err)
	assert.InDelta(t, 181.0/360.0, got, 1e-15)

	got, err = utils.YearFraction(start, end, utils.ThirtyE)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-15)

	got, err = utils.YearFraction(start, end, utils.Thirty)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-15)

	_, err = utils.YearFraction(start, end, utils.DayCount("BUS/252"))
	assert.Error(t, err)
}

func TestYearFraction_ThirtyConventions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end   time.Time
		us, eurobond float64
	}{
		// D2 = 31 is kept when D1 < 30 under the US rule.
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), 76.0 / 360.0, 75.0 / 360.0},
		{time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), 60.0 / 360.0, 60.0 / 360.0},
		{time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), 420.0 / 360.0, 420.0 / 360.0},
		{time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), 183.0 / 360.0, 182.0 / 360.0},
	}
	for _, tc := range cases {
		got, err := utils.YearFraction(tc.start, tc.end, utils.Thirty)
		require.NoError(t, err)
		assert.InDelta(t, tc.us, got, 1e-15, "30/360 %s", tc.start.Format(utils.DateLayout))

		got, err = utils.YearFraction(tc.start, tc.end, utils.ThirtyE)
		require.NoError(t, err)
		assert.InDelta(t, tc.eurobond, got, 1e-15, "30E/360 %s", tc.start.Format(utils.DateLayout))
	}
}

func TestParseDayCount(t *testing.T) {
	t.Parallel()

	dc, err := utils.ParseDayCount("")
	require.NoError(t, err)
	assert.Equal(t, utils.Act365F, dc)

	dc, err = utils.ParseDayCount(" act/360 ")
	require.NoError(t, err)
	assert.Equal(t, utils.Act360, dc)

	_, err = utils.ParseDayCount("ACT/ACT")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := utils.ParseDate("2025-11-21")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC), d)

	_, err = utils.ParseDate("21/11/2025")
	assert.Error(t, err)
}
