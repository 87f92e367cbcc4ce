package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRoundsConfig(t *testing.T) {
	config := EmptyRoundsConfig(2026)
	assert.Equal(t, 2026, config.Year)
	assert.Equal(t, "2026-01-01", config.StartDate)
	assert.Empty(t, config.Rounds)
}

func TestRound_Contains(t *testing.T) {
	round := Round{
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, round.Contains(time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, round.Contains(round.StartDate))
	assert.True(t, round.Contains(time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, round.Contains(round.EndDate))
	assert.False(t, round.Contains(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, "2025-03-09", FormatDate(parsed))

	_, err = ParseDate("03/09/2025")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	start := time.Date(2025, time.February, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-05", FormatDate(AddDays(start, 7)))
	assert.Equal(t, "2025-02-25", FormatDate(AddDays(start, -1)))
}

func TestPermissions_IsAdminUser(t *testing.T) {
	perms := Permissions{AdminUserIDs: []string{"a", "b"}}
	assert.True(t, perms.IsAdminUser("a"))
	assert.False(t, perms.IsAdminUser("c"))
	assert.False(t, perms.IsAdminUser(""))
	assert.False(t, Permissions{}.IsAdminUser("a"))
}
