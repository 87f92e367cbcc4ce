package rounds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakehouse/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestProject_Timeline(t *testing.T) {
	config := models.RoundsConfig{
		Year:      2025,
		StartDate: "2025-01-01",
		Rounds: []models.RoundDefinition{
			{Position: 1, Name: "R1", DurationWeeks: 2},
			{Position: 2, Name: "R2", SubRoundBookerIDs: []string{"b1", "b2"}},
		},
	}

	rounds, err := Project(config)
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	assert.Equal(t, "R1", rounds[0].Name)
	assert.Equal(t, day(2025, time.January, 1), rounds[0].StartDate)
	assert.Equal(t, day(2025, time.January, 14), rounds[0].EndDate)

	assert.Equal(t, "R2", rounds[1].Name)
	assert.Equal(t, day(2025, time.January, 15), rounds[1].StartDate)
	assert.Equal(t, day(2025, time.January, 28), rounds[1].EndDate)
	assert.Equal(t, []string{"b1", "b2"}, rounds[1].SubRoundBookerIDs)
}

func TestProject_ContiguousAndOrdered(t *testing.T) {
	config := models.RoundsConfig{
		Year:      2026,
		StartDate: "2026-05-02",
		Rounds: []models.RoundDefinition{
			// Stored out of order on purpose; projection sorts by position.
			{Position: 3, Name: "last", DurationWeeks: 1},
			{Position: 1, Name: "first", DurationWeeks: 4},
			{Position: 2, Name: "middle", SubRoundBookerIDs: []string{"a", "b", "c"}},
		},
	}

	rounds, err := Project(config)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	assert.Equal(t, "first", rounds[0].Name)
	assert.Equal(t, "middle", rounds[1].Name)
	assert.Equal(t, "last", rounds[2].Name)

	assert.Equal(t, day(2026, time.May, 2), rounds[0].StartDate)
	for i := 1; i < len(rounds); i++ {
		assert.Equal(t, models.AddDays(rounds[i-1].EndDate, 1), rounds[i].StartDate,
			"round %d must start the day after round %d ends", i, i-1)
	}
}

func TestProject_Durations(t *testing.T) {
	tests := []struct {
		name     string
		def      models.RoundDefinition
		wantDays int
	}{
		{
			name:     "one week",
			def:      models.RoundDefinition{Position: 1, Name: "w1", DurationWeeks: 1},
			wantDays: 6,
		},
		{
			name:     "five weeks",
			def:      models.RoundDefinition{Position: 1, Name: "w5", DurationWeeks: 5},
			wantDays: 34,
		},
		{
			name:     "sub-rounds of three bookers",
			def:      models.RoundDefinition{Position: 1, Name: "sr", SubRoundBookerIDs: []string{"a", "b", "c"}},
			wantDays: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds, err := Project(models.RoundsConfig{
				Year:      2025,
				StartDate: "2025-01-01",
				Rounds:    []models.RoundDefinition{tt.def},
			})
			require.NoError(t, err)
			require.Len(t, rounds, 1)
			assert.Equal(t, float64(tt.wantDays), rounds[0].EndDate.Sub(rounds[0].StartDate).Hours()/24)
		})
	}
}

func TestProject_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  models.RoundDefinition
	}{
		{
			name: "both forms set",
			def: models.RoundDefinition{
				Position:          2,
				Name:              "both",
				DurationWeeks:     2,
				SubRoundBookerIDs: []string{"a", "b"},
			},
		},
		{
			name: "neither form set",
			def:  models.RoundDefinition{Position: 2, Name: "neither"},
		},
		{
			name: "zero duration and empty sub-rounds",
			def: models.RoundDefinition{
				Position:          2,
				Name:              "empty",
				DurationWeeks:     0,
				SubRoundBookerIDs: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(models.RoundsConfig{
				Year:      2025,
				StartDate: "2025-01-01",
				Rounds: []models.RoundDefinition{
					{Position: 1, Name: "ok", DurationWeeks: 1},
					tt.def,
				},
			})
			require.Error(t, err)

			var configErr ConfigurationError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, 2, configErr.Position)
			assert.Equal(t, tt.def.Name, configErr.Name)
		})
	}
}

func TestProject_BadStartDate(t *testing.T) {
	_, err := Project(models.RoundsConfig{Year: 2025, StartDate: "not-a-date"})
	assert.Error(t, err)
}

func TestProject_EmptyConfig(t *testing.T) {
	rounds, err := Project(models.EmptyRoundsConfig(2025))
	require.NoError(t, err)
	assert.Empty(t, rounds)
}

func TestProject_Idempotent(t *testing.T) {
	config := models.RoundsConfig{
		Year:      2025,
		StartDate: "2025-06-07",
		Rounds: []models.RoundDefinition{
			{Position: 1, Name: "R1", DurationWeeks: 3},
			{Position: 2, Name: "R2", SubRoundBookerIDs: []string{"x", "y"}},
		},
	}

	first, err := Project(config)
	require.NoError(t, err)
	second, err := Project(config)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The input config must not be reordered by projection.
	assert.Equal(t, 1, config.Rounds[0].Position)
}
