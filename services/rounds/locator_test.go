package rounds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakehouse/models"
)

func projectedSeason(t *testing.T) []models.Round {
	t.Helper()
	rounds, err := Project(models.RoundsConfig{
		Year:      2025,
		StartDate: "2025-01-01",
		Rounds: []models.RoundDefinition{
			{Position: 1, Name: "R1", DurationWeeks: 2},
			{Position: 2, Name: "R2", SubRoundBookerIDs: []string{"b1", "b2"}},
		},
	})
	require.NoError(t, err)
	return rounds
}

func TestCurrentRound(t *testing.T) {
	rounds := projectedSeason(t)

	tests := []struct {
		name  string
		today time.Time
		want  string
	}{
		{"before season", day(2024, time.December, 31), ""},
		{"first day of first round", day(2025, time.January, 1), "R1"},
		{"last day of first round", day(2025, time.January, 14), "R1"},
		{"first day of second round", day(2025, time.January, 15), "R2"},
		{"last day of season", day(2025, time.January, 28), "R2"},
		{"after season", day(2025, time.January, 29), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := CurrentRound(rounds, tt.today)
			if tt.want == "" {
				assert.Nil(t, round)
				return
			}
			require.NotNil(t, round)
			assert.Equal(t, tt.want, round.Name)
		})
	}
}

func TestCurrentRound_EmptySeason(t *testing.T) {
	assert.Nil(t, CurrentRound(nil, day(2025, time.June, 1)))
	assert.Nil(t, CurrentRound([]models.Round{}, day(2025, time.June, 1)))
}

func TestCurrentSubRoundBooker(t *testing.T) {
	rounds := projectedSeason(t)
	subRound := rounds[1] // R2: 2025-01-15..2025-01-28, bookers b1 then b2

	// b1 holds every day of the first week, b2 every day of the second.
	for offset := 0; offset < 7; offset++ {
		today := models.AddDays(subRound.StartDate, offset)
		assert.Equal(t, "b1", CurrentSubRoundBooker(subRound, today), "day %s", today)
	}
	for offset := 7; offset < 14; offset++ {
		today := models.AddDays(subRound.StartDate, offset)
		assert.Equal(t, "b2", CurrentSubRoundBooker(subRound, today), "day %s", today)
	}
}

func TestCurrentSubRoundBooker_Clamped(t *testing.T) {
	rounds := projectedSeason(t)
	subRound := rounds[1]

	// Offsets outside the configured list clamp to its ends.
	assert.Equal(t, "b1", CurrentSubRoundBooker(subRound, models.AddDays(subRound.StartDate, -3)))
	assert.Equal(t, "b2", CurrentSubRoundBooker(subRound, models.AddDays(subRound.EndDate, 10)))
}

func TestCurrentSubRoundBooker_NoOrder(t *testing.T) {
	rounds := projectedSeason(t)
	assert.Equal(t, "", CurrentSubRoundBooker(rounds[0], rounds[0].StartDate))
}
