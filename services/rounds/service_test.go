package rounds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakehouse/models"
)

// fakeRoundsRepo serves a single stored config.
type fakeRoundsRepo struct {
	config models.RoundsConfig
	stored bool
	saved  *models.RoundsConfig
}

func (f *fakeRoundsRepo) GetForYear(ctx context.Context, year int) (models.RoundsConfig, error) {
	if !f.stored {
		return models.EmptyRoundsConfig(year), nil
	}
	return f.config, nil
}

func (f *fakeRoundsRepo) Save(ctx context.Context, config models.RoundsConfig) error {
	f.saved = &config
	return nil
}

func TestTimelineForYear(t *testing.T) {
	repo := &fakeRoundsRepo{
		stored: true,
		config: models.RoundsConfig{
			Year:      2025,
			StartDate: "2025-01-01",
			Rounds: []models.RoundDefinition{
				{Position: 1, Name: "R1", DurationWeeks: 2},
				{Position: 2, Name: "R2", SubRoundBookerIDs: []string{"b1", "b2"}},
			},
		},
	}
	svc := &DefaultRoundsService{Repo: repo}

	timeline, err := svc.TimelineForYear(context.Background(), 2025, day(2025, time.January, 16))
	require.NoError(t, err)
	require.NotNil(t, timeline.Current)
	assert.Equal(t, "R2", timeline.Current.Name)
	assert.Equal(t, "b1", timeline.SubRoundBookerID)
	assert.Len(t, timeline.Rounds, 2)
}

func TestTimelineForYear_OutsideSeason(t *testing.T) {
	repo := &fakeRoundsRepo{
		stored: true,
		config: models.RoundsConfig{
			Year:      2025,
			StartDate: "2025-01-01",
			Rounds:    []models.RoundDefinition{{Position: 1, Name: "R1", DurationWeeks: 1}},
		},
	}
	svc := &DefaultRoundsService{Repo: repo}

	timeline, err := svc.TimelineForYear(context.Background(), 2025, day(2025, time.July, 1))
	require.NoError(t, err)
	assert.Nil(t, timeline.Current)
	assert.Equal(t, "", timeline.SubRoundBookerID)
}

func TestTimelineForYear_MissingConfig(t *testing.T) {
	svc := &DefaultRoundsService{Repo: &fakeRoundsRepo{}}

	timeline, err := svc.TimelineForYear(context.Background(), 2027, day(2027, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, timeline.Rounds)
	assert.Nil(t, timeline.Current)
}

func TestSaveConfig_RejectsInvalid(t *testing.T) {
	repo := &fakeRoundsRepo{}
	svc := &DefaultRoundsService{Repo: repo}

	err := svc.SaveConfig(context.Background(), models.RoundsConfig{
		Year:      2025,
		StartDate: "2025-01-01",
		Rounds:    []models.RoundDefinition{{Position: 1, Name: "bad"}},
	})
	var configErr ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Nil(t, repo.saved, "invalid config must not reach the store")
}

func TestSaveConfig_StoresValid(t *testing.T) {
	repo := &fakeRoundsRepo{}
	svc := &DefaultRoundsService{Repo: repo}

	config := models.RoundsConfig{
		Year:      2025,
		StartDate: "2025-01-01",
		Rounds:    []models.RoundDefinition{{Position: 1, Name: "R1", DurationWeeks: 2}},
	}
	require.NoError(t, svc.SaveConfig(context.Background(), config))
	require.NotNil(t, repo.saved)
	assert.Equal(t, config, *repo.saved)
}
