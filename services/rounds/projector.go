package rounds

import (
	"sort"

	"lakehouse/models"
)

// Project turns a declarative rounds configuration into the season's concrete
// timeline. Definitions are applied in ascending position order (stable on
// ties) as a left fold from the config's start date: each round spans
// durationWeeks*7 days inclusive, and the next round starts the day after the
// previous one ends.
func Project(config models.RoundsConfig) ([]models.Round, error) {
	start, err := models.ParseDate(config.StartDate)
	if err != nil {
		return nil, err
	}

	defs := make([]models.RoundDefinition, len(config.Rounds))
	copy(defs, config.Rounds)
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].Position < defs[j].Position
	})

	projected := make([]models.Round, 0, len(defs))
	cursor := start
	for _, def := range defs {
		durationWeeks, err := roundDuration(def)
		if err != nil {
			return nil, err
		}

		roundStart := cursor
		roundEnd := models.AddDays(roundStart, durationWeeks*7-1)
		cursor = models.AddDays(roundEnd, 1)

		projected = append(projected, models.Round{
			Position:               def.Position,
			Name:                   def.Name,
			StartDate:              roundStart,
			EndDate:                roundEnd,
			SubRoundBookerIDs:      append([]string(nil), def.SubRoundBookerIDs...),
			BookedWeeksLimit:       def.BookedWeeksLimit,
			AllowDailyReservations: def.AllowDailyReservations,
		})
	}
	return projected, nil
}

// roundDuration derives a round's length in weeks, enforcing that exactly one
// of the duration and sub-round forms is configured.
func roundDuration(def models.RoundDefinition) (int, error) {
	hasDuration := def.DurationWeeks > 0
	hasSubRounds := len(def.SubRoundBookerIDs) > 0

	switch {
	case hasDuration && hasSubRounds:
		return 0, ConfigurationError{
			Position: def.Position,
			Name:     def.Name,
			Reason:   "durationWeeks and subRoundBookerIds are mutually exclusive",
		}
	case hasDuration:
		return def.DurationWeeks, nil
	case hasSubRounds:
		return len(def.SubRoundBookerIDs), nil
	default:
		return 0, ConfigurationError{
			Position: def.Position,
			Name:     def.Name,
			Reason:   "round needs a positive durationWeeks or a non-empty subRoundBookerIds",
		}
	}
}
