package rounds

import (
	"time"

	"lakehouse/models"
)

// CurrentRound returns the round whose inclusive date range contains today,
// or nil when today falls outside the season. Projected rounds are disjoint
// and contiguous, so at most one can match.
func CurrentRound(projected []models.Round, today time.Time) *models.Round {
	for i := range projected {
		if projected[i].Contains(today) {
			return &projected[i]
		}
	}
	return nil
}

// CurrentSubRoundBooker returns the booker holding the exclusive sub-round
// priority for today, or "" when the round has no sub-round order. The week
// offset is clamped to the configured booker list.
func CurrentSubRoundBooker(round models.Round, today time.Time) string {
	order := round.SubRoundBookerIDs
	if len(order) == 0 {
		return ""
	}
	offset := int(today.Sub(round.StartDate).Hours() / 24 / 7)
	if offset < 0 {
		offset = 0
	}
	if offset > len(order)-1 {
		offset = len(order) - 1
	}
	return order[offset]
}
