// File: services/rounds/service.go
package rounds

import (
	"context"
	"time"

	roundsRepo "lakehouse/database/repository/rounds"
	"lakehouse/models"
)

// Timeline is the projected season evaluated against a single day. It is
// recomputed in full on every read; nothing here is cached or mutated.
type Timeline struct {
	Rounds []models.Round `json:"rounds"`
	// Current is nil when today falls outside every round.
	Current *models.Round `json:"currentRound"`
	// SubRoundBookerID is the booker holding exclusive priority today, ""
	// when the current round has no sub-round order or no round is active.
	SubRoundBookerID string `json:"currentSubRoundBookerId"`
}

// Service projects stored round configurations onto the calendar.
type Service interface {
	ConfigForYear(ctx context.Context, year int) (models.RoundsConfig, error)
	RoundsForYear(ctx context.Context, year int) ([]models.Round, error)
	TimelineForYear(ctx context.Context, year int, today time.Time) (Timeline, error)
	// SaveConfig validates by projecting before writing, so bad
	// configuration is rejected instead of stored.
	SaveConfig(ctx context.Context, config models.RoundsConfig) error
}

// DefaultRoundsService is the production implementation.
type DefaultRoundsService struct {
	Repo roundsRepo.Repository
}

func (s *DefaultRoundsService) ConfigForYear(ctx context.Context, year int) (models.RoundsConfig, error) {
	return s.Repo.GetForYear(ctx, year)
}

func (s *DefaultRoundsService) RoundsForYear(ctx context.Context, year int) ([]models.Round, error) {
	config, err := s.Repo.GetForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return Project(config)
}

func (s *DefaultRoundsService) TimelineForYear(ctx context.Context, year int, today time.Time) (Timeline, error) {
	projected, err := s.RoundsForYear(ctx, year)
	if err != nil {
		return Timeline{}, err
	}

	timeline := Timeline{Rounds: projected}
	if current := CurrentRound(projected, today); current != nil {
		timeline.Current = current
		timeline.SubRoundBookerID = CurrentSubRoundBooker(*current, today)
	}
	return timeline, nil
}

func (s *DefaultRoundsService) SaveConfig(ctx context.Context, config models.RoundsConfig) error {
	if _, err := Project(config); err != nil {
		return err
	}
	return s.Repo.Save(ctx, config)
}
