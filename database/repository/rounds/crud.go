// File: database/repository/rounds/crud.go
package roundsRepo

import (
	"context"
	"time"

	"google.golang.org/api/iterator"

	"lakehouse/models"
)

func (r *firestoreRoundsRepo) GetForYear(ctx context.Context, year int) (models.RoundsConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.Where("year", "==", year).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return models.EmptyRoundsConfig(year), nil
	}
	if err != nil {
		return models.RoundsConfig{}, err
	}

	var config models.RoundsConfig
	if err := snap.DataTo(&config); err != nil {
		return models.RoundsConfig{}, err
	}
	return config, nil
}

func (r *firestoreRoundsRepo) Save(ctx context.Context, config models.RoundsConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.Where("year", "==", config.Year).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		_, _, err = r.coll.Add(ctx, config)
		return err
	}
	if err != nil {
		return err
	}
	_, err = snap.Ref.Set(ctx, config)
	return err
}
