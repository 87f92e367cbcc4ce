// File: database/repository/season/season.go
package seasonRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository stores the per-year week table and annual-document filename.
type Repository interface {
	GetForYear(ctx context.Context, year int) (models.SeasonConfig, error)
	Save(ctx context.Context, config models.SeasonConfig) error
	UpdateAnnualDocumentFilename(ctx context.Context, year int, filename string) error
}

type firestoreSeasonRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreSeasonRepo constructs a Repository backed by the "weeks"
// collection (one document per year).
func NewFirestoreSeasonRepo() Repository {
	return &firestoreSeasonRepo{
		coll: database.Client.Collection("weeks"),
	}
}

func (r *firestoreSeasonRepo) docForYear(ctx context.Context, year int) (*firestore.DocumentSnapshot, error) {
	iter := r.coll.Where("year", "==", year).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	return snap, err
}

func (r *firestoreSeasonRepo) GetForYear(ctx context.Context, year int) (models.SeasonConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.docForYear(ctx, year)
	if err != nil {
		return models.SeasonConfig{}, err
	}
	if snap == nil {
		return models.SeasonConfig{Year: year, Weeks: []models.ReservableWeek{}}, nil
	}
	var config models.SeasonConfig
	if err := snap.DataTo(&config); err != nil {
		return models.SeasonConfig{}, err
	}
	return config, nil
}

func (r *firestoreSeasonRepo) Save(ctx context.Context, config models.SeasonConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.docForYear(ctx, config.Year)
	if err != nil {
		return err
	}
	if snap == nil {
		_, _, err = r.coll.Add(ctx, config)
		return err
	}
	_, err = snap.Ref.Set(ctx, config)
	return err
}

func (r *firestoreSeasonRepo) UpdateAnnualDocumentFilename(ctx context.Context, year int, filename string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.docForYear(ctx, year)
	if err != nil {
		return err
	}
	if snap == nil {
		_, _, err = r.coll.Add(ctx, models.SeasonConfig{
			Year:                   year,
			Weeks:                  []models.ReservableWeek{},
			AnnualDocumentFilename: filename,
		})
		return err
	}
	// Partial field merge; the week table is left untouched.
	_, err = snap.Ref.Set(ctx, map[string]interface{}{
		"annualDocumentFilename": filename,
	}, firestore.MergeAll)
	return err
}
