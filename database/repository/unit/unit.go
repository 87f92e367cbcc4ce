// File: database/repository/unit/unit.go
package unitRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository is the bookable-unit document store surface.
type Repository interface {
	List(ctx context.Context) ([]models.BookableUnit, error)
	Save(ctx context.Context, unit models.BookableUnit) error
	Delete(ctx context.Context, id string) error
}

type firestoreUnitRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreUnitRepo constructs a Repository backed by the "units"
// collection.
func NewFirestoreUnitRepo() Repository {
	return &firestoreUnitRepo{
		coll: database.Client.Collection("units"),
	}
}

func (r *firestoreUnitRepo) List(ctx context.Context) ([]models.BookableUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.Documents(ctx)
	defer iter.Stop()

	units := []models.BookableUnit{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var unit models.BookableUnit
		if err := snap.DataTo(&unit); err != nil {
			return nil, err
		}
		unit.ID = snap.Ref.ID
		units = append(units, unit)
	}
	return units, nil
}

func (r *firestoreUnitRepo) Save(ctx context.Context, unit models.BookableUnit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if unit.ID == "" {
		_, _, err := r.coll.Add(ctx, unit)
		return err
	}
	_, err := r.coll.Doc(unit.ID).Set(ctx, unit)
	return err
}

func (r *firestoreUnitRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(id).Delete(ctx)
	return err
}
