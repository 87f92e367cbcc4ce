// File: database/repository/rounds/interface.go
package roundsRepo

import (
	"context"

	"cloud.google.com/go/firestore"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository stores one rounds configuration document per season year.
type Repository interface {
	// GetForYear returns the stored config, or the empty-rounds default
	// (January 1 start) when no document exists for the year.
	GetForYear(ctx context.Context, year int) (models.RoundsConfig, error)
	Save(ctx context.Context, config models.RoundsConfig) error
}

type firestoreRoundsRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreRoundsRepo constructs a Repository backed by the
// "reservationRounds" collection.
func NewFirestoreRoundsRepo() Repository {
	return &firestoreRoundsRepo{
		coll: database.Client.Collection("reservationRounds"),
	}
}
