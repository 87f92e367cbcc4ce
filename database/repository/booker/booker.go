// File: database/repository/booker/booker.go
package bookerRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository is the booker document store surface.
type Repository interface {
	List(ctx context.Context) ([]models.Booker, error)
	GetByID(ctx context.Context, id string) (*models.Booker, error)
	// GetByUserID maps an auth subject to its booker, nil when no booker is
	// linked to the identity.
	GetByUserID(ctx context.Context, userID string) (*models.Booker, error)
	Save(ctx context.Context, booker models.Booker) error
}

type firestoreBookerRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreBookerRepo constructs a Repository backed by the "bookers"
// collection.
func NewFirestoreBookerRepo() Repository {
	return &firestoreBookerRepo{
		coll: database.Client.Collection("bookers"),
	}
}

func (r *firestoreBookerRepo) List(ctx context.Context) ([]models.Booker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.Documents(ctx)
	defer iter.Stop()

	bookers := []models.Booker{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var booker models.Booker
		if err := snap.DataTo(&booker); err != nil {
			return nil, err
		}
		booker.ID = snap.Ref.ID
		bookers = append(bookers, booker)
	}
	return bookers, nil
}

func (r *firestoreBookerRepo) GetByID(ctx context.Context, id string) (*models.Booker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var booker models.Booker
	if err := snap.DataTo(&booker); err != nil {
		return nil, err
	}
	booker.ID = snap.Ref.ID
	return &booker, nil
}

func (r *firestoreBookerRepo) GetByUserID(ctx context.Context, userID string) (*models.Booker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.Where("userId", "==", userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var booker models.Booker
	if err := snap.DataTo(&booker); err != nil {
		return nil, err
	}
	booker.ID = snap.Ref.ID
	return &booker, nil
}

func (r *firestoreBookerRepo) Save(ctx context.Context, booker models.Booker) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booker.ID == "" {
		_, _, err := r.coll.Add(ctx, booker)
		return err
	}
	_, err := r.coll.Doc(booker.ID).Set(ctx, booker)
	return err
}
