// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lakehouse/models"
)

func (r *firestoreReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var res models.Reservation
	if err := snap.DataTo(&res); err != nil {
		return nil, err
	}
	res.ID = snap.Ref.ID
	return &res, nil
}

func (r *firestoreReservationRepo) Create(ctx context.Context, res models.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if _, err := r.coll.Doc(res.ID).Create(ctx, res); err != nil {
		return "", err
	}
	return res.ID, nil
}

func (r *firestoreReservationRepo) Update(ctx context.Context, res models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Full-document set; last write wins, matching the store's merge model.
	_, err := r.coll.Doc(res.ID).Set(ctx, res)
	return err
}

func (r *firestoreReservationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Verify existence so a delete of an unknown id surfaces NotFound
	// instead of succeeding silently.
	if _, err := r.coll.Doc(id).Get(ctx); err != nil {
		return err
	}
	_, err := r.coll.Doc(id).Delete(ctx)
	return err
}

// IsNotFound reports whether a store error means the document is absent.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
