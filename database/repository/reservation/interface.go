// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"cloud.google.com/go/firestore"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository is the reservation document store surface. Reservations are
// queried by season year: a reservation belongs to the year its startDate
// begins with.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListForYear(ctx context.Context, year int) ([]models.Reservation, error)
	CountForBookerInYear(ctx context.Context, bookerID string, year int) (int, error)
	Create(ctx context.Context, res models.Reservation) (string, error)
	Update(ctx context.Context, res models.Reservation) error
	Delete(ctx context.Context, id string) error
	// WatchYear emits the full result set for the year on every matching
	// change until ctx is cancelled.
	WatchYear(ctx context.Context, year int) (<-chan []models.Reservation, error)
}

type firestoreReservationRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreReservationRepo constructs a Repository backed by the
// "reservations" collection.
func NewFirestoreReservationRepo() Repository {
	return &firestoreReservationRepo{
		coll: database.Client.Collection("reservations"),
	}
}
