// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lakehouse/models"
)

// yearQuery matches reservations whose dates fall inside the season year,
// relying on ISO date strings sorting chronologically.
func (r *firestoreReservationRepo) yearQuery(year int) firestore.Query {
	return r.coll.
		Where("startDate", ">=", strconv.Itoa(year)).
		Where("endDate", "<", strconv.Itoa(year+1))
}

func (r *firestoreReservationRepo) ListForYear(ctx context.Context, year int) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.yearQuery(year).Documents(ctx)
	defer iter.Stop()

	reservations := []models.Reservation{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var res models.Reservation
		if err := snap.DataTo(&res); err != nil {
			return nil, err
		}
		res.ID = snap.Ref.ID
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// CountForBookerInYear counts a booker's reservations within the season,
// once per reservation regardless of its span.
func (r *firestoreReservationRepo) CountForBookerInYear(ctx context.Context, bookerID string, year int) (int, error) {
	reservations, err := r.ListForYear(ctx, year)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, res := range reservations {
		if res.BookerID == bookerID {
			count++
		}
	}
	return count, nil
}

// WatchYear streams the year's full reservation set on every change. The
// returned channel closes when ctx is cancelled or the snapshot stream fails.
func (r *firestoreReservationRepo) WatchYear(ctx context.Context, year int) (<-chan []models.Reservation, error) {
	snapIter := r.yearQuery(year).Snapshots(ctx)

	out := make(chan []models.Reservation)
	go func() {
		defer close(out)
		defer snapIter.Stop()
		for {
			snap, err := snapIter.Next()
			if err != nil {
				return
			}
			reservations := []models.Reservation{}
			docIter := snap.Documents
			for {
				doc, err := docIter.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					return
				}
				var res models.Reservation
				if err := doc.DataTo(&res); err != nil {
					continue
				}
				res.ID = doc.Ref.ID
				reservations = append(reservations, res)
			}
			select {
			case out <- reservations:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
