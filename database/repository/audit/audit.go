// File: database/repository/audit/audit.go
package auditRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository is the append-only audit log surface. There are deliberately no
// update or delete operations.
type Repository interface {
	Append(ctx context.Context, entry models.ReservationAuditLogEntry) error
	ListForYear(ctx context.Context, year int) ([]models.ReservationAuditLogEntry, error)
}

type firestoreAuditRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreAuditRepo constructs a Repository backed by the
// "reservationsAuditLog" collection.
func NewFirestoreAuditRepo() Repository {
	return &firestoreAuditRepo{
		coll: database.Client.Collection("reservationsAuditLog"),
	}
}

func (r *firestoreAuditRepo) Append(ctx context.Context, entry models.ReservationAuditLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Create on a fresh ref so an existing entry can never be overwritten.
	_, err := r.coll.NewDoc().Create(ctx, entry)
	return err
}

func (r *firestoreAuditRepo) ListForYear(ctx context.Context, year int) ([]models.ReservationAuditLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.
		Where("year", "==", year).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	entries := []models.ReservationAuditLogEntry{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var entry models.ReservationAuditLogEntry
		if err := snap.DataTo(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
