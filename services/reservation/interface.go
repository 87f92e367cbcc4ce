// File: services/reservation/interface.go
package reservation

import (
	"context"
	"time"

	"lakehouse/models"
)

// Actor identifies the requesting party for gating and audit purposes.
type Actor struct {
	// UserID is the verified auth subject, "" when unauthenticated.
	UserID string
	// BookerIDOverride is the impersonation selection. Selecting one
	// suspends admin privilege for gating.
	BookerIDOverride string
	// System marks non-interactive writes; the audit log records them as
	// "System".
	System bool
}

// Service owns all reservation mutations. Every write passes the
// eligibility gate first and is observed by the audit writer afterwards.
// "today" is supplied by the caller so evaluation stays deterministic.
type Service interface {
	ListForYear(ctx context.Context, year int) ([]models.Reservation, error)
	WatchYear(ctx context.Context, year int) (<-chan []models.Reservation, error)
	Create(ctx context.Context, actor Actor, today time.Time, res models.Reservation) (string, error)
	Update(ctx context.Context, actor Actor, res models.Reservation) error
	Delete(ctx context.Context, actor Actor, id string) error
}
