// File: services/audit/interface.go
package audit

import (
	"context"

	"lakehouse/models"
)

// Actors recorded when no interactive user is attached to a write.
const (
	WhoSystem  = "System"
	WhoUnknown = "Unknown"
)

// Writer observes reservation mutations and appends immutable audit entries.
// It is the only component that writes to the audit log.
type Writer interface {
	// RecordChange logs one mutation. before is nil for a create, after is
	// nil for a delete. who is the acting auth subject, or "" when the write
	// was not made by an interactive user.
	RecordChange(ctx context.Context, before, after *models.Reservation, who string, system bool)
}

// Reader serves the audit-log query surface.
type Reader interface {
	EntriesForYear(ctx context.Context, year int) ([]models.ReservationAuditLogEntry, error)
}
