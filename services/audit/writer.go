// File: services/audit/writer.go
package audit

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	auditRepo "lakehouse/database/repository/audit"
	"lakehouse/models"
	"lakehouse/utils"
)

// DefaultWriter appends one entry per observed reservation mutation.
type DefaultWriter struct {
	Repo auditRepo.Repository
	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (w *DefaultWriter) RecordChange(ctx context.Context, before, after *models.Reservation, who string, system bool) {
	logger := utils.GetLogger()

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	entry := BuildEntry(before, after, who, system)
	entry.Timestamp = now().UTC()

	if err := w.Repo.Append(ctx, entry); err != nil {
		// The reservation write already succeeded; a failed audit append is
		// logged, not propagated.
		logger.Error("Error creating audit log entry",
			zap.String("reservationId", entry.ReservationID),
			zap.Error(err))
		return
	}
	logger.Info("Reservation audit log created",
		zap.String("reservationId", entry.ReservationID),
		zap.String("changeType", entry.ChangeType))
}

// BuildEntry derives the audit record for one mutation: change type from
// which side is present, full before/after field maps excluding the id
// field, and the season year from the first four characters of whichever
// startDate exists (1900 when neither does).
func BuildEntry(before, after *models.Reservation, who string, system bool) models.ReservationAuditLogEntry {
	entry := models.ReservationAuditLogEntry{
		Before: fieldMap(before),
		After:  fieldMap(after),
		Who:    actor(who, system),
		Year:   seasonYear(before, after),
	}

	switch {
	case before == nil && after != nil:
		entry.ChangeType = models.ChangeTypeCreate
		entry.ReservationID = after.ID
	case before != nil && after == nil:
		entry.ChangeType = models.ChangeTypeDelete
		entry.ReservationID = before.ID
	default:
		entry.ChangeType = models.ChangeTypeUpdate
		if before != nil {
			entry.ReservationID = before.ID
		}
	}
	return entry
}

// fieldMap flattens a reservation to its scalar fields. The id is carried on
// the entry itself and its presence encodes create/delete, so it is excluded
// here.
func fieldMap(res *models.Reservation) map[string]interface{} {
	if res == nil {
		return map[string]interface{}{}
	}
	return map[string]interface{}{
		"startDate": res.StartDate,
		"endDate":   res.EndDate,
		"unitId":    res.UnitID,
		"guestName": res.GuestName,
		"bookerId":  res.BookerID,
	}
}

func actor(who string, system bool) string {
	if system {
		return WhoSystem
	}
	if who == "" {
		return WhoUnknown
	}
	return who
}

func seasonYear(before, after *models.Reservation) int {
	startDate := ""
	if after != nil {
		startDate = after.StartDate
	}
	if startDate == "" && before != nil {
		startDate = before.StartDate
	}
	if len(startDate) < 4 {
		return 1900
	}
	year, err := strconv.Atoi(startDate[:4])
	if err != nil {
		return 1900
	}
	return year
}

// DefaultReader reads entries back for the audit-log view.
type DefaultReader struct {
	Repo auditRepo.Repository
}

func (r *DefaultReader) EntriesForYear(ctx context.Context, year int) ([]models.ReservationAuditLogEntry, error) {
	return r.Repo.ListForYear(ctx, year)
}
