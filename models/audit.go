package models

import "time"

// Change types recorded in the reservation audit log.
const (
	ChangeTypeCreate = "create"
	ChangeTypeUpdate = "update"
	ChangeTypeDelete = "delete"
)

// ReservationAuditLogEntry is one append-only record of a reservation
// mutation. Entries are created exclusively by the audit writer and are
// never updated or deleted.
type ReservationAuditLogEntry struct {
	ReservationID string                 `firestore:"reservationId" json:"reservationId"`
	ChangeType    string                 `firestore:"changeType" json:"changeType"`
	Before        map[string]interface{} `firestore:"before" json:"before"`
	After         map[string]interface{} `firestore:"after" json:"after"`
	Who           string                 `firestore:"who" json:"who"`
	Year          int                    `firestore:"year" json:"year"`
	Timestamp     time.Time              `firestore:"timestamp" json:"timestamp"`
}
