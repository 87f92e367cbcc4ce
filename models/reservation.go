package models

import "errors"

// Validation failures surfaced directly to the user before any store write is
// attempted. The store itself enforces none of these.
var (
	ErrGuestNameRequired = errors.New("Guest name is required.")
	ErrBookerRequired    = errors.New("Booker is required.")
	ErrEndBeforeStart    = errors.New("End date must be after start date.")
)

// Reservation is one booked stay of a unit. ID is assigned by the store and
// empty on a reservation that has not been created yet. StartDate and EndDate
// are inclusive ISO dates.
type Reservation struct {
	ID        string `firestore:"id" json:"id"`
	StartDate string `firestore:"startDate" json:"startDate"`
	EndDate   string `firestore:"endDate" json:"endDate"`
	UnitID    string `firestore:"unitId" json:"unitId"`
	GuestName string `firestore:"guestName" json:"guestName"`
	BookerID  string `firestore:"bookerId" json:"bookerId"`
}

// Validate checks the invariants a reservation must satisfy before it may be
// written: a guest name, a booker, parseable dates and startDate <= endDate.
func (r Reservation) Validate() error {
	if r.GuestName == "" {
		return ErrGuestNameRequired
	}
	if r.BookerID == "" {
		return ErrBookerRequired
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	return nil
}
