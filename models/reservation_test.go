package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_Validate(t *testing.T) {
	valid := Reservation{
		StartDate: "2025-07-05",
		EndDate:   "2025-07-11",
		UnitID:    "unit-1",
		GuestName: "Guest",
		BookerID:  "b1",
	}

	tests := []struct {
		name    string
		mutate  func(*Reservation)
		wantErr error
	}{
		{"valid reservation", func(r *Reservation) {}, nil},
		{"single-day reservation", func(r *Reservation) { r.EndDate = r.StartDate }, nil},
		{"missing guest name", func(r *Reservation) { r.GuestName = "" }, ErrGuestNameRequired},
		{"missing booker", func(r *Reservation) { r.BookerID = "" }, ErrBookerRequired},
		{"end before start", func(r *Reservation) { r.EndDate = "2025-07-04" }, ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := valid
			tt.mutate(&res)
			err := res.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestReservation_ValidateBadDates(t *testing.T) {
	res := Reservation{StartDate: "07/05/2025", EndDate: "2025-07-11", GuestName: "g", BookerID: "b"}
	assert.Error(t, res.Validate())

	res = Reservation{StartDate: "2025-07-05", EndDate: "", GuestName: "g", BookerID: "b"}
	assert.Error(t, res.Validate())
}
