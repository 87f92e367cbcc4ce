// Package eligibility decides whether a booking action is currently
// permitted. Every function is pure and total: missing inputs mean "not
// eligible", never an error.
package eligibility

import "lakehouse/models"

// IsAdmin reports whether the acting user holds admin privilege for gating
// purposes. Selecting a booker override (impersonation) always suspends
// admin status, even for a listed admin, so elevated privilege cannot be
// used while posing as a specific booker.
func IsAdmin(userID string, perms models.Permissions, bookerIDOverride string) bool {
	if bookerIDOverride != "" {
		return false
	}
	return perms.IsAdminUser(userID)
}

// CanAddReservation decides whether the booker may create a reservation
// right now. Admins bypass gating entirely; otherwise a round must be
// active, any exclusive sub-round must belong to the booker, and the round's
// booking cap (0 = unlimited) must not be exhausted.
func CanAddReservation(booker models.Booker, isAdmin bool, round *models.Round, subRoundBooker string, existingReservationCount int) bool {
	if isAdmin {
		return true
	}
	if round == nil {
		return false
	}
	if subRoundBooker != "" && subRoundBooker != booker.ID {
		return false
	}
	if round.BookedWeeksLimit > 0 && existingReservationCount >= round.BookedWeeksLimit {
		return false
	}
	return true
}

// CanEditReservation decides whether the booker may modify or delete an
// existing reservation. Owners may always edit their own reservations
// regardless of round state; the asymmetry with creation is deliberate.
func CanEditReservation(reservation models.Reservation, booker models.Booker, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return reservation.BookerID != "" && reservation.BookerID == booker.ID
}
