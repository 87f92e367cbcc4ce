// File: services/reservation/errors.go
package reservation

// NotEligibleError is the expected denial outcome of the eligibility gate.
// Callers translate it into a rejected mutation with a user-facing message,
// not a server failure.
type NotEligibleError struct {
	Reason string
}

func (e NotEligibleError) Error() string {
	return e.Reason
}
