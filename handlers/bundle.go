// File: handlers/bundle.go
package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Season      *SeasonHandler
	Reservation *ReservationHandler
	Admin       *AdminHandler
	Storage     *StorageHandler
}
