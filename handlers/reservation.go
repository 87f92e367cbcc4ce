// File: handlers/reservation.go
package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lakehouse/middleware"
	"lakehouse/models"
	"lakehouse/services/audit"
	"lakehouse/services/reservation"
)

// ReservationHandler serves reservation queries, the live stream, the
// gated mutations and the audit-log view.
type ReservationHandler struct {
	Svc   reservation.Service
	Audit audit.Reader
}

func NewReservationHandler(svc reservation.Service, auditReader audit.Reader) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Audit: auditReader}
}

// actor builds the acting identity from the verified token and the optional
// impersonation header.
func actor(c *gin.Context) reservation.Actor {
	return reservation.Actor{
		UserID:           middleware.UserID(c),
		BookerIDOverride: middleware.BookerOverride(c),
	}
}

func (h *ReservationHandler) List(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	reservations, err := h.Svc.ListForYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// Stream pushes the year's full reservation set as a server-sent event on
// every matching store change, until the client disconnects.
func (h *ReservationHandler) Stream(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	updates, err := h.Svc.WatchYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		reservations, open := <-updates
		if !open {
			return false
		}
		c.SSEvent("reservations", reservations)
		return true
	})
}

func (h *ReservationHandler) Create(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var res models.Reservation
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	// A reservation belongs to the season its start date begins with.
	if len(res.StartDate) < 4 || res.StartDate[:4] != strconv.Itoa(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reservation start date must fall in the requested season"})
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), actor(c), middleware.Today(c), res)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ReservationHandler) Update(c *gin.Context) {
	var res models.Reservation
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res.ID = c.Param("id")

	if err := h.Svc.Update(c.Request.Context(), actor(c), res); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": res.ID})
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *ReservationHandler) GetAuditLog(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	entries, err := h.Audit.EntriesForYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
