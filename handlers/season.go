// File: handlers/season.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bookerRepo "lakehouse/database/repository/booker"
	pricingRepo "lakehouse/database/repository/pricing"
	seasonRepo "lakehouse/database/repository/season"
	unitRepo "lakehouse/database/repository/unit"
	"lakehouse/middleware"
	"lakehouse/services/rounds"
)

// SeasonHandler serves the read-only season configuration surface: projected
// rounds, weeks, units, tiers, pricing and bookers.
type SeasonHandler struct {
	Rounds  rounds.Service
	Bookers bookerRepo.Repository
	Units   unitRepo.Repository
	Pricing pricingRepo.Repository
	Season  seasonRepo.Repository
}

func NewSeasonHandler(roundsSvc rounds.Service, bookers bookerRepo.Repository, units unitRepo.Repository, pricing pricingRepo.Repository, season seasonRepo.Repository) *SeasonHandler {
	return &SeasonHandler{
		Rounds:  roundsSvc,
		Bookers: bookers,
		Units:   units,
		Pricing: pricing,
		Season:  season,
	}
}

// yearParam parses the :year route segment.
func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, false
	}
	return year, true
}

// GetRounds returns the season's projected timeline evaluated at today.
func (h *SeasonHandler) GetRounds(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	timeline, err := h.Rounds.TimelineForYear(c.Request.Context(), year, middleware.Today(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

func (h *SeasonHandler) GetWeeks(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	config, err := h.Season.GetForYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *SeasonHandler) GetUnits(c *gin.Context) {
	units, err := h.Units.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

func (h *SeasonHandler) GetTiers(c *gin.Context) {
	tiers, err := h.Pricing.ListTiers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tiers)
}

func (h *SeasonHandler) GetPricing(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	pricing, err := h.Pricing.ListUnitPricing(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pricing)
}

func (h *SeasonHandler) GetBookers(c *gin.Context) {
	bookers, err := h.Bookers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookers)
}
