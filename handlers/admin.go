// File: handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pricingRepo "lakehouse/database/repository/pricing"
	seasonRepo "lakehouse/database/repository/season"
	unitRepo "lakehouse/database/repository/unit"
	"lakehouse/middleware"
	"lakehouse/models"
	"lakehouse/services/admin"
	"lakehouse/services/rounds"
)

// AdminHandler serves the admin configuration surface: round definitions,
// week tables, pricing, units, the annual document and password management.
type AdminHandler struct {
	Admin   admin.Service
	Rounds  rounds.Service
	Season  seasonRepo.Repository
	Pricing pricingRepo.Repository
	Units   unitRepo.Repository
}

func NewAdminHandler(adminSvc admin.Service, roundsSvc rounds.Service, season seasonRepo.Repository, pricing pricingRepo.Repository, units unitRepo.Repository) *AdminHandler {
	return &AdminHandler{
		Admin:   adminSvc,
		Rounds:  roundsSvc,
		Season:  season,
		Pricing: pricing,
		Units:   units,
	}
}

// RequireAdmin guards the admin route group. Impersonation does not grant
// access here either: the plain admin list decides.
func (h *AdminHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := h.Admin.IsAdmin(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator access required."})
			return
		}
		c.Next()
	}
}

// SaveRounds stores a season's round configuration. The config is projected
// first so invalid definitions are rejected instead of persisted.
func (h *AdminHandler) SaveRounds(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var config models.RoundsConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	config.Year = year

	if err := h.Rounds.SaveConfig(c.Request.Context(), config); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year})
}

func (h *AdminHandler) SaveWeeks(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var config models.SeasonConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	config.Year = year

	if err := h.Season.Save(c.Request.Context(), config); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year})
}

func (h *AdminHandler) SetAnnualDocument(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var input struct {
		Filename string `json:"filename"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Season.UpdateAnnualDocumentFilename(c.Request.Context(), year, input.Filename); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": input.Filename})
}

func (h *AdminHandler) SaveTier(c *gin.Context) {
	var tier models.PricingTier
	if err := c.ShouldBindJSON(&tier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Pricing.SaveTier(c.Request.Context(), tier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": tier.ID})
}

func (h *AdminHandler) SaveUnitPricing(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var pricing models.UnitPricing
	if err := c.ShouldBindJSON(&pricing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	pricing.Year = year

	if err := h.Pricing.SaveUnitPricing(c.Request.Context(), pricing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unitId": pricing.UnitID, "tierId": pricing.TierID})
}

func (h *AdminHandler) SaveUnit(c *gin.Context) {
	var unit models.BookableUnit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Units.Save(c.Request.Context(), unit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": unit.ID})
}

// SetPassword updates a user's credential. The admin service re-checks the
// caller against the permissions document itself; a missing document fails.
func (h *AdminHandler) SetPassword(c *gin.Context) {
	var input struct {
		UserID   string `json:"userId"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.UserID == "" || len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and a password of at least 6 characters are required"})
		return
	}

	if err := h.Admin.SetPassword(c.Request.Context(), middleware.UserID(c), input.UserID, input.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": input.UserID})
}
