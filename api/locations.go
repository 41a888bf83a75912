package api

import (
	"net/http"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/anshiiika/autoelite-dealership/internal/service/locations"
	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	service locations.LocationUseCase
}

func NewLocationHandler(service locations.LocationUseCase) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.lookup)
}

func (h *LocationHandler) lookup(c *gin.Context) {
	result, err := h.service.Lookup(c.Request.Context(), locations.LookupInput{
		Level:   c.Query("level"),
		Country: c.Query("country"),
		State:   c.Query("state"),
	})
	if err != nil {
		respondError(c, err, "Unable to fetch locations")
		return
	}

	switch result.Level {
	case domain.LevelStates:
		c.JSON(http.StatusOK, gin.H{"country": result.Country, "states": result.Names})
	case domain.LevelCities:
		c.JSON(http.StatusOK, gin.H{"country": result.Country, "state": result.State, "cities": result.Names})
	default:
		c.JSON(http.StatusOK, gin.H{"countries": result.Names})
	}
}
