package api

import (
	"net/http"

	"github.com/anshiiika/autoelite-dealership/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	service catalog.CatalogUseCase
}

func NewCarHandler(service catalog.CatalogUseCase) *CarHandler {
	return &CarHandler{service: service}
}

func (h *CarHandler) Register(router *gin.RouterGroup) {
	router.GET("/cars", h.list)
	router.GET("/car-models", h.models)
}

func (h *CarHandler) list(c *gin.Context) {
	cars, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Unable to load catalog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

func (h *CarHandler) models(c *gin.Context) {
	models, err := h.service.Models(c.Request.Context(), c.Query("model"))
	if err != nil {
		respondError(c, err, "Error fetching car models")
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}
