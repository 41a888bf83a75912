package api

import (
	"net/http"

	"github.com/anshiiika/autoelite-dealership/internal/service/bookings"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input bookings.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	booking, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Unable to save booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Unable to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}
